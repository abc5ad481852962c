package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/analysis"
)

type contourOutput struct {
	Temps    []float64   `json:"temps_c"`
	Sulfurs  []float64   `json:"sulfurs_wt_pct"`
	D002     [][]float64 `json:"d002_nm"`
	Capacity [][]float64 `json:"capacity_mah_g"`
}

var (
	contourGrid      int
	contourTempMin   float64
	contourTempMax   float64
	contourSulfurMin float64
	contourSulfurMax float64
)

var contourCmd = &cobra.Command{
	Use:   "contour",
	Short: "Map property surfaces over the temperature and sulfur plane",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := feedstockFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		data, err := analysis.GenerateContourData(predictor, feed,
			r1.Interval{Min: contourTempMin, Max: contourTempMax},
			r1.Interval{Min: contourSulfurMin, Max: contourSulfurMax},
			contourGrid)
		if err != nil {
			return err
		}

		out := contourOutput{
			Temps:    data.Temps,
			Sulfurs:  data.Sulfurs,
			D002:     make([][]float64, len(data.Sulfurs)),
			Capacity: make([][]float64, len(data.Sulfurs)),
		}
		for i := range data.Sulfurs {
			out.D002[i] = data.D002.RawRowView(i)
			out.Capacity[i] = data.Capacity.RawRowView(i)
		}
		return printJSON(out)
	},
}

func init() {
	addFeedstockFlags(contourCmd.Flags())
	contourCmd.Flags().IntVar(&contourGrid, "grid", 25, "grid points per axis")
	contourCmd.Flags().Float64Var(&contourTempMin, "temp-min",
		analysis.DefaultContourTempRange.Min, "temperature axis minimum (°C)")
	contourCmd.Flags().Float64Var(&contourTempMax, "temp-max",
		analysis.DefaultContourTempRange.Max, "temperature axis maximum (°C)")
	contourCmd.Flags().Float64Var(&contourSulfurMin, "sulfur-min",
		analysis.DefaultContourSulfurRange.Min, "sulfur axis minimum (wt%)")
	contourCmd.Flags().Float64Var(&contourSulfurMax, "sulfur-max",
		analysis.DefaultContourSulfurRange.Max, "sulfur axis maximum (wt%)")
	rootCmd.AddCommand(contourCmd)
}
