package main

import (
	"github.com/spf13/cobra"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/analysis"
)

var (
	windowRate float64
	windowTime float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Find the Goldilocks temperature window for a feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := feedstockFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		analyzer, err := analysis.NewGoldilocksAnalyzer(predictor)
		if err != nil {
			return err
		}
		window, err := analyzer.FindTempWindow(feed, windowRate, windowTime)
		if err != nil {
			return err
		}

		return printJSON(window)
	},
}

func init() {
	addFeedstockFlags(windowCmd.Flags())
	windowCmd.Flags().Float64Var(&windowRate, "rate", 5, "heating rate held fixed (°C/min)")
	windowCmd.Flags().Float64Var(&windowTime, "time", 2, "hold time held fixed (hr)")
	rootCmd.AddCommand(windowCmd)
}
