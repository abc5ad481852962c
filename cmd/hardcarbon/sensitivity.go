package main

import (
	"github.com/spf13/cobra"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/analysis"
)

type sensitivityOutput struct {
	BaseD002NM float64                     `json:"base_d002_nm"`
	Entries    []analysis.SensitivityEntry `json:"entries"`
}

var sensitivityPct float64

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Rank process parameters by their effect on interlayer spacing",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := feedstockFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		proc, err := conditionsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		analyzer, err := analysis.NewSensitivityAnalyzer(predictor, feed, proc)
		if err != nil {
			return err
		}
		entries, err := analyzer.Analyze(sensitivityPct)
		if err != nil {
			return err
		}

		return printJSON(sensitivityOutput{
			BaseD002NM: analyzer.BaseD002(),
			Entries:    entries,
		})
	},
}

func init() {
	addFeedstockFlags(sensitivityCmd.Flags())
	addConditionFlags(sensitivityCmd.Flags())
	sensitivityCmd.Flags().Float64Var(&sensitivityPct, "pct", analysis.DefaultPerturbationPct,
		"perturbation applied to each parameter (%)")
	rootCmd.AddCommand(sensitivityCmd)
}
