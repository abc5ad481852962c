package main

import (
	"github.com/spf13/cobra"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/analysis"
	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

type predictOutput struct {
	Feedstock  carbon.Feedstock         `json:"feedstock"`
	Conditions carbon.ProcessConditions `json:"conditions"`
	Result     carbon.HardCarbonResult  `json:"result"`
	Advisories []string                 `json:"advisories"`
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict hard carbon properties for one feed and recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := feedstockFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		proc, err := conditionsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		result := predictor.Predict(feed, proc)

		analyzer, err := analysis.NewGoldilocksAnalyzer(predictor)
		if err != nil {
			return err
		}

		return printJSON(predictOutput{
			Feedstock:  feed,
			Conditions: proc,
			Result:     result,
			Advisories: analyzer.Diagnose(result),
		})
	},
}

func init() {
	addFeedstockFlags(predictCmd.Flags())
	addConditionFlags(predictCmd.Flags())
	rootCmd.AddCommand(predictCmd)
}
