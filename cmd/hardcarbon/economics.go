package main

import (
	"github.com/spf13/cobra"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/finance"
)

type economicsOutput struct {
	Scale      finance.PlantScale       `json:"scale"`
	Capex      finance.CapexSummary     `json:"capex"`
	Opex       finance.OpexSummary      `json:"opex"`
	Revenue    finance.RevenueSummary   `json:"revenue"`
	Financials finance.FinancialSummary `json:"financials"`
	Scenarios  []finance.PriceScenario  `json:"price_scenarios"`
}

var (
	econFeedTPY  float64
	econYieldPct float64
)

var economicsCmd = &cobra.Command{
	Use:   "economics",
	Short: "Estimate plant-level financial viability",
	RunE: func(cmd *cobra.Command, args []string) error {
		scale := finance.PlantScale{
			FCCOilTPY:    econFeedTPY,
			CharYieldPct: econYieldPct,
		}
		calc, err := finance.NewEconomicsCalculator(scale, nil)
		if err != nil {
			return err
		}

		return printJSON(economicsOutput{
			Scale:      calc.Scale(),
			Capex:      calc.Capex(),
			Opex:       calc.Opex(),
			Revenue:    calc.Revenue(),
			Financials: calc.Financials(),
			Scenarios:  calc.PriceScenarios(),
		})
	},
}

func init() {
	economicsCmd.Flags().Float64Var(&econFeedTPY, "feed-tpy", 10000, "FCC oil feed rate (tonnes/year)")
	economicsCmd.Flags().Float64Var(&econYieldPct, "yield", 35, "assumed char yield (wt%)")
	rootCmd.AddCommand(economicsCmd)
}
