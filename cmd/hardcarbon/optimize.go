package main

import (
	"github.com/spf13/cobra"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/optimizer"
)

type optimizeOutput struct {
	Top   []optimizer.OptResult `json:"top"`
	Stats optimizer.Stats       `json:"stats"`
}

var (
	optSamples int
	optTop     int
	optSeed    uint64
	optUniform bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search process-condition space for Goldilocks operating points",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := feedstockFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		cfg := optimizer.DefaultConfig()
		cfg.Seed = optSeed
		if optUniform {
			cfg.Strategy = optimizer.UniformStrategy
		}

		opt, err := optimizer.NewProcessOptimizer(predictor, feed, cfg)
		if err != nil {
			return err
		}
		top, err := opt.Optimize(optSamples, optTop)
		if err != nil {
			return err
		}

		return printJSON(optimizeOutput{Top: top, Stats: opt.Stats()})
	},
}

func init() {
	addFeedstockFlags(optimizeCmd.Flags())
	optimizeCmd.Flags().IntVar(&optSamples, "samples", 1000, "number of sampled process points")
	optimizeCmd.Flags().IntVar(&optTop, "top", 10, "number of top results to report")
	optimizeCmd.Flags().Uint64Var(&optSeed, "seed", optimizer.DefaultSeed, "sampling seed")
	optimizeCmd.Flags().BoolVar(&optUniform, "uniform", false,
		"use independent uniform sampling instead of Latin hypercube")
	rootCmd.AddCommand(optimizeCmd)
}
