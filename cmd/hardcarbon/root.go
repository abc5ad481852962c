package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/carbonlab/hardcarbon-optimizer/internal/config"
	"github.com/carbonlab/hardcarbon-optimizer/internal/logging"
	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

var (
	calibrationPath string
	calibrationFit  string
	verbosity       int

	predictor *carbon.Predictor
)

var rootCmd = &cobra.Command{
	Use:   "hardcarbon",
	Short: "Predict and optimize FCC hard carbon carbonization",
	Long: `hardcarbon predicts material properties of hard carbon produced by
carbonizing FCC decant oil, evaluates predictions against the Goldilocks
interlayer-spacing window, searches process-condition space for favorable
operating points, and estimates plant economics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetLogger(logging.NewLogger(verbosity))

		cal, err := config.LoadCalibration(calibrationPath, calibrationFit)
		if err != nil {
			return err
		}
		predictor, err = carbon.NewPredictor(cal)
		if err != nil {
			return fmt.Errorf("building predictor: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&calibrationPath, "calibration", "",
		"path to a calibration YAML file (built-in calibration when empty)")
	rootCmd.PersistentFlags().StringVar(&calibrationFit, "fit", "",
		"named fit to select from the calibration file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0,
		"log verbosity (0=info, 1=debug, 2=trace)")
}

// addFeedstockFlags registers the shared feedstock flags, defaulting to the
// baseline FCC decant oil.
func addFeedstockFlags(fs *pflag.FlagSet) {
	def := carbon.DefaultFeedstock()
	fs.Float64("sulfur", def.SulfurWtPct, "feed sulfur content (wt%)")
	fs.Float64("oxygen", def.OxygenWtPct, "feed oxygen content (wt%)")
	fs.Float64("aromatics", def.AromaticsPct, "feed aromatics content (%)")
	fs.Float64("mcr", def.MCRWtPct, "feed micro carbon residue (wt%)")
	fs.String("feed-name", def.Name, "feed display name")
}

func feedstockFromFlags(fs *pflag.FlagSet) (carbon.Feedstock, error) {
	sulfur, _ := fs.GetFloat64("sulfur")
	oxygen, _ := fs.GetFloat64("oxygen")
	aromatics, _ := fs.GetFloat64("aromatics")
	mcr, _ := fs.GetFloat64("mcr")
	name, _ := fs.GetString("feed-name")
	return carbon.NewFeedstock(sulfur, oxygen, aromatics, mcr, name)
}

// addConditionFlags registers the shared process condition flags, defaulting
// to the baseline carbonization recipe.
func addConditionFlags(fs *pflag.FlagSet) {
	def := carbon.DefaultConditions()
	fs.Float64("temp", def.TempC, "carbonization temperature (°C)")
	fs.Float64("rate", def.RateCMin, "heating rate (°C/min)")
	fs.Float64("time", def.TimeHr, "hold time (hr)")
	fs.String("atmosphere", def.Atmosphere, "furnace atmosphere")
}

func conditionsFromFlags(fs *pflag.FlagSet) (carbon.ProcessConditions, error) {
	temp, _ := fs.GetFloat64("temp")
	rate, _ := fs.GetFloat64("rate")
	timeHr, _ := fs.GetFloat64("time")
	atmosphere, _ := fs.GetString("atmosphere")
	return carbon.NewProcessConditions(temp, rate, timeHr, atmosphere)
}

// printJSON renders a command result to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
