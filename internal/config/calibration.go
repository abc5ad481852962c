// Package config loads predictor calibrations from YAML files. A calibration
// file holds named coefficient fits; fields omitted from a fit inherit from
// the file's "default" fit, which in turn inherits from the built-in
// calibration.
package config

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/carbonlab/hardcarbon-optimizer/internal/logging"
	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

// DefaultFitName is the calibration file key holding shared defaults for all
// named fits.
const DefaultFitName = "default"

// CalibrationSet maps fit names to fully resolved calibrations.
type CalibrationSet map[string]carbon.Calibration

// Get returns the calibration for a named fit. Unknown names fall back to
// the set's default fit, and an empty set falls back to the built-in
// calibration.
func (s CalibrationSet) Get(name string) carbon.Calibration {
	if cal, ok := s[name]; ok {
		return cal
	}
	if cal, ok := s[DefaultFitName]; ok {
		return cal
	}
	return carbon.DefaultCalibration()
}

// LoadCalibrationSet reads a calibration file. An empty path yields a set
// containing only the built-in default fit.
func LoadCalibrationSet(path string) (CalibrationSet, error) {
	if path == "" {
		return CalibrationSet{DefaultFitName: carbon.DefaultCalibration()}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading calibration file %q: %w", path, err)
	}
	return ParseCalibrationSet(v.AllSettings()), nil
}

// ParseCalibrationSet resolves raw per-fit settings into calibrations.
// Entries that fail to parse or validate are skipped with a log line rather
// than failing the whole set, so one bad fit cannot take down the rest.
func ParseCalibrationSet(settings map[string]any) CalibrationSet {
	out := make(CalibrationSet)
	if len(settings) == 0 {
		out[DefaultFitName] = carbon.DefaultCalibration()
		return out
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Resolve the default fit first so named fits can inherit from it.
	base := carbon.DefaultCalibration()
	if raw, ok := settings[DefaultFitName]; ok {
		cal, err := overlayCalibration(base, raw)
		if err != nil {
			logging.Log.Info("Invalid default calibration fit, using built-in defaults",
				"error", err)
		} else {
			base = cal
		}
	}
	out[DefaultFitName] = base

	for _, key := range keys {
		if key == DefaultFitName {
			continue
		}
		cal, err := overlayCalibration(base, settings[key])
		if err != nil {
			logging.Log.Info("Invalid calibration fit, skipping",
				"fit", key,
				"error", err)
			continue
		}
		out[key] = cal
	}

	logging.Log.V(logging.DEBUG).Info("Parsed calibration set", "fitCount", len(out))

	return out
}

// LoadCalibration is a convenience for callers that want a single named fit.
func LoadCalibration(path, fit string) (carbon.Calibration, error) {
	set, err := LoadCalibrationSet(path)
	if err != nil {
		return carbon.Calibration{}, err
	}
	if fit == "" {
		fit = DefaultFitName
	}
	return set.Get(fit), nil
}

// overlayCalibration applies a raw fit fragment on top of a base
// calibration. Only fields present in the fragment are overwritten.
func overlayCalibration(base carbon.Calibration, raw any) (carbon.Calibration, error) {
	frag, err := yaml.Marshal(raw)
	if err != nil {
		return carbon.Calibration{}, fmt.Errorf("encoding fit fragment: %w", err)
	}
	cal := base
	if err := yaml.Unmarshal(frag, &cal); err != nil {
		return carbon.Calibration{}, fmt.Errorf("decoding fit fragment: %w", err)
	}
	if err := cal.Validate(); err != nil {
		return carbon.Calibration{}, err
	}
	return cal, nil
}
