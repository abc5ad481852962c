package carbon

import "fmt"

// Feedstock property bounds enforced at construction.
const (
	MinSulfurWtPct = 0.5
	MaxSulfurWtPct = 8.0
	MinOxygenWtPct = 0.0
	MaxOxygenWtPct = 5.0
)

// Process condition bounds enforced at construction.
const (
	MinTempC    = 800.0
	MaxTempC    = 1500.0
	MinRateCMin = 0.5
	MaxRateCMin = 50.0
	MinTimeHr   = 0.25
	MaxTimeHr   = 10.0
)

// DefaultAtmosphere is the inert carbonization atmosphere assumed when no
// atmosphere tag is given.
const DefaultAtmosphere = "N2"

// Feedstock describes an FCC decant oil feed. Values are fixed at
// construction; invalid ranges fail construction with a validation error.
type Feedstock struct {
	// SulfurWtPct is the sulfur content in wt% (valid 0.5-8).
	SulfurWtPct float64 `json:"sulfur_wt_pct" yaml:"sulfurWtPct"`

	// OxygenWtPct is the oxygen content in wt% (valid 0-5).
	OxygenWtPct float64 `json:"oxygen_wt_pct" yaml:"oxygenWtPct"`

	// AromaticsPct is the aromatics content in %.
	AromaticsPct float64 `json:"aromatics_pct" yaml:"aromaticsPct"`

	// MCRWtPct is the micro carbon residue content in wt%.
	MCRWtPct float64 `json:"mcr_wt_pct" yaml:"mcrWtPct"`

	// Name is a display name for the feed.
	Name string `json:"name" yaml:"name"`
}

// NewFeedstock creates a validated Feedstock.
func NewFeedstock(sulfurWtPct, oxygenWtPct, aromaticsPct, mcrWtPct float64, name string) (Feedstock, error) {
	f := Feedstock{
		SulfurWtPct:  sulfurWtPct,
		OxygenWtPct:  oxygenWtPct,
		AromaticsPct: aromaticsPct,
		MCRWtPct:     mcrWtPct,
		Name:         name,
	}
	if err := f.Validate(); err != nil {
		return Feedstock{}, err
	}
	return f, nil
}

// DefaultFeedstock returns the baseline FCC decant oil feed used for
// calibration.
func DefaultFeedstock() Feedstock {
	return Feedstock{
		SulfurWtPct:  3.5,
		OxygenWtPct:  1.0,
		AromaticsPct: 85.0,
		MCRWtPct:     22.0,
		Name:         "FCC Decant Oil",
	}
}

// Validate checks feedstock properties against their admissible ranges.
func (f Feedstock) Validate() error {
	if f.SulfurWtPct < MinSulfurWtPct || f.SulfurWtPct > MaxSulfurWtPct {
		return fmt.Errorf("sulfur content must be between %.1f and %.1f wt%%, got %.2f",
			MinSulfurWtPct, MaxSulfurWtPct, f.SulfurWtPct)
	}
	if f.OxygenWtPct < MinOxygenWtPct || f.OxygenWtPct > MaxOxygenWtPct {
		return fmt.Errorf("oxygen content must be between %.1f and %.1f wt%%, got %.2f",
			MinOxygenWtPct, MaxOxygenWtPct, f.OxygenWtPct)
	}
	return nil
}

// ProcessConditions describes carbonization process parameters. Values are
// fixed at construction; invalid ranges fail construction with a validation
// error.
type ProcessConditions struct {
	// TempC is the carbonization temperature in °C (valid 800-1500).
	TempC float64 `json:"temp_c" yaml:"tempC"`

	// RateCMin is the heating rate in °C/min (valid 0.5-50).
	RateCMin float64 `json:"rate_c_min" yaml:"rateCMin"`

	// TimeHr is the hold time in hours (valid 0.25-10).
	TimeHr float64 `json:"time_hr" yaml:"timeHr"`

	// Atmosphere is the furnace atmosphere tag.
	Atmosphere string `json:"atmosphere" yaml:"atmosphere"`
}

// NewProcessConditions creates validated ProcessConditions. An empty
// atmosphere defaults to DefaultAtmosphere.
func NewProcessConditions(tempC, rateCMin, timeHr float64, atmosphere string) (ProcessConditions, error) {
	if atmosphere == "" {
		atmosphere = DefaultAtmosphere
	}
	p := ProcessConditions{
		TempC:      tempC,
		RateCMin:   rateCMin,
		TimeHr:     timeHr,
		Atmosphere: atmosphere,
	}
	if err := p.Validate(); err != nil {
		return ProcessConditions{}, err
	}
	return p, nil
}

// DefaultConditions returns the baseline carbonization conditions.
func DefaultConditions() ProcessConditions {
	return ProcessConditions{
		TempC:      1100,
		RateCMin:   5,
		TimeHr:     2,
		Atmosphere: DefaultAtmosphere,
	}
}

// Validate checks process parameters against their admissible ranges.
func (p ProcessConditions) Validate() error {
	if p.TempC < MinTempC || p.TempC > MaxTempC {
		return fmt.Errorf("temperature must be between %.0f and %.0f °C, got %.1f",
			MinTempC, MaxTempC, p.TempC)
	}
	if p.RateCMin < MinRateCMin || p.RateCMin > MaxRateCMin {
		return fmt.Errorf("heating rate must be between %.1f and %.1f °C/min, got %.2f",
			MinRateCMin, MaxRateCMin, p.RateCMin)
	}
	if p.TimeHr < MinTimeHr || p.TimeHr > MaxTimeHr {
		return fmt.Errorf("hold time must be between %.2f and %.1f hr, got %.2f",
			MinTimeHr, MaxTimeHr, p.TimeHr)
	}
	return nil
}
