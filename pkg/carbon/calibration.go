package carbon

import "fmt"

// D002Coefficients parameterize the interlayer spacing regression (nm).
type D002Coefficients struct {
	// Base is the graphite baseline spacing in nm.
	Base float64 `yaml:"base"`
	// Temp is the spacing slope per °C above the reference temperature.
	Temp float64 `yaml:"temp"`
	// Sulfur is the spacing increment per wt% sulfur.
	Sulfur float64 `yaml:"sulfur"`
	// Oxygen is the spacing increment per wt% oxygen.
	Oxygen float64 `yaml:"oxygen"`
	// Rate is the spacing increment per °C/min heating rate.
	Rate float64 `yaml:"rate"`
	// Time is the spacing slope per hour of hold time.
	Time float64 `yaml:"time"`
}

// CapacityCoefficients parameterize the Gaussian capacity response (mAh/g).
type CapacityCoefficients struct {
	// Peak is the capacity at the optimal spacing.
	Peak float64 `yaml:"peak"`
	// OptimalD002 is the spacing at which capacity peaks, in nm.
	OptimalD002 float64 `yaml:"optimal"`
	// Sigma is the Gaussian width in nm.
	Sigma float64 `yaml:"sigma"`
	// Base is the far-from-optimal capacity floor.
	Base float64 `yaml:"base"`
}

// ICECoefficients parameterize initial coulombic efficiency (%) vs BET area.
type ICECoefficients struct {
	Max   float64 `yaml:"max"`
	Slope float64 `yaml:"slope"`
	Min   float64 `yaml:"min"`
}

// BETCoefficients parameterize the surface area regression (m²/g).
type BETCoefficients struct {
	Base float64 `yaml:"base"`
	Temp float64 `yaml:"temp"`
	Rate float64 `yaml:"rate"`
	Time float64 `yaml:"time"`
}

// YieldCoefficients parameterize the char yield regression (wt%).
type YieldCoefficients struct {
	Base      float64 `yaml:"base"`
	MCR       float64 `yaml:"mcr"`
	Aromatics float64 `yaml:"aromatics"`
	Temp      float64 `yaml:"temp"`
}

// Calibration holds the full coefficient set for one fitted model. A
// Calibration is a plain value: copy it, modify the copy, and build a new
// Predictor to run an alternate fit.
type Calibration struct {
	D002     D002Coefficients     `yaml:"d002"`
	Capacity CapacityCoefficients `yaml:"capacity"`
	ICE      ICECoefficients      `yaml:"ice"`
	BET      BETCoefficients      `yaml:"bet"`
	Yield    YieldCoefficients    `yaml:"yield"`
}

// DefaultCalibration returns the baseline coefficient set fitted to FCC
// decant oil carbonization data.
func DefaultCalibration() Calibration {
	return Calibration{
		D002: D002Coefficients{
			Base:   0.335,
			Temp:   -3.5e-5,
			Sulfur: 0.012,
			Oxygen: 0.006,
			Rate:   0.0006,
			Time:   -0.004,
		},
		Capacity: CapacityCoefficients{
			Peak:        320,
			OptimalD002: 0.385,
			Sigma:       0.018,
			Base:        80,
		},
		ICE: ICECoefficients{
			Max:   92,
			Slope: -1.0,
			Min:   55,
		},
		BET: BETCoefficients{
			Base: 40,
			Temp: -0.025,
			Rate: 0.4,
			Time: -3,
		},
		Yield: YieldCoefficients{
			Base:      20,
			MCR:       0.6,
			Aromatics: 0.12,
			Temp:      -0.008,
		},
	}
}

// Validate checks for coefficient values that would make the model
// degenerate.
func (c *Calibration) Validate() error {
	if c.D002.Base <= 0 {
		return fmt.Errorf("d002 base spacing must be positive, got %.4f", c.D002.Base)
	}
	if c.Capacity.Sigma <= 0 {
		return fmt.Errorf("capacity sigma must be positive, got %.4f", c.Capacity.Sigma)
	}
	if c.Capacity.Peak < c.Capacity.Base {
		return fmt.Errorf("capacity peak (%.1f) must be >= capacity base (%.1f)",
			c.Capacity.Peak, c.Capacity.Base)
	}
	if c.Capacity.OptimalD002 <= 0 {
		return fmt.Errorf("optimal d002 must be positive, got %.4f", c.Capacity.OptimalD002)
	}
	if c.ICE.Min > c.ICE.Max {
		return fmt.Errorf("ICE min (%.1f) must be <= ICE max (%.1f)", c.ICE.Min, c.ICE.Max)
	}
	return nil
}
