package carbon

import (
	"math"

	"github.com/carbonlab/hardcarbon-optimizer/internal/metrics"
)

// referenceTempC is the temperature the linear temperature terms are
// centered on.
const referenceTempC = 1000.0

// Physical clamp ranges for the fitted surfaces. Linear extrapolation
// outside the fitted domain would otherwise produce nonphysical outputs.
const (
	d002FloorNM   = 0.335
	d002CeilNM    = 0.42
	betFloorM2G   = 1.0
	betCeilM2G    = 80.0
	yieldFloorPct = 15.0
	yieldCeilPct  = 50.0
)

// Predictor estimates hard carbon properties from feedstock and process
// conditions. It holds only a constant coefficient table and no per-call
// state, so a single instance is safe to share process-wide.
type Predictor struct {
	cal Calibration
}

// NewPredictor creates a Predictor with the given calibration. The
// calibration is validated once here; prediction calls never fail.
func NewPredictor(cal Calibration) (*Predictor, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return &Predictor{cal: cal}, nil
}

// DefaultPredictor returns a Predictor using the baseline calibration.
func DefaultPredictor() *Predictor {
	return &Predictor{cal: DefaultCalibration()}
}

// Calibration returns the coefficient table in use.
func (p *Predictor) Calibration() Calibration {
	return p.cal
}

// PredictD002 predicts the interlayer spacing (nm), clamped to
// [0.335, 0.42].
func (p *Predictor) PredictD002(feed Feedstock, proc ProcessConditions) float64 {
	d := p.cal.D002
	d002 := d.Base +
		d.Temp*(proc.TempC-referenceTempC) +
		d.Sulfur*feed.SulfurWtPct +
		d.Oxygen*feed.OxygenWtPct +
		d.Rate*proc.RateCMin +
		d.Time*proc.TimeHr
	return clamp(d002, d002FloorNM, d002CeilNM)
}

// PredictCapacity predicts the reversible capacity (mAh/g) from the
// interlayer spacing. The response is unimodal, maximized at the optimal
// spacing and decaying symmetrically away from it; the Gaussian's natural
// bounds make a further clamp unnecessary.
func (p *Predictor) PredictCapacity(d002NM float64) float64 {
	c := p.cal.Capacity
	dev := d002NM - c.OptimalD002
	return c.Base + (c.Peak-c.Base)*math.Exp(-(dev*dev)/(2*c.Sigma*c.Sigma))
}

// PredictBET predicts the BET surface area (m²/g), clamped to [1, 80].
func (p *Predictor) PredictBET(proc ProcessConditions) float64 {
	b := p.cal.BET
	bet := b.Base +
		b.Temp*(proc.TempC-referenceTempC) +
		b.Rate*proc.RateCMin +
		b.Time*proc.TimeHr
	return clamp(bet, betFloorM2G, betCeilM2G)
}

// PredictICE predicts the initial coulombic efficiency (%) from the BET
// surface area, clamped to the calibrated [min, max].
func (p *Predictor) PredictICE(betM2G float64) float64 {
	i := p.cal.ICE
	return clamp(i.Max+i.Slope*betM2G, i.Min, i.Max)
}

// PredictYield predicts the char yield (wt%), clamped to [15, 50].
func (p *Predictor) PredictYield(feed Feedstock, proc ProcessConditions) float64 {
	y := p.cal.Yield
	yld := y.Base +
		y.MCR*feed.MCRWtPct +
		y.Aromatics*feed.AromaticsPct +
		y.Temp*(proc.TempC-referenceTempC)
	return clamp(yld, yieldFloorPct, yieldCeilPct)
}

// Predict runs all sub-predictions and returns a self-classified result.
// Reported values are rounded to measurement-realistic precision: spacing to
// 4 decimals, the remaining properties to 1.
func (p *Predictor) Predict(feed Feedstock, proc ProcessConditions) HardCarbonResult {
	metrics.PredictionsTotal.Inc()

	d002 := roundTo(p.PredictD002(feed, proc), 4)
	bet := roundTo(p.PredictBET(proc), 1)
	return NewHardCarbonResult(
		d002,
		roundTo(p.PredictCapacity(d002), 1),
		roundTo(p.PredictICE(bet), 1),
		bet,
		roundTo(p.PredictYield(feed, proc), 1),
	)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
