package analysis

import (
	"fmt"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

// Adequacy thresholds for the non-spacing diagnostics.
const (
	CapacityFloorMAhG = 200.0
	ICEFloorPct       = 70.0
)

// Temperature scan bounds for the window search (°C). The scan covers
// 850..1340 inclusive in steps of 10.
const (
	scanMinTempC  = 850
	scanLimTempC  = 1350
	scanStepTempC = 10
)

// GoldilocksAnalyzer evaluates predictions against the Goldilocks spacing
// window and searches temperature space for it.
type GoldilocksAnalyzer struct {
	pred *carbon.Predictor
}

// NewGoldilocksAnalyzer creates an analyzer on top of the given predictor.
func NewGoldilocksAnalyzer(pred *carbon.Predictor) (*GoldilocksAnalyzer, error) {
	if pred == nil {
		return nil, fmt.Errorf("predictor cannot be nil")
	}
	return &GoldilocksAnalyzer{pred: pred}, nil
}

// Diagnose returns advisory messages for a prediction, exactly one per
// criterion in fixed order: spacing, capacity, efficiency. The spacing
// advisory is directional; the others report adequacy against fixed floors.
func (a *GoldilocksAnalyzer) Diagnose(res carbon.HardCarbonResult) []string {
	recs := make([]string, 0, 3)

	switch {
	case res.D002NM < carbon.GoldilocksMinNM:
		recs = append(recs, fmt.Sprintf(
			"d002 too low (%.4f nm): lower temperature, increase sulfur, or increase heating rate",
			res.D002NM))
	case res.D002NM > carbon.GoldilocksMaxNM:
		recs = append(recs, fmt.Sprintf(
			"d002 too high (%.4f nm): raise temperature, extend hold time, or slow heating rate",
			res.D002NM))
	default:
		recs = append(recs, fmt.Sprintf("d002 in Goldilocks window (%.4f nm)", res.D002NM))
	}

	if res.CapacityMAhG < CapacityFloorMAhG {
		recs = append(recs, fmt.Sprintf(
			"capacity low (%.0f mAh/g): steer d002 toward %.3f nm",
			res.CapacityMAhG, carbon.OptimalD002NM))
	} else {
		recs = append(recs, fmt.Sprintf("capacity adequate (%.0f mAh/g)", res.CapacityMAhG))
	}

	if res.ICEPct < ICEFloorPct {
		recs = append(recs, fmt.Sprintf(
			"ICE low (%.1f%%): raise temperature to reduce BET surface area",
			res.ICEPct))
	} else {
		recs = append(recs, fmt.Sprintf("ICE adequate (%.1f%%)", res.ICEPct))
	}

	return recs
}

// TempWindow describes the temperature range whose predicted spacing falls
// in the Goldilocks window for a fixed feed, heating rate and hold time. All
// pointer fields are nil and the width is zero when no feasible window
// exists; that is an expected finding, not an error.
type TempWindow struct {
	// MinTempC is the lowest in-window scanned temperature.
	MinTempC *int `json:"min_temp_c"`

	// MaxTempC is the highest in-window scanned temperature.
	MaxTempC *int `json:"max_temp_c"`

	// OptimalTempC is the window midpoint, rounded down.
	OptimalTempC *int `json:"optimal_temp_c"`

	// WindowWidthC is MaxTempC - MinTempC.
	WindowWidthC int `json:"window_width_c"`
}

// FindTempWindow scans integer temperatures from 850 to 1340 °C in steps of
// 10, holding rate and hold time fixed, and collects every temperature whose
// predicted spacing falls in the Goldilocks window. Only the spacing
// sub-prediction is evaluated per step.
func (a *GoldilocksAnalyzer) FindTempWindow(feed carbon.Feedstock, rateCMin, timeHr float64) (TempWindow, error) {
	var inWindow []int
	for t := scanMinTempC; t < scanLimTempC; t += scanStepTempC {
		proc, err := carbon.NewProcessConditions(float64(t), rateCMin, timeHr, "")
		if err != nil {
			return TempWindow{}, err
		}
		d002 := a.pred.PredictD002(feed, proc)
		if d002 >= carbon.GoldilocksMinNM && d002 <= carbon.GoldilocksMaxNM {
			inWindow = append(inWindow, t)
		}
	}

	if len(inWindow) == 0 {
		return TempWindow{}, nil
	}

	// The scan is ascending, so the collected slice is already ordered.
	minT := inWindow[0]
	maxT := inWindow[len(inWindow)-1]
	optT := (minT + maxT) / 2
	return TempWindow{
		MinTempC:     &minT,
		MaxTempC:     &maxT,
		OptimalTempC: &optT,
		WindowWidthC: maxT - minT,
	}, nil
}
