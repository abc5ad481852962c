package carbon

import "math"

// Goldilocks window for interlayer spacing (nm). Spacings in this range are
// empirically associated with best Na-ion storage performance.
const (
	GoldilocksMinNM = 0.37
	GoldilocksMaxNM = 0.40
	OptimalD002NM   = 0.385
)

// Grade is the quality band assigned to a prediction.
type Grade string

// Grades in priority order. Premium and Standard additionally require the
// spacing to sit inside the Goldilocks window.
const (
	GradePremium    Grade = "Premium (A)"
	GradeStandard   Grade = "Standard (B)"
	GradeAcceptable Grade = "Acceptable (C)"
	GradeOffSpec    Grade = "Off-spec (D)"
)

// Grade score thresholds.
const (
	premiumScoreFloor    = 80
	standardScoreFloor   = 65
	acceptableScoreFloor = 50
)

// HardCarbonResult holds predicted hard carbon properties plus derived
// quality fields. The derived fields (InGoldilocks, QualityScore, Grade) are
// computed once at construction from the five raw predictions and are never
// set independently of them.
type HardCarbonResult struct {
	// D002NM is the interlayer spacing in nm.
	D002NM float64 `json:"d002_nm"`

	// CapacityMAhG is the reversible capacity in mAh/g.
	CapacityMAhG float64 `json:"capacity_mah_g"`

	// ICEPct is the initial coulombic efficiency in %.
	ICEPct float64 `json:"ice_pct"`

	// BETM2G is the BET surface area in m²/g.
	BETM2G float64 `json:"bet_m2_g"`

	// YieldPct is the char yield in wt%.
	YieldPct float64 `json:"yield_pct"`

	// InGoldilocks reports whether D002NM lies in [0.37, 0.40].
	InGoldilocks bool `json:"in_goldilocks"`

	// QualityScore is the composite quality score in [0, 100].
	QualityScore float64 `json:"quality_score"`

	// Grade is the quality band derived from score and window membership.
	Grade Grade `json:"grade"`
}

// NewHardCarbonResult builds a result from the five raw predictions,
// computing the window flag, quality score and grade.
func NewHardCarbonResult(d002NM, capacityMAhG, icePct, betM2G, yieldPct float64) HardCarbonResult {
	r := HardCarbonResult{
		D002NM:       d002NM,
		CapacityMAhG: capacityMAhG,
		ICEPct:       icePct,
		BETM2G:       betM2G,
		YieldPct:     yieldPct,
	}
	r.InGoldilocks = d002NM >= GoldilocksMinNM && d002NM <= GoldilocksMaxNM
	r.QualityScore = qualityScore(d002NM, capacityMAhG, icePct, yieldPct)
	r.Grade = gradeFor(r.QualityScore, r.InGoldilocks)
	return r
}

// qualityScore combines four sub-scores: spacing (0-40, full credit at the
// optimal spacing, decaying to zero 0.05 nm away), capacity (0-30), ICE
// (0-20, credited above 60%), and yield (0-10). The total is rounded to one
// decimal and bounded to [0, 100] given the predictor's clamps.
func qualityScore(d002NM, capacityMAhG, icePct, yieldPct float64) float64 {
	score := math.Max(0, 40*(1-math.Abs(d002NM-OptimalD002NM)/0.05))
	score += math.Min(30, capacityMAhG/10)
	if icePct > 60 {
		score += math.Min(20, (icePct-60)/1.5)
	}
	score += math.Min(10, yieldPct/4)
	return math.Round(score*10) / 10
}

// gradeFor evaluates the mutually exclusive grade bands in priority order.
func gradeFor(score float64, inGoldilocks bool) Grade {
	switch {
	case score >= premiumScoreFloor && inGoldilocks:
		return GradePremium
	case score >= standardScoreFloor && inGoldilocks:
		return GradeStandard
	case score >= acceptableScoreFloor:
		return GradeAcceptable
	default:
		return GradeOffSpec
	}
}
