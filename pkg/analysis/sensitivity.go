package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

// DefaultPerturbationPct is the perturbation applied when Analyze is called
// with a non-positive percentage.
const DefaultPerturbationPct = 20.0

// Physically sensible perturbation floors and ceilings. Perturbed values are
// clamped here before prediction; temperature is left unclamped.
const (
	minPerturbedRateCMin  = 1.0
	maxPerturbedRateCMin  = 20.0
	minPerturbedTimeHr    = 0.5
	maxPerturbedTimeHr    = 6.0
	minPerturbedSulfurPct = 1.0
	maxPerturbedSulfurPct = 6.0
)

// SensitivityEntry records the spacing response to perturbing one parameter.
type SensitivityEntry struct {
	// Parameter is the perturbed parameter's display name.
	Parameter string `json:"parameter"`

	// LowDelta is the signed spacing change (nm) at the -pct% perturbation.
	LowDelta float64 `json:"low_delta_nm"`

	// HighDelta is the signed spacing change (nm) at the +pct% perturbation.
	HighDelta float64 `json:"high_delta_nm"`

	// Impact is |HighDelta - LowDelta|.
	Impact float64 `json:"impact_nm"`
}

// SensitivityAnalyzer runs a one-at-a-time perturbation study of the
// interlayer spacing around a fixed base case. The base-case spacing is
// computed once at construction.
type SensitivityAnalyzer struct {
	pred     *carbon.Predictor
	feed     carbon.Feedstock
	base     carbon.ProcessConditions
	baseD002 float64
}

// NewSensitivityAnalyzer creates an analyzer for the given base case.
func NewSensitivityAnalyzer(pred *carbon.Predictor, feed carbon.Feedstock, base carbon.ProcessConditions) (*SensitivityAnalyzer, error) {
	if pred == nil {
		return nil, fmt.Errorf("predictor cannot be nil")
	}
	if err := feed.Validate(); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return &SensitivityAnalyzer{
		pred:     pred,
		feed:     feed,
		base:     base,
		baseD002: pred.PredictD002(feed, base),
	}, nil
}

// BaseD002 returns the cached base-case interlayer spacing (nm).
func (s *SensitivityAnalyzer) BaseD002() float64 {
	return s.baseD002
}

// Analyze perturbs temperature, heating rate, hold time and sulfur content
// by ±pct% one at a time, holding all other inputs at base values, and
// records the signed spacing deltas. The returned list is sorted descending
// by impact; the top entry is the most sensitive parameter. A non-positive
// pct falls back to DefaultPerturbationPct.
func (s *SensitivityAnalyzer) Analyze(pct float64) ([]SensitivityEntry, error) {
	if pct <= 0 {
		pct = DefaultPerturbationPct
	}
	frac := pct / 100

	results := make([]SensitivityEntry, 0, 4)

	entry, err := s.perturbConditions("Temperature",
		s.base.TempC*(1-frac), s.base.TempC*(1+frac),
		func(p *carbon.ProcessConditions, v float64) { p.TempC = v })
	if err != nil {
		return nil, err
	}
	results = append(results, entry)

	entry, err = s.perturbConditions("Heating Rate",
		math.Max(minPerturbedRateCMin, s.base.RateCMin*(1-frac)),
		math.Min(maxPerturbedRateCMin, s.base.RateCMin*(1+frac)),
		func(p *carbon.ProcessConditions, v float64) { p.RateCMin = v })
	if err != nil {
		return nil, err
	}
	results = append(results, entry)

	entry, err = s.perturbConditions("Hold Time",
		math.Max(minPerturbedTimeHr, s.base.TimeHr*(1-frac)),
		math.Min(maxPerturbedTimeHr, s.base.TimeHr*(1+frac)),
		func(p *carbon.ProcessConditions, v float64) { p.TimeHr = v })
	if err != nil {
		return nil, err
	}
	results = append(results, entry)

	entry, err = s.perturbSulfur(
		math.Max(minPerturbedSulfurPct, s.feed.SulfurWtPct*(1-frac)),
		math.Min(maxPerturbedSulfurPct, s.feed.SulfurWtPct*(1+frac)))
	if err != nil {
		return nil, err
	}
	results = append(results, entry)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Impact > results[j].Impact
	})
	return results, nil
}

// perturbConditions evaluates the spacing with one process parameter set to
// its low and high perturbed values.
func (s *SensitivityAnalyzer) perturbConditions(name string, low, high float64, set func(*carbon.ProcessConditions, float64)) (SensitivityEntry, error) {
	lowProc := s.base
	set(&lowProc, low)
	if err := lowProc.Validate(); err != nil {
		return SensitivityEntry{}, fmt.Errorf("perturbing %s: %w", name, err)
	}

	highProc := s.base
	set(&highProc, high)
	if err := highProc.Validate(); err != nil {
		return SensitivityEntry{}, fmt.Errorf("perturbing %s: %w", name, err)
	}

	return s.entry(name,
		s.pred.PredictD002(s.feed, lowProc),
		s.pred.PredictD002(s.feed, highProc)), nil
}

// perturbSulfur evaluates the spacing with sulfur perturbed while every
// other feedstock property stays at its base value.
func (s *SensitivityAnalyzer) perturbSulfur(low, high float64) (SensitivityEntry, error) {
	lowFeed := s.feed
	lowFeed.SulfurWtPct = low
	if err := lowFeed.Validate(); err != nil {
		return SensitivityEntry{}, fmt.Errorf("perturbing Sulfur: %w", err)
	}

	highFeed := s.feed
	highFeed.SulfurWtPct = high
	if err := highFeed.Validate(); err != nil {
		return SensitivityEntry{}, fmt.Errorf("perturbing Sulfur: %w", err)
	}

	return s.entry("Sulfur",
		s.pred.PredictD002(lowFeed, s.base),
		s.pred.PredictD002(highFeed, s.base)), nil
}

func (s *SensitivityAnalyzer) entry(name string, lowD002, highD002 float64) SensitivityEntry {
	lowDelta := lowD002 - s.baseD002
	highDelta := highD002 - s.baseD002
	return SensitivityEntry{
		Parameter: name,
		LowDelta:  lowDelta,
		HighDelta: highDelta,
		Impact:    math.Abs(highDelta - lowDelta),
	}
}
