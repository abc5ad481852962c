package optimizer

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/carbonlab/hardcarbon-optimizer/internal/logging"
	"github.com/carbonlab/hardcarbon-optimizer/internal/metrics"
	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

// DefaultSeed is the sampling seed used when no seed is configured.
const DefaultSeed uint64 = 42

// OptResult pairs one sampled process condition with its predicted outcome.
// Results are created per optimization run and carry no independent
// lifecycle.
type OptResult struct {
	TempC        float64      `json:"temp_c"`
	RateCMin     float64      `json:"rate_c_min"`
	TimeHr       float64      `json:"time_hr"`
	D002NM       float64      `json:"d002_nm"`
	CapacityMAhG float64      `json:"capacity_mah_g"`
	ICEPct       float64      `json:"ice_pct"`
	YieldPct     float64      `json:"yield_pct"`
	Score        float64      `json:"score"`
	Grade        carbon.Grade `json:"grade"`
	InGoldilocks bool         `json:"in_goldilocks"`
}

// Stats summarizes the full retained sample set of the most recent
// optimization run. Before any run, all fields are zero.
type Stats struct {
	// Total is the number of sampled points evaluated.
	Total int `json:"total"`

	// Goldilocks is the number of points inside the window.
	Goldilocks int `json:"goldilocks"`

	// RatePct is the in-window percentage.
	RatePct float64 `json:"rate_pct"`

	// BestScore is the highest score among in-window points, 0 if none.
	BestScore float64 `json:"best_score"`

	// BestCapacity is the highest capacity among in-window points, 0 if none.
	BestCapacity float64 `json:"best_cap"`
}

// Config holds the admissible process ranges, sampling strategy and seed for
// a ProcessOptimizer.
type Config struct {
	TempRange r1.Interval
	RateRange r1.Interval
	TimeRange r1.Interval
	Strategy  SamplerStrategy
	Seed      uint64
}

// DefaultConfig returns the standard search box: temperature 900-1300 °C,
// heating rate 1-20 °C/min, hold time 0.5-4 h, Latin hypercube sampling.
func DefaultConfig() *Config {
	return &Config{
		TempRange: r1.Interval{Min: 900, Max: 1300},
		RateRange: r1.Interval{Min: 1, Max: 20},
		TimeRange: r1.Interval{Min: 0.5, Max: 4},
		Strategy:  LatinHypercubeStrategy,
		Seed:      DefaultSeed,
	}
}

// ProcessOptimizer samples the process box for a fixed feedstock and ranks
// the in-window outcomes by quality score.
type ProcessOptimizer struct {
	pred       *carbon.Predictor
	feed       carbon.Feedstock
	cfg        *Config
	allResults []OptResult
}

// NewProcessOptimizer creates an optimizer for the given feedstock. A nil
// config uses DefaultConfig; zero-valued ranges and seed are filled from it.
func NewProcessOptimizer(pred *carbon.Predictor, feed carbon.Feedstock, cfg *Config) (*ProcessOptimizer, error) {
	if pred == nil {
		return nil, fmt.Errorf("predictor cannot be nil")
	}
	if err := feed.Validate(); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if cfg == nil {
		cfg = defaults
	} else {
		c := *cfg
		cfg = &c
		if cfg.TempRange == (r1.Interval{}) {
			cfg.TempRange = defaults.TempRange
		}
		if cfg.RateRange == (r1.Interval{}) {
			cfg.RateRange = defaults.RateRange
		}
		if cfg.TimeRange == (r1.Interval{}) {
			cfg.TimeRange = defaults.TimeRange
		}
		if cfg.Seed == 0 {
			cfg.Seed = defaults.Seed
		}
	}

	for _, rng := range []struct {
		name string
		iv   r1.Interval
	}{
		{"temperature", cfg.TempRange},
		{"heating rate", cfg.RateRange},
		{"hold time", cfg.TimeRange},
	} {
		if rng.iv.Min >= rng.iv.Max {
			return nil, fmt.Errorf("%s range min (%.2f) must be below max (%.2f)",
				rng.name, rng.iv.Min, rng.iv.Max)
		}
	}

	return &ProcessOptimizer{
		pred: pred,
		feed: feed,
		cfg:  cfg,
	}, nil
}

// Optimize draws nSamples points from the configured space-filling design,
// evaluates a full prediction at each, retains every result, and returns
// the in-window results ranked best-first, at most topN of them.
//
// The sampler is re-created from the configured seed on every call, so
// repeated calls with the same seed and sample count return identical lists.
// Ties in score break by capacity, then by spacing distance from optimal.
func (o *ProcessOptimizer) Optimize(nSamples, topN int) ([]OptResult, error) {
	if nSamples <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", nSamples)
	}
	if topN <= 0 {
		return nil, fmt.Errorf("top count must be positive, got %d", topN)
	}

	bounds := []r1.Interval{o.cfg.TempRange, o.cfg.RateRange, o.cfg.TimeRange}
	sampler, err := newSampler(o.cfg.Strategy, bounds, o.cfg.Seed)
	if err != nil {
		return nil, err
	}

	batch := mat.NewDense(nSamples, len(bounds), nil)
	sampler.Sample(batch)

	o.allResults = make([]OptResult, 0, nSamples)
	for i := 0; i < nSamples; i++ {
		// Round the sampled point before predicting so that the recorded
		// conditions reproduce the recorded outcome exactly when fed back
		// through the predictor.
		t := roundTo(batch.At(i, 0), 1)
		r := roundTo(batch.At(i, 1), 1)
		h := roundTo(batch.At(i, 2), 2)

		proc, err := carbon.NewProcessConditions(t, r, h, "")
		if err != nil {
			return nil, fmt.Errorf("sampled point %d: %w", i, err)
		}
		res := o.pred.Predict(o.feed, proc)
		o.allResults = append(o.allResults, OptResult{
			TempC:        t,
			RateCMin:     r,
			TimeHr:       h,
			D002NM:       res.D002NM,
			CapacityMAhG: res.CapacityMAhG,
			ICEPct:       res.ICEPct,
			YieldPct:     res.YieldPct,
			Score:        res.QualityScore,
			Grade:        res.Grade,
			InGoldilocks: res.InGoldilocks,
		})
	}

	var goldilocks []OptResult
	for _, r := range o.allResults {
		if r.InGoldilocks {
			goldilocks = append(goldilocks, r)
		}
	}
	sort.Slice(goldilocks, func(i, j int) bool {
		a, b := goldilocks[i], goldilocks[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.CapacityMAhG != b.CapacityMAhG {
			return a.CapacityMAhG > b.CapacityMAhG
		}
		return math.Abs(a.D002NM-carbon.OptimalD002NM) < math.Abs(b.D002NM-carbon.OptimalD002NM)
	})

	metrics.OptimizerRunsTotal.Inc()
	metrics.OptimizerSamplesTotal.Add(float64(nSamples))
	metrics.OptimizerGoldilocksTotal.Add(float64(len(goldilocks)))

	logging.Log.V(logging.DEBUG).Info("Optimization run complete",
		"sampled", nSamples,
		"goldilocks", len(goldilocks),
		"seed", o.cfg.Seed)

	if topN > len(goldilocks) {
		topN = len(goldilocks)
	}
	return goldilocks[:topN], nil
}

// Stats derives summary statistics from the full retained sample set of the
// most recent Optimize call. Calling Stats before any run yields all-zero
// statistics, not an error.
func (o *ProcessOptimizer) Stats() Stats {
	stats := Stats{Total: len(o.allResults)}
	for _, r := range o.allResults {
		if !r.InGoldilocks {
			continue
		}
		stats.Goldilocks++
		if r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
		if r.CapacityMAhG > stats.BestCapacity {
			stats.BestCapacity = r.CapacityMAhG
		}
	}
	if stats.Total > 0 {
		stats.RatePct = float64(stats.Goldilocks) / float64(stats.Total) * 100
	}
	return stats
}

func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
