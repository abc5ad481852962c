package optimizer

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// SamplerStrategy is an enumeration of the supported space-sampling designs.
type SamplerStrategy int

// enumeration of SamplerStrategy
const (
	// LatinHypercubeStrategy stratifies every axis evenly across its range.
	LatinHypercubeStrategy SamplerStrategy = iota
	// UniformStrategy draws independent uniform samples over the box.
	UniformStrategy
)

// newSampler is a factory that creates a sampler over the given box, seeded
// for reproducibility. The source is created fresh per call so concurrent
// optimizer instances never share sampler state.
func newSampler(strategy SamplerStrategy, bounds []r1.Interval, seed uint64) (samplemv.Sampler, error) {
	src := rand.NewSource(seed)
	dist := distmv.NewUniform(bounds, src)
	switch strategy {
	case LatinHypercubeStrategy:
		return samplemv.LatinHypercube{Q: dist, Src: src}, nil
	case UniformStrategy:
		return samplemv.IID{Dist: dist}, nil
	default:
		return nil, fmt.Errorf("unsupported sampler strategy: %v", strategy)
	}
}
