// Package optimizer searches process-condition space for operating points
// whose predicted hard carbon lands inside the Goldilocks window.
//
// The search is a quasi-random space-filling sweep: a Latin hypercube design
// stratifies each of the three process axes (temperature, heating rate, hold
// time) evenly across its range, so the joint sample set covers the box
// without the clustering of independent uniform draws. A fixed seed makes
// repeated runs reproduce identical sampling points.
//
// Example usage:
//
//	opt, err := optimizer.NewProcessOptimizer(pred, feed, nil)
//	if err != nil {
//	    return err
//	}
//
//	top, err := opt.Optimize(1000, 10)
//	if err != nil {
//	    return err
//	}
//
//	stats := opt.Stats()
//	log.Info("optimization complete",
//	    "sampled", stats.Total,
//	    "goldilocks", stats.Goldilocks,
//	    "bestScore", stats.BestScore)
//
// The optimizer is designed to be:
//   - Deterministic: same seed and sample count produce same results
//   - Bounded: fixed sample counts, no iteration until convergence
//   - Strategy-based: the sampling design is selected through a factory,
//     leaving room for alternative low-discrepancy generators
package optimizer
