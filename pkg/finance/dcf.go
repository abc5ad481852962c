package finance

import "math"

// DefaultIRRGuess is the conventional starting rate for IRR iteration.
const DefaultIRRGuess = 0.10

// IRR solver bounds. The iteration cap and final clamp silently bound
// non-convergent or ill-posed cash-flow sequences rather than raising an
// error; callers treating IRR as a hard answer should sanity-check their
// flows first.
const (
	maxIRRIterations  = 50
	derivativeEpsilon = 1e-10
	minIRRRate        = 0.0
	maxIRRRate        = 5.0
)

// NPV computes the net present value of a cash-flow sequence at the given
// discount rate. The first entry is period 0 (undiscounted, conventionally
// the negative initial investment); subsequent entries are per-period flows.
func NPV(cashFlows []float64, rate float64) float64 {
	npv := 0.0
	for t, c := range cashFlows {
		npv += c / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR computes the internal rate of return of a cash-flow sequence via
// Newton-Raphson iteration on the NPV function, starting from guess.
// Iteration stops after 50 steps or once the NPV derivative magnitude drops
// below 1e-10 (avoiding division blow-up), and the result is clamped to
// [0, 5] to bound divergent outputs on ill-posed sequences.
func IRR(cashFlows []float64, guess float64) float64 {
	r := guess
	for i := 0; i < maxIRRIterations; i++ {
		d := npvDerivative(cashFlows, r)
		if math.Abs(d) < derivativeEpsilon {
			break
		}
		r -= NPV(cashFlows, r) / d
	}
	return math.Min(math.Max(r, minIRRRate), maxIRRRate)
}

// npvDerivative computes d(NPV)/d(rate).
func npvDerivative(cashFlows []float64, rate float64) float64 {
	d := 0.0
	for t, c := range cashFlows {
		d += -float64(t) * c / math.Pow(1+rate, float64(t+1))
	}
	return d
}
