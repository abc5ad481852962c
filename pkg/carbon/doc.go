// Package carbon implements the empirical property model for hard carbon
// produced by carbonizing FCC decant oil.
//
// The package provides validated input records (Feedstock, ProcessConditions),
// a coefficient-driven Predictor, and the HardCarbonResult entity that scores
// and grades itself at construction time.
//
// Model structure:
//
// Each property is a linear (or, for capacity, Gaussian) combination of
// inputs around a physically motivated baseline, followed by a clamp to a
// plausible physical range:
//
//   - Interlayer spacing d002 falls with temperature above 1000 °C, rises
//     with sulfur, oxygen and heating rate, and falls with hold time.
//   - Reversible capacity is unimodal in d002, peaking at 0.385 nm.
//   - BET surface area falls with temperature and hold time, rises with
//     heating rate.
//   - Initial coulombic efficiency falls linearly with BET surface area.
//   - Char yield rises with MCR and aromatics, falls with temperature.
//
// Clamping prevents nonphysical outputs (negative surface area, spacing
// below crystalline graphite) outside the fitted domain.
//
// Example usage:
//
//	feed := carbon.DefaultFeedstock()
//	proc, err := carbon.NewProcessConditions(1100, 5, 2, carbon.DefaultAtmosphere)
//	if err != nil {
//	    return err
//	}
//
//	pred := carbon.DefaultPredictor()
//	result := pred.Predict(feed, proc)
//
//	log.Info("prediction complete",
//	    "d002", result.D002NM,
//	    "capacity", result.CapacityMAhG,
//	    "grade", result.Grade,
//	    "inGoldilocks", result.InGoldilocks)
//
// Coefficients are held in an explicit Calibration value owned by the
// Predictor instance, so alternate calibrations can be substituted per test
// or per deployment without cross-test leakage.
//
// The predictor is designed to be:
//   - Pure: no per-call state, no side effects beyond instrumentation
//   - Deterministic: same inputs produce same outputs
//   - Overridable: coefficients swappable without code changes
package carbon
