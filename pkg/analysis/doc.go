// Package analysis provides diagnostic tooling built on the property model:
// Goldilocks window diagnosis and temperature-window search, one-at-a-time
// sensitivity analysis of the interlayer spacing, and contour-grid data
// generation for property maps.
//
// All analyzers wrap repeated predictor calls over varied inputs; none hold
// mutable state beyond cached base-case values.
package analysis
