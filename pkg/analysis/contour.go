package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/carbonlab/hardcarbon-optimizer/pkg/carbon"
)

// Default contour ranges and conditions held fixed while sweeping
// temperature and sulfur.
var (
	DefaultContourTempRange   = r1.Interval{Min: 900, Max: 1300}
	DefaultContourSulfurRange = r1.Interval{Min: 1, Max: 6}
)

const (
	contourRateCMin = 5.0
	contourTimeHr   = 2.0
)

// ContourData holds property grids over the temperature × sulfur plane.
// Rows index sulfur values, columns index temperatures.
type ContourData struct {
	// Temps are the temperature axis values (°C).
	Temps []float64

	// Sulfurs are the sulfur axis values (wt%).
	Sulfurs []float64

	// D002 is the interlayer spacing grid (nm).
	D002 *mat.Dense

	// Capacity is the reversible capacity grid (mAh/g).
	Capacity *mat.Dense
}

// GenerateContourData evaluates a full prediction on an n×n grid over
// temperature and sulfur, holding the remaining feed properties at the given
// feed's values and the process at 5 °C/min with a 2 h hold.
func GenerateContourData(pred *carbon.Predictor, feed carbon.Feedstock, tempRange, sulfurRange r1.Interval, n int) (*ContourData, error) {
	if pred == nil {
		return nil, fmt.Errorf("predictor cannot be nil")
	}
	if n < 2 {
		return nil, fmt.Errorf("grid size must be at least 2, got %d", n)
	}
	if tempRange.Min >= tempRange.Max {
		return nil, fmt.Errorf("temperature range min (%.1f) must be below max (%.1f)",
			tempRange.Min, tempRange.Max)
	}
	if sulfurRange.Min >= sulfurRange.Max {
		return nil, fmt.Errorf("sulfur range min (%.1f) must be below max (%.1f)",
			sulfurRange.Min, sulfurRange.Max)
	}

	temps := make([]float64, n)
	floats.Span(temps, tempRange.Min, tempRange.Max)
	sulfurs := make([]float64, n)
	floats.Span(sulfurs, sulfurRange.Min, sulfurRange.Max)

	data := &ContourData{
		Temps:    temps,
		Sulfurs:  sulfurs,
		D002:     mat.NewDense(n, n, nil),
		Capacity: mat.NewDense(n, n, nil),
	}

	for i, s := range sulfurs {
		gridFeed, err := carbon.NewFeedstock(s, feed.OxygenWtPct, feed.AromaticsPct, feed.MCRWtPct, feed.Name)
		if err != nil {
			return nil, err
		}
		for j, t := range temps {
			proc, err := carbon.NewProcessConditions(t, contourRateCMin, contourTimeHr, "")
			if err != nil {
				return nil, err
			}
			res := pred.Predict(gridFeed, proc)
			data.D002.Set(i, j, res.D002NM)
			data.Capacity.Set(i, j, res.CapacityMAhG)
		}
	}

	return data, nil
}
