package carbon

import (
	"math"
	"testing"
)

func TestPredictD002_TemperatureEffect(t *testing.T) {
	pred := DefaultPredictor()
	feed := DefaultFeedstock()

	tests := []struct {
		name     string
		lowTemp  float64
		highTemp float64
	}{
		{
			name:     "Test case 1: 900 vs 1100 C",
			lowTemp:  900,
			highTemp: 1100,
		},
		{
			name:     "Test case 2: 1000 vs 1200 C",
			lowTemp:  1000,
			highTemp: 1200,
		},
		{
			name:     "Test case 3: 850 vs 1300 C",
			lowTemp:  850,
			highTemp: 1300,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low := ProcessConditions{TempC: tt.lowTemp, RateCMin: 5, TimeHr: 2, Atmosphere: DefaultAtmosphere}
			high := ProcessConditions{TempC: tt.highTemp, RateCMin: 5, TimeHr: 2, Atmosphere: DefaultAtmosphere}
			dLow := pred.PredictD002(feed, low)
			dHigh := pred.PredictD002(feed, high)
			if dHigh >= dLow {
				t.Errorf("d002 at %.0fC = %.4f, want below d002 at %.0fC = %.4f",
					tt.highTemp, dHigh, tt.lowTemp, dLow)
			}
		})
	}
}

func TestPredictD002_SulfurEffect(t *testing.T) {
	pred := DefaultPredictor()
	proc := DefaultConditions()

	lean := Feedstock{SulfurWtPct: 1.0, OxygenWtPct: 1.0, AromaticsPct: 85, MCRWtPct: 22}
	rich := Feedstock{SulfurWtPct: 5.0, OxygenWtPct: 1.0, AromaticsPct: 85, MCRWtPct: 22}

	dLean := pred.PredictD002(lean, proc)
	dRich := pred.PredictD002(rich, proc)
	if dRich <= dLean {
		t.Errorf("d002 at 5%% S = %.4f, want above d002 at 1%% S = %.4f", dRich, dLean)
	}
}

func TestPredictD002_Clamping(t *testing.T) {
	pred := DefaultPredictor()

	tests := []struct {
		name string
		feed Feedstock
		proc ProcessConditions
		want float64
	}{
		{
			name: "Test case 1: Extreme graphitization clamps to floor",
			feed: Feedstock{SulfurWtPct: 0.5, OxygenWtPct: 0, AromaticsPct: 85, MCRWtPct: 22},
			proc: ProcessConditions{TempC: 1500, RateCMin: 0.5, TimeHr: 10},
			want: 0.335,
		},
		{
			name: "Test case 2: Extreme disorder clamps to ceiling",
			feed: Feedstock{SulfurWtPct: 8, OxygenWtPct: 5, AromaticsPct: 85, MCRWtPct: 22},
			proc: ProcessConditions{TempC: 800, RateCMin: 50, TimeHr: 0.25},
			want: 0.42,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pred.PredictD002(tt.feed, tt.proc)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PredictD002() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestPredictCapacity_PeaksAtOptimalSpacing(t *testing.T) {
	pred := DefaultPredictor()

	peak := pred.PredictCapacity(OptimalD002NM)
	if math.Abs(peak-320) > 1e-9 {
		t.Errorf("capacity at optimal spacing = %.1f, want 320", peak)
	}
	for _, d002 := range []float64{0.335, 0.35, 0.37, 0.40, 0.42} {
		if cap := pred.PredictCapacity(d002); cap >= peak {
			t.Errorf("capacity at %.3f nm = %.1f, want below peak %.1f", d002, cap, peak)
		}
	}
}

func TestPredictICE_Clamping(t *testing.T) {
	pred := DefaultPredictor()

	tests := []struct {
		name string
		bet  float64
		want float64
	}{
		{
			name: "Test case 1: Zero surface area hits maximum",
			bet:  0,
			want: 92,
		},
		{
			name: "Test case 2: Moderate surface area",
			bet:  20,
			want: 72,
		},
		{
			name: "Test case 3: High surface area clamps to floor",
			bet:  80,
			want: 55,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pred.PredictICE(tt.bet); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PredictICE(%.0f) = %.1f, want %.1f", tt.bet, got, tt.want)
			}
		})
	}
}

func TestPredict_Baseline(t *testing.T) {
	pred := DefaultPredictor()
	res := pred.Predict(DefaultFeedstock(), DefaultConditions())

	if math.Abs(res.D002NM-0.3745) > 1e-9 {
		t.Errorf("D002NM = %.4f, want 0.3745", res.D002NM)
	}
	if !res.InGoldilocks {
		t.Errorf("InGoldilocks = false, want true for d002 %.4f", res.D002NM)
	}
	if math.Abs(res.BETM2G-33.5) > 1e-9 {
		t.Errorf("BETM2G = %.1f, want 33.5", res.BETM2G)
	}
	if math.Abs(res.ICEPct-58.5) > 1e-9 {
		t.Errorf("ICEPct = %.1f, want 58.5", res.ICEPct)
	}
	if math.Abs(res.YieldPct-42.6) > 1e-9 {
		t.Errorf("YieldPct = %.1f, want 42.6", res.YieldPct)
	}
	if res.CapacityMAhG < 280 || res.CapacityMAhG > 285 {
		t.Errorf("CapacityMAhG = %.1f, want within [280, 285]", res.CapacityMAhG)
	}
	if res.QualityScore < 65 || res.QualityScore >= 80 {
		t.Errorf("QualityScore = %.1f, want within [65, 80)", res.QualityScore)
	}
	if res.Grade != GradeStandard {
		t.Errorf("Grade = %q, want %q", res.Grade, GradeStandard)
	}
}

func TestPredict_SubpredictionConsistency(t *testing.T) {
	pred := DefaultPredictor()
	feed := DefaultFeedstock()
	proc := ProcessConditions{TempC: 1050, RateCMin: 10, TimeHr: 3, Atmosphere: DefaultAtmosphere}

	res := pred.Predict(feed, proc)

	d002 := roundTo(pred.PredictD002(feed, proc), 4)
	if res.D002NM != d002 {
		t.Errorf("D002NM = %v, want %v from PredictD002", res.D002NM, d002)
	}
	if want := roundTo(pred.PredictCapacity(d002), 1); res.CapacityMAhG != want {
		t.Errorf("CapacityMAhG = %v, want %v from PredictCapacity", res.CapacityMAhG, want)
	}
	bet := roundTo(pred.PredictBET(proc), 1)
	if res.BETM2G != bet {
		t.Errorf("BETM2G = %v, want %v from PredictBET", res.BETM2G, bet)
	}
	if want := roundTo(pred.PredictICE(bet), 1); res.ICEPct != want {
		t.Errorf("ICEPct = %v, want %v from PredictICE", res.ICEPct, want)
	}
	if want := roundTo(pred.PredictYield(feed, proc), 1); res.YieldPct != want {
		t.Errorf("YieldPct = %v, want %v from PredictYield", res.YieldPct, want)
	}
}

func TestNewPredictor_InvalidCalibration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Calibration)
	}{
		{
			name:   "Test case 1: Non-positive capacity sigma",
			mutate: func(c *Calibration) { c.Capacity.Sigma = 0 },
		},
		{
			name:   "Test case 2: Peak capacity below base",
			mutate: func(c *Calibration) { c.Capacity.Peak = 50 },
		},
		{
			name:   "Test case 3: ICE floor above ceiling",
			mutate: func(c *Calibration) { c.ICE.Min = 95 },
		},
		{
			name:   "Test case 4: Non-positive d002 base",
			mutate: func(c *Calibration) { c.D002.Base = 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := DefaultCalibration()
			tt.mutate(&cal)
			if _, err := NewPredictor(cal); err == nil {
				t.Errorf("NewPredictor() error = nil, want validation error")
			}
		})
	}
}

func TestNewPredictor_CustomCalibration(t *testing.T) {
	cal := DefaultCalibration()
	cal.D002.Sulfur = 0.02

	pred, err := NewPredictor(cal)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}
	base := DefaultPredictor().PredictD002(DefaultFeedstock(), DefaultConditions())
	got := pred.PredictD002(DefaultFeedstock(), DefaultConditions())
	if got <= base {
		t.Errorf("d002 with stronger sulfur term = %.4f, want above default %.4f", got, base)
	}
}
