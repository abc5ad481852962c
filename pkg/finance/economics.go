package finance

import (
	"fmt"
	"math"
)

// PlantScale describes the plant throughput basis.
type PlantScale struct {
	// FCCOilTPY is the FCC decant oil feed rate in tonnes per year.
	FCCOilTPY float64 `json:"fcc_oil_tpy"`

	// CharYieldPct is the assumed char yield in wt%.
	CharYieldPct float64 `json:"char_yield_pct"`
}

// HardCarbonTPY returns the hard carbon output in tonnes per year.
func (s PlantScale) HardCarbonTPY() float64 {
	return s.FCCOilTPY * s.CharYieldPct / 100
}

// GradePrices holds selling prices per quality band, in INR per kg.
type GradePrices struct {
	Premium  float64 `yaml:"premium"`
	Standard float64 `yaml:"standard"`
	OffSpec  float64 `yaml:"offspec"`
}

// GradeMix holds the assumed production fractions per quality band.
type GradeMix struct {
	Premium  float64 `yaml:"premium"`
	Standard float64 `yaml:"standard"`
	OffSpec  float64 `yaml:"offspec"`
}

// EconomicsConfig holds cost, revenue and financing assumptions. Monetary
// amounts are INR: equipment in crore, unit rates as noted per field.
type EconomicsConfig struct {
	// CapexItemsCr are bare equipment costs per item, in INR crore.
	CapexItemsCr map[string]float64

	// InstallFactor converts equipment cost to installed cost.
	InstallFactor float64

	// EngineeringPct is engineering cost as a fraction of installed cost.
	EngineeringPct float64

	// ContingencyPct is contingency as a fraction of installed + engineering.
	ContingencyPct float64

	// N2RateINRPerKg is the nitrogen price (INR/kg).
	N2RateINRPerKg float64

	// N2KgPerTon is nitrogen consumption per tonne of feed (kg/t).
	N2KgPerTon float64

	// PowerRateINRPerKWh is the electricity price (INR/kWh).
	PowerRateINRPerKWh float64

	// PowerKWhPerTon is power consumption per tonne of feed (kWh/t).
	PowerKWhPerTon float64

	// Operators is the total operator headcount across shifts.
	Operators int

	// SalaryLPA is the per-operator salary in INR lakh per annum.
	SalaryLPA float64

	// MaintenancePct is annual maintenance as a fraction of total CAPEX.
	MaintenancePct float64

	// Prices and Mix define the blended selling price.
	Prices GradePrices
	Mix    GradeMix

	// DiscountRate, ProjectYears and TaxRate drive the DCF summary.
	DiscountRate float64
	ProjectYears int
	TaxRate      float64
}

// DefaultEconomicsConfig returns the baseline cost model for a demonstration
// scale FCC hard carbon plant.
func DefaultEconomicsConfig() EconomicsConfig {
	return EconomicsConfig{
		CapexItemsCr: map[string]float64{
			"furnace":          12.0,
			"feed_system":      2.0,
			"gas_handling":     2.5,
			"milling":          3.0,
			"product_handling": 1.5,
			"utilities":        2.0,
		},
		InstallFactor:      1.35,
		EngineeringPct:     0.12,
		ContingencyPct:     0.15,
		N2RateINRPerKg:     12,
		N2KgPerTon:         80,
		PowerRateINRPerKWh: 7,
		PowerKWhPerTon:     400,
		Operators:          12, // 4 per shift, 3 shifts
		SalaryLPA:          5,
		MaintenancePct:     0.03,
		Prices:             GradePrices{Premium: 350, Standard: 280, OffSpec: 120},
		Mix:                GradeMix{Premium: 0.30, Standard: 0.55, OffSpec: 0.15},
		DiscountRate:       0.12,
		ProjectYears:       10,
		TaxRate:            0.25,
	}
}

// CapexSummary breaks down capital expenditure, in INR crore.
type CapexSummary struct {
	EquipmentCr float64 `json:"equipment_cr"`
	InstalledCr float64 `json:"installed_cr"`
	TotalCr     float64 `json:"total_cr"`
}

// OpexSummary breaks down annual operating expenditure. Component lines are
// INR lakh, the total INR crore.
type OpexSummary struct {
	N2Lakh          float64 `json:"n2_lakh"`
	PowerLakh       float64 `json:"power_lakh"`
	LaborLakh       float64 `json:"labor_lakh"`
	MaintenanceLakh float64 `json:"maint_lakh"`
	TotalCr         float64 `json:"total_cr"`
	CostPerKg       float64 `json:"cost_per_kg"`
}

// RevenueSummary holds the annual revenue basis.
type RevenueSummary struct {
	HardCarbonTPY float64 `json:"hc_tpy"`
	PricePerKg    float64 `json:"price_per_kg"`
	RevenueCr     float64 `json:"revenue_cr"`
}

// FinancialSummary holds the project DCF outcome.
type FinancialSummary struct {
	CapexCr    float64 `json:"capex_cr"`
	EBITDACr   float64 `json:"ebitda_cr"`
	CashFlowCr float64 `json:"cash_flow_cr"`
	NPVCr      float64 `json:"npv_cr"`
	IRRPct     float64 `json:"irr_pct"`
	PaybackYr  int     `json:"payback_yr"`
}

// PriceScenario is one row of the price sensitivity table.
type PriceScenario struct {
	ChangePct  int     `json:"change_pct"`
	PricePerKg float64 `json:"price_per_kg"`
	NPVCr      float64 `json:"npv_cr"`
	IRRPct     float64 `json:"irr_pct"`
	PaybackYr  int     `json:"payback_yr"`
}

// EconomicsCalculator evaluates plant economics for a fixed scale and cost
// model.
type EconomicsCalculator struct {
	scale PlantScale
	cfg   EconomicsConfig
}

// NewEconomicsCalculator creates a calculator. A nil config uses
// DefaultEconomicsConfig.
func NewEconomicsCalculator(scale PlantScale, cfg *EconomicsConfig) (*EconomicsCalculator, error) {
	if scale.FCCOilTPY <= 0 {
		return nil, fmt.Errorf("feed rate must be positive, got %.1f TPY", scale.FCCOilTPY)
	}
	if scale.CharYieldPct <= 0 || scale.CharYieldPct > 100 {
		return nil, fmt.Errorf("char yield must be in (0, 100] wt%%, got %.1f", scale.CharYieldPct)
	}
	if cfg == nil {
		c := DefaultEconomicsConfig()
		cfg = &c
	}
	if cfg.ProjectYears <= 0 {
		return nil, fmt.Errorf("project life must be positive, got %d years", cfg.ProjectYears)
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return nil, fmt.Errorf("tax rate must be in [0, 1), got %.2f", cfg.TaxRate)
	}
	return &EconomicsCalculator{scale: scale, cfg: *cfg}, nil
}

// Scale returns the plant throughput basis.
func (e *EconomicsCalculator) Scale() PlantScale {
	return e.scale
}

// Capex returns the capital expenditure breakdown.
func (e *EconomicsCalculator) Capex() CapexSummary {
	equip := 0.0
	for _, cost := range e.cfg.CapexItemsCr {
		equip += cost
	}
	installed := equip * e.cfg.InstallFactor
	eng := installed * e.cfg.EngineeringPct
	cont := (installed + eng) * e.cfg.ContingencyPct
	return CapexSummary{
		EquipmentCr: equip,
		InstalledCr: round1(installed),
		TotalCr:     round1(installed + eng + cont),
	}
}

// Opex returns the annual operating expenditure breakdown.
func (e *EconomicsCalculator) Opex() OpexSummary {
	n2 := e.scale.FCCOilTPY * e.cfg.N2KgPerTon * e.cfg.N2RateINRPerKg / 1e5 // lakh
	power := e.scale.FCCOilTPY * e.cfg.PowerKWhPerTon * e.cfg.PowerRateINRPerKWh / 1e5
	labor := float64(e.cfg.Operators) * e.cfg.SalaryLPA
	maint := e.Capex().TotalCr * 100 * e.cfg.MaintenancePct // crore to lakh
	total := n2 + power + labor + maint
	costPerKg := total * 1e5 / (e.scale.HardCarbonTPY() * 1000)
	return OpexSummary{
		N2Lakh:          round1(n2),
		PowerLakh:       round1(power),
		LaborLakh:       round1(labor),
		MaintenanceLakh: round1(maint),
		TotalCr:         round2(total / 100),
		CostPerKg:       round1(costPerKg),
	}
}

// Revenue returns the annual revenue basis at the configured grade mix.
func (e *EconomicsCalculator) Revenue() RevenueSummary {
	return e.revenueAt(1.0)
}

// Financials returns the DCF summary at the configured assumptions.
func (e *EconomicsCalculator) Financials() FinancialSummary {
	return e.financialsAt(1.0)
}

// PriceScenarios evaluates the DCF summary at -20%, -10%, base, +10% and
// +20% selling prices.
func (e *EconomicsCalculator) PriceScenarios() []PriceScenario {
	basePrice := e.Revenue().PricePerKg
	changes := []int{-20, -10, 0, 10, 20}

	scenarios := make([]PriceScenario, 0, len(changes))
	for _, pct := range changes {
		factor := 1 + float64(pct)/100
		fin := e.financialsAt(factor)
		scenarios = append(scenarios, PriceScenario{
			ChangePct:  pct,
			PricePerKg: math.Round(basePrice * factor),
			NPVCr:      fin.NPVCr,
			IRRPct:     fin.IRRPct,
			PaybackYr:  fin.PaybackYr,
		})
	}
	return scenarios
}

// revenueAt computes the revenue basis with all grade prices scaled by
// factor.
func (e *EconomicsCalculator) revenueAt(factor float64) RevenueSummary {
	p, m := e.cfg.Prices, e.cfg.Mix
	blended := (p.Premium*m.Premium + p.Standard*m.Standard + p.OffSpec*m.OffSpec) * factor
	hcKg := e.scale.HardCarbonTPY() * 1000
	return RevenueSummary{
		HardCarbonTPY: e.scale.HardCarbonTPY(),
		PricePerKg:    math.Round(blended),
		RevenueCr:     round2(hcKg * blended / 1e7),
	}
}

// financialsAt computes the DCF summary with selling prices scaled by
// factor.
func (e *EconomicsCalculator) financialsAt(factor float64) FinancialSummary {
	capex := e.Capex().TotalCr
	opex := e.Opex().TotalCr
	rev := e.revenueAt(factor).RevenueCr
	years := e.cfg.ProjectYears

	ebitda := rev - opex
	depreciation := capex / float64(years)
	ebt := ebitda - depreciation
	netIncome := ebt
	if ebt > 0 {
		netIncome = ebt * (1 - e.cfg.TaxRate)
	}
	cashFlow := netIncome + depreciation

	cashFlows := make([]float64, years+1)
	cashFlows[0] = -capex
	for t := 1; t <= years; t++ {
		cashFlows[t] = cashFlow
	}

	payback := years
	cumulative := 0.0
	for t, c := range cashFlows {
		cumulative += c
		if cumulative >= 0 {
			payback = t
			break
		}
	}

	return FinancialSummary{
		CapexCr:    capex,
		EBITDACr:   round2(ebitda),
		CashFlowCr: round2(cashFlow),
		NPVCr:      round1(NPV(cashFlows, e.cfg.DiscountRate)),
		IRRPct:     round1(IRR(cashFlows, DefaultIRRGuess) * 100),
		PaybackYr:  payback,
	}
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
