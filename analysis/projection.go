package analysis

import "math"

// YearProjection is one year of the multi-scenario economic
// trajectory. The baseline is an abstract global-trade-value index
// (2025 = 12500), not tied to real currency data; every scenario is a
// fixed multiplicative function of it, so the whole series is
// deterministic and side-effect-free.
type YearProjection struct {
	Year              int     `json:"year"`
	Baseline          float64 `json:"baseline"`
	WithDisruptions   float64 `json:"with_disruptions"`
	WithTariffs       float64 `json:"with_tariffs"`
	WithClimateChange float64 `json:"with_climate_change"`
	WithTechnology    float64 `json:"with_technology"`
	Optimistic        float64 `json:"optimistic"`
	Pessimistic       float64 `json:"pessimistic"`
	AutomationLed     float64 `json:"automation_led"`
	Deglobalization   float64 `json:"deglobalization"`
	GreenTransition   float64 `json:"green_transition"`
}

// ProjectTradeScenarios generates the year-ordered scenario series for
// [startYear, endYear] inclusive. Years always ascend; an inverted
// range yields an empty series.
func ProjectTradeScenarios(startYear, endYear int) []YearProjection {
	if endYear < startYear {
		return []YearProjection{}
	}

	out := make([]YearProjection, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		t := float64(year - startYear)

		geopoliticalRisk := 0.98
		switch {
		case year <= 2026:
			geopoliticalRisk = 1.05
		case year <= 2030:
			geopoliticalRisk = 1.02
		}

		climateImpact := math.Pow(1.015, t)
		technologyGains := math.Pow(1.04, t)
		supplyChainResilience := math.Pow(1.02, t)

		tradeWarImpact := 0.99
		if year <= 2027 {
			tradeWarImpact = 0.97
		}

		baseline := 12500 * math.Pow(1.028, t)

		out = append(out, YearProjection{
			Year:              year,
			Baseline:          baseline,
			WithDisruptions:   baseline * geopoliticalRisk * climateImpact * 0.96,
			WithTariffs:       baseline * tradeWarImpact * 0.94,
			WithClimateChange: baseline * climateImpact * 0.92,
			WithTechnology:    baseline * technologyGains * 1.08,
			Optimistic:        baseline * technologyGains * supplyChainResilience * 1.12,
			Pessimistic:       baseline * geopoliticalRisk * tradeWarImpact * climateImpact * 0.85,
			AutomationLed:     baseline * math.Pow(1.05, t) * 1.10,
			Deglobalization:   baseline * math.Pow(0.96, t) * 0.90,
			GreenTransition:   baseline * math.Pow(1.025, t) * 1.04,
		})
	}
	return out
}
