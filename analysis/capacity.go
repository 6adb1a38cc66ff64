package analysis

import (
	"strings"

	"tidewatch/model"
)

// PortCapacityEffect projects new throughput, utilization and
// congestion for a high-volume port exposed to tariffs on its country.
type PortCapacityEffect struct {
	PortID               string  `json:"port_id"`
	PortName             string  `json:"port_name"`
	Country              string  `json:"country"`
	CurrentThroughput    float64 `json:"current_throughput"`
	AvgTariffExposure    float64 `json:"avg_tariff_exposure"`
	ExpectedVolumeChange float64 `json:"expected_volume_change"`
	NewThroughput        float64 `json:"new_throughput"`
	CapacityUtilization  float64 `json:"capacity_utilization"`
	CongestionRisk       string  `json:"congestion_risk"`
	InfrastructureStrain string  `json:"infrastructure_strain"`
}

// modelCapacityEffects covers ports above the high-volume threshold
// with non-zero tariff exposure on their country. Ports with no
// matching tariff are skipped before any averaging happens.
func (e *Engine) modelCapacityEffects(snap *model.Snapshot) []PortCapacityEffect {
	out := make([]PortCapacityEffect, 0)

	for i := range snap.Ports {
		p := &snap.Ports[i]
		if p.AnnualThroughput <= e.params.HighVolumeThreshold {
			continue
		}

		rates := tariffRatesForCountry(snap.Tariffs, p.Country)
		if len(rates) == 0 {
			continue
		}
		var sum float64
		for _, r := range rates {
			sum += r
		}
		avgExposure := sum / float64(len(rates))

		change := -0.05
		switch {
		case avgExposure > 15:
			change = -0.25
		case avgExposure > 8:
			change = -0.15
		}

		out = append(out, PortCapacityEffect{
			PortID:               p.ID,
			PortName:             p.Name,
			Country:              p.Country,
			CurrentThroughput:    p.AnnualThroughput,
			AvgTariffExposure:    avgExposure,
			ExpectedVolumeChange: change,
			NewThroughput:        p.AnnualThroughput * (1 + change),
			CapacityUtilization:  clamp(0.75*(1+change), 0.1, 1.0) * 100,
			CongestionRisk:       congestionRisk(change),
			InfrastructureStrain: infrastructureStrain(change),
		})
	}
	return out
}

// tariffRatesForCountry collects the rates of tariffs naming the
// port's country, using the same case-folded equality-then-substring
// chain as the tariff-port analyzer (no name fallback here; capacity
// projections only trust country-level matches).
func tariffRatesForCountry(tariffs []model.Tariff, portCountry string) []float64 {
	pc := strings.ToLower(strings.TrimSpace(portCountry))
	if pc == "" {
		return nil
	}
	var rates []float64
	for i := range tariffs {
		t := &tariffs[i]
		for _, country := range t.AffectedCountries {
			c := strings.ToLower(strings.TrimSpace(country))
			if c == pc || (c != "" && (strings.Contains(pc, c) || strings.Contains(c, pc))) {
				rates = append(rates, t.CurrentRate)
				break
			}
		}
	}
	return rates
}

// congestionRisk tiers on the magnitude of the projected change: a
// large swing in either direction destabilizes yard and berth
// planning, a small one does not.
func congestionRisk(change float64) string {
	mag := change
	if mag < 0 {
		mag = -mag
	}
	switch {
	case mag >= 0.25:
		return "High"
	case mag >= 0.15:
		return "Reduced"
	default:
		return "Stable"
	}
}

func infrastructureStrain(change float64) string {
	mag := change
	if mag < 0 {
		mag = -mag
	}
	switch {
	case mag >= 0.25:
		return "Critical"
	case mag >= 0.20:
		return "Severe"
	case mag >= 0.15:
		return "Elevated"
	case mag >= 0.08:
		return "Moderate"
	default:
		return "Minimal"
	}
}
