package analysis

import (
	"fmt"
	"sort"
	"strings"

	"tidewatch/model"
	"tidewatch/region"
)

// CrossImpact is a labeled relationship edge between two factors
// surfaced by the earlier stages (a tariff and the port it hits, a
// disruption and the region it lands in). Strength is scaled to [0,1].
type CrossImpact struct {
	FactorA   string  `json:"factor_a"`
	FactorB   string  `json:"factor_b"`
	Direction string  `json:"direction"`
	Strength  float64 `json:"strength"`
}

// CompoundRisk ranks a location simultaneously exposed to at least one
// tariff and one matching disruption.
type CompoundRisk struct {
	PortID              string   `json:"port_id"`
	Location            string   `json:"location"`
	Country             string   `json:"country"`
	RiskScore           float64  `json:"risk_score"`
	RiskLevel           string   `json:"risk_level"`
	ContributingFactors []string `json:"contributing_factors"`
	MitigationPriority  string   `json:"mitigation_priority"`
}

// CascadingEffect is a trigger -> effect -> secondary-effects chain
// with a fixed textual estimate of when the effect materializes.
type CascadingEffect struct {
	Trigger           string   `json:"trigger"`
	Effect            string   `json:"effect"`
	SecondaryEffects  []string `json:"secondary_effects"`
	TimeToMaterialize string   `json:"time_to_materialize"`
}

// crossImpactStrengthScale normalizes a tariff cost increase into the
// [0,1] edge-strength range: a 10M cost increase saturates the edge.
const crossImpactStrengthScale = 10000000

// buildCrossImpacts emits relationship edges for the notable
// interactions the prior stages surfaced: tariff-port pairs whose cost
// increase clears 1M, and disruptions that resolved to at least one
// known region.
func buildCrossImpacts(tariffImpacts []TariffPortImpact, snap *model.Snapshot, regionNames []string) []CrossImpact {
	out := make([]CrossImpact, 0)

	for i := range tariffImpacts {
		imp := &tariffImpacts[i]
		if imp.CostIncrease <= 1000000 {
			continue
		}
		out = append(out, CrossImpact{
			FactorA:   imp.TariffTitle,
			FactorB:   imp.PortName,
			Direction: "negative",
			Strength:  clamp(imp.CostIncrease/crossImpactStrengthScale, 0, 1),
		})
	}

	for i := range snap.Disruptions {
		d := &snap.Disruptions[i]
		for _, label := range d.AffectedRegions {
			matched := region.Match(label, regionNames)
			if matched == region.RegionGlobal {
				continue
			}
			out = append(out, CrossImpact{
				FactorA:   d.Title,
				FactorB:   matched,
				Direction: "negative",
				Strength:  SeverityScore(d.Severity) / 25,
			})
		}
	}
	return out
}

// scoreCompoundRisks ranks every port that sits under at least one
// tariff and at least one disruption matching its region. The score
// combines tariff pressure, disruption severity and the port's lack of
// strategic weight, clamped to 100, descending, truncated to top-N.
func (e *Engine) scoreCompoundRisks(snap *model.Snapshot) []CompoundRisk {
	out := make([]CompoundRisk, 0)

	for i := range snap.Ports {
		p := &snap.Ports[i]

		rates := tariffRatesForCountry(snap.Tariffs, p.Country)
		if len(rates) == 0 {
			continue
		}

		homeRegion := portRegion(p)
		var severitySum float64
		var factors []string
		for j := range snap.Disruptions {
			d := &snap.Disruptions[j]
			for _, label := range d.AffectedRegions {
				if region.Match(label, []string{homeRegion}) != region.RegionGlobal {
					severitySum += SeverityScore(d.Severity)
					factors = append(factors, fmt.Sprintf("disruption: %s", d.Title))
					break
				}
			}
		}
		if severitySum == 0 {
			continue
		}

		var rateSum float64
		for _, r := range rates {
			rateSum += r
		}
		meanRate := rateSum / float64(len(rates))

		for j := range snap.Tariffs {
			t := &snap.Tariffs[j]
			for _, country := range t.AffectedCountries {
				if countryMatchesEndpoint(country, p.Country) {
					factors = append(factors, fmt.Sprintf("tariff: %s", t.Title))
					break
				}
			}
		}

		score := clampScore(meanRate/4 + severitySum + 0.3*(100-p.StrategicImportance))
		level := RiskLevelFor(score)
		out = append(out, CompoundRisk{
			PortID:              p.ID,
			Location:            p.Name,
			Country:             p.Country,
			RiskScore:           score,
			RiskLevel:           level,
			ContributingFactors: factors,
			MitigationPriority:  mitigationPriority(level),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].RiskScore != out[j].RiskScore {
			return out[i].RiskScore > out[j].RiskScore
		}
		return out[i].Location < out[j].Location
	})
	if len(out) > e.params.CompoundRiskTopN {
		out = out[:e.params.CompoundRiskTopN]
	}
	return out
}

func mitigationPriority(level string) string {
	switch level {
	case RiskCritical:
		return "Immediate"
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Scheduled"
	default:
		return "Monitor"
	}
}

// detectCascades emits effect chains for the two trigger classes:
// high-congestion capacity projections and tariffs with rates over 20.
func detectCascades(capacityEffects []PortCapacityEffect, tariffs []model.Tariff) []CascadingEffect {
	out := make([]CascadingEffect, 0)

	for i := range capacityEffects {
		ce := &capacityEffects[i]
		if ce.CongestionRisk != "High" {
			continue
		}
		out = append(out, CascadingEffect{
			Trigger: fmt.Sprintf("Severe volume swing at %s (%.0f%% expected change)", ce.PortName, ce.ExpectedVolumeChange*100),
			Effect:  "Berth and yard schedules break down as carriers re-sequence calls",
			SecondaryEffects: []string{
				"Feeder services skip the port, stranding transshipment cargo",
				"Hinterland trucking and rail capacity tightens around substitute gateways",
			},
			TimeToMaterialize: "2-4 weeks",
		})
	}

	for i := range tariffs {
		t := &tariffs[i]
		if t.CurrentRate <= 20 {
			continue
		}
		out = append(out, CascadingEffect{
			Trigger: fmt.Sprintf("Tariff above 20%%: %s (%.1f%% on %s)", t.Title, t.CurrentRate, strings.Join(t.AffectedCountries, ", ")),
			Effect:  "Trade flows reroute away from the affected corridors",
			SecondaryEffects: []string{
				"Volume surge at substitute ports outside the tariff scope",
				"Freight rates rise on alternative lanes as capacity tightens",
				"Sourcing shifts toward countries inside the destination trade bloc",
			},
			TimeToMaterialize: "3-6 months",
		})
	}
	return out
}
