package analysis

import (
	"sort"
	"strings"

	"tidewatch/model"
)

// defaultThroughput substitutes for ports reporting no annual volume
// when sizing tariff cost increases.
const defaultThroughput = 1000000

// AlternativePort is a substitute gateway for a tariff-hit port, with
// the rerouting distance and the estimated additional cost of using it.
type AlternativePort struct {
	PortID         string  `json:"port_id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	DistanceKm     float64 `json:"distance_km"`
	AdditionalCost float64 `json:"additional_cost"`
}

// TariffPortImpact is the estimated effect of one tariff on one
// matched port. One record per (tariff, port) pair; a port hit by
// multiple tariffs appears once per tariff, undeduplicated.
type TariffPortImpact struct {
	TariffID              string            `json:"tariff_id"`
	TariffTitle           string            `json:"tariff_title"`
	PortID                string            `json:"port_id"`
	PortName              string            `json:"port_name"`
	Country               string            `json:"country"`
	CostIncrease          float64           `json:"cost_increase"`
	VolumeShift           float64           `json:"volume_shift"`
	Alternatives          []AlternativePort `json:"alternatives"`
	CompetitivenessChange string            `json:"competitiveness_change"`
	RecoveryTime          string            `json:"recovery_time"`
	Unresolved            []string          `json:"unresolved,omitempty"`
}

// portMatch is one resolved country -> port association. byName marks
// the fragile fallback where only the port's name contained the
// country token; those matches are surfaced rather than trusted.
type portMatch struct {
	port   *model.Port
	byName bool
}

// matchPortsForCountry resolves a tariff country token against the
// port list: exact (case-folded) country equality first, then
// substring against the country field, then substring against the
// port name as a flagged last resort. Earlier tiers suppress later
// ones so an exact hit never competes with fuzzy ones.
func matchPortsForCountry(ports []model.Port, country string) []portMatch {
	token := strings.ToLower(strings.TrimSpace(country))
	if token == "" {
		return nil
	}

	var exact, fuzzy, byName []portMatch
	for i := range ports {
		p := &ports[i]
		pc := strings.ToLower(p.Country)
		switch {
		case pc == token:
			exact = append(exact, portMatch{port: p})
		case pc != "" && (strings.Contains(pc, token) || strings.Contains(token, pc)):
			fuzzy = append(fuzzy, portMatch{port: p})
		case strings.Contains(strings.ToLower(p.Name), token):
			byName = append(byName, portMatch{port: p, byName: true})
		}
	}
	if len(exact) > 0 {
		return exact
	}
	if len(fuzzy) > 0 {
		return fuzzy
	}
	return byName
}

// analyzeTariffImpacts estimates, for every (tariff, affected country,
// matched port) triple, the cost increase, the volume likely to shift
// away, and up to three substitute ports in the same region.
func (e *Engine) analyzeTariffImpacts(snap *model.Snapshot) []TariffPortImpact {
	out := make([]TariffPortImpact, 0)

	for ti := range snap.Tariffs {
		t := &snap.Tariffs[ti]
		for _, country := range t.AffectedCountries {
			for _, m := range matchPortsForCountry(snap.Ports, country) {
				out = append(out, e.buildTariffImpact(snap, t, m))
			}
		}
	}
	return out
}

func (e *Engine) buildTariffImpact(snap *model.Snapshot, t *model.Tariff, m portMatch) TariffPortImpact {
	p := m.port

	throughput := p.AnnualThroughput
	if throughput == 0 {
		throughput = defaultThroughput
	}
	costIncrease := (t.CurrentRate / 100) * throughput
	volumeShift := costIncrease * 0.1
	if cap := p.AnnualThroughput * 0.3; volumeShift > cap {
		volumeShift = cap
	}

	impact := TariffPortImpact{
		TariffID:              t.ID,
		TariffTitle:           t.Title,
		PortID:                p.ID,
		PortName:              p.Name,
		Country:               p.Country,
		CostIncrease:          costIncrease,
		VolumeShift:           volumeShift,
		CompetitivenessChange: competitivenessTier(t.CurrentRate),
		RecoveryTime:          recoveryTime(t.CurrentRate),
	}
	if m.byName {
		impact.Unresolved = append(impact.Unresolved, "matched by port name, not country")
	}
	if p.AnnualThroughput == 0 {
		impact.Unresolved = append(impact.Unresolved, "annual_throughput missing, default applied")
	}

	alternatives, flagged := e.findAlternatives(snap, p)
	impact.Alternatives = alternatives
	if flagged != "" {
		impact.Unresolved = append(impact.Unresolved, flagged)
	}
	return impact
}

// findAlternatives picks up to three substitute ports: same region,
// different country, strategic importance within 20 points of the
// impacted port, ranked by rerouting distance. Ports without
// coordinates cannot take part in distance work and are skipped.
func (e *Engine) findAlternatives(snap *model.Snapshot, p *model.Port) ([]AlternativePort, string) {
	if !p.HasCoordinates() {
		return []AlternativePort{}, "alternatives: port lacks coordinates"
	}

	homeRegion := portRegion(p)
	candidates := make([]AlternativePort, 0)
	for i := range snap.Ports {
		c := &snap.Ports[i]
		if c.ID == p.ID || c.Country == p.Country {
			continue
		}
		if portRegion(c) != homeRegion {
			continue
		}
		if c.StrategicImportance < p.StrategicImportance-20 {
			continue
		}
		if !c.HasCoordinates() {
			continue
		}
		distance := Haversine(*p.Latitude, *p.Longitude, *c.Latitude, *c.Longitude)
		candidates = append(candidates, AlternativePort{
			PortID:         c.ID,
			Name:           c.Name,
			Country:        c.Country,
			DistanceKm:     distance,
			AdditionalCost: distance * 0.8,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].Name < candidates[j].Name
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates, ""
}

func competitivenessTier(rate float64) string {
	switch {
	case rate > 15:
		return "Severe"
	case rate > 8:
		return "Moderate"
	default:
		return "Mild"
	}
}

func recoveryTime(rate float64) string {
	switch {
	case rate > 15:
		return "18-24 months"
	case rate > 8:
		return "9-15 months"
	default:
		return "3-6 months"
	}
}
