package analysis

import (
	"sort"

	"tidewatch/model"
	"tidewatch/region"
)

// RegionalStat is the per-region join of ports, disruptions and
// tariffs. Transient: derived for one pass, never persisted.
type RegionalStat struct {
	Name            string  `json:"name"`
	PortCount       int     `json:"port_count"`
	Throughput      float64 `json:"throughput"`
	DisruptionCount int     `json:"disruption_count"`
	TariffImpact    float64 `json:"tariff_impact"`
	RiskScore       float64 `json:"risk_score"`
	EconomicValue   float64 `json:"economic_value"`
}

// portRegion resolves a port's region: the explicit field when the
// upstream record carries one, otherwise the country lookup.
func portRegion(p *model.Port) string {
	if p.Region != "" {
		return p.Region
	}
	return region.ForCountry(p.Country)
}

// aggregateRegions joins the snapshot per region. Only regions
// encountered among ports get a record; disruption labels resolve
// against those region names via substring matching, and tariff trade
// values accumulate on the regions of their affected countries.
func (e *Engine) aggregateRegions(snap *model.Snapshot) []RegionalStat {
	stats := make(map[string]*RegionalStat)

	for i := range snap.Ports {
		p := &snap.Ports[i]
		name := portRegion(p)
		stat, ok := stats[name]
		if !ok {
			stat = &RegionalStat{Name: name}
			stats[name] = stat
		}
		stat.PortCount++
		stat.Throughput += p.AnnualThroughput
	}

	// Sorted name list keeps label resolution deterministic.
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for i := range snap.Disruptions {
		d := &snap.Disruptions[i]
		for _, label := range d.AffectedRegions {
			matched := region.Match(label, names)
			if matched == region.RegionGlobal {
				continue
			}
			stat := stats[matched]
			stat.DisruptionCount++
			stat.RiskScore = clampScore(stat.RiskScore + SeverityScore(d.Severity))
		}
	}

	for i := range snap.Tariffs {
		t := &snap.Tariffs[i]
		for _, country := range t.AffectedCountries {
			if stat, ok := stats[region.ForCountry(country)]; ok {
				stat.TariffImpact += t.AffectedTrade
			}
		}
	}

	out := make([]RegionalStat, 0, len(stats))
	for _, name := range names {
		stat := stats[name]
		stat.EconomicValue = stat.Throughput * e.params.ValuePerTEU
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EconomicValue != out[j].EconomicValue {
			return out[i].EconomicValue > out[j].EconomicValue
		}
		return out[i].Name < out[j].Name
	})
	return out
}
