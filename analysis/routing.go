package analysis

import (
	"sort"
	"strings"

	"tidewatch/model"
	"tidewatch/reference"
)

// CargoImpact is the estimated monthly TEU volume at risk in one
// product category. Computed deterministically from tariff magnitude:
// the matched tariffs' average rate is applied to the route's monthly
// capacity and spread evenly across the affected categories.
type CargoImpact struct {
	Category   string  `json:"category"`
	MonthlyTEU float64 `json:"monthly_teu"`
}

// RouteImpact is the combined effect of the tariffs touching one
// static shipping route.
type RouteImpact struct {
	RouteName            string        `json:"route_name"`
	Origin               string        `json:"origin"`
	Destination          string        `json:"destination"`
	MatchedTariffs       []string      `json:"matched_tariffs"`
	AvgRate              float64       `json:"avg_rate"`
	RouteValue           float64       `json:"route_value"`
	AdditionalCost       float64       `json:"additional_cost"`
	DiversionProbability string        `json:"diversion_probability"`
	AlternativeRoutes    []string      `json:"alternative_routes"`
	ImpactedCargo        []CargoImpact `json:"impacted_cargo,omitempty"`
}

// analyzeRouteImpacts walks the static route table and, for each route
// touched by at least one tariff, estimates the added cost and the
// likelihood of diversion. Routes with no matching tariff produce no
// record. Averaging is skipped entirely when the match set is empty,
// so no division over an empty candidate set can occur.
func (e *Engine) analyzeRouteImpacts(snap *model.Snapshot) []RouteImpact {
	out := make([]RouteImpact, 0)

	for _, route := range reference.ShippingRoutes() {
		matched := tariffsForRoute(snap.Tariffs, route)
		if len(matched) == 0 {
			continue
		}

		var rateSum float64
		ids := make([]string, 0, len(matched))
		categorySet := make(map[string]struct{})
		for _, t := range matched {
			rateSum += t.CurrentRate
			ids = append(ids, t.ID)
			for _, c := range t.ProductCategories {
				categorySet[c] = struct{}{}
			}
		}
		avgRate := rateSum / float64(len(matched))

		monthlyTEU := float64(route.MonthlyVessels) * route.AvgCapacityTEU
		routeValue := monthlyTEU * e.params.ValuePerTEU

		impact := RouteImpact{
			RouteName:            route.Name,
			Origin:               route.Origin,
			Destination:          route.Destination,
			MatchedTariffs:       ids,
			AvgRate:              avgRate,
			RouteValue:           routeValue,
			AdditionalCost:       routeValue * avgRate / 100,
			DiversionProbability: diversionProbability(avgRate),
			AlternativeRoutes:    reference.AlternativesForRoute(route.Name),
		}

		if len(categorySet) > 0 {
			categories := make([]string, 0, len(categorySet))
			for c := range categorySet {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			perCategory := monthlyTEU * (avgRate / 100) / float64(len(categories))
			for _, c := range categories {
				impact.ImpactedCargo = append(impact.ImpactedCargo, CargoImpact{
					Category:   c,
					MonthlyTEU: perCategory,
				})
			}
		}

		out = append(out, impact)
	}
	return out
}

// tariffsForRoute selects tariffs whose affected-country list
// textually matches either route endpoint.
func tariffsForRoute(tariffs []model.Tariff, route reference.ShippingRoute) []*model.Tariff {
	matched := make([]*model.Tariff, 0)
	for i := range tariffs {
		t := &tariffs[i]
		for _, country := range t.AffectedCountries {
			if countryMatchesEndpoint(country, route.Origin) || countryMatchesEndpoint(country, route.Destination) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

func countryMatchesEndpoint(country, endpoint string) bool {
	c := strings.ToLower(strings.TrimSpace(country))
	ep := strings.ToLower(endpoint)
	if c == "" {
		return false
	}
	return c == ep || strings.Contains(ep, c) || strings.Contains(c, ep)
}

func diversionProbability(rate float64) string {
	switch {
	case rate > 15:
		return "High"
	case rate > 8:
		return "Medium"
	default:
		return "Low"
	}
}
