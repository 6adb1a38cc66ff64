package reference

// ShippingRoute is a static reference entry for a major trade lane.
// Monthly vessel counts and capacities are representative figures used
// to size routing-impact estimates, not live tracking data.
type ShippingRoute struct {
	Name           string  `json:"name"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	MonthlyVessels int     `json:"monthly_vessels"`
	AvgCapacityTEU float64 `json:"avg_capacity_teu"`
}

var shippingRoutes = []ShippingRoute{
	{Name: "Asia-Europe", Origin: "China", Destination: "Netherlands", MonthlyVessels: 420, AvgCapacityTEU: 15500},
	{Name: "Trans-Pacific", Origin: "China", Destination: "United States", MonthlyVessels: 510, AvgCapacityTEU: 12800},
	{Name: "Trans-Atlantic", Origin: "Germany", Destination: "United States", MonthlyVessels: 230, AvgCapacityTEU: 8200},
	{Name: "Asia-Middle East", Origin: "Singapore", Destination: "United Arab Emirates", MonthlyVessels: 310, AvgCapacityTEU: 9400},
	{Name: "Intra-Asia", Origin: "South Korea", Destination: "Vietnam", MonthlyVessels: 640, AvgCapacityTEU: 4600},
	{Name: "Asia-South America", Origin: "China", Destination: "Brazil", MonthlyVessels: 150, AvgCapacityTEU: 9800},
	{Name: "Europe-Africa", Origin: "Netherlands", Destination: "South Africa", MonthlyVessels: 120, AvgCapacityTEU: 6400},
	{Name: "Oceania-Asia", Origin: "Australia", Destination: "Japan", MonthlyVessels: 180, AvgCapacityTEU: 7300},
}

// ShippingRoutes returns the static shipping-route reference table.
func ShippingRoutes() []ShippingRoute {
	out := make([]ShippingRoute, len(shippingRoutes))
	copy(out, shippingRoutes)
	return out
}

// alternativeRoutes suggests diversion options keyed by route name.
var alternativeRoutes = map[string][]string{
	"Asia-Europe":        {"Cape of Good Hope routing (+9-14 days)", "China-Europe rail corridor for priority cargo"},
	"Trans-Pacific":      {"US East Coast via Panama Canal", "Transload via Mexican Pacific ports"},
	"Trans-Atlantic":     {"Mediterranean hub relay via Algeciras", "Northern range rotation through Antwerp"},
	"Asia-Middle East":   {"Direct Gulf feeder bypassing Colombo", "Overland relay via Oman ports"},
	"Intra-Asia":         {"Secondary feeder via Kaohsiung", "Direct barge services for short-sea legs"},
	"Asia-South America": {"Panama transshipment via Cartagena", "Cape Horn routing for bulk carriers"},
}

const defaultAlternativeRoute = "No established alternative; delay-and-hold at origin"

// AlternativesForRoute returns the static diversion suggestions for a
// route, or a single placeholder when none are catalogued.
func AlternativesForRoute(name string) []string {
	if alts, ok := alternativeRoutes[name]; ok {
		out := make([]string, len(alts))
		copy(out, alts)
		return out
	}
	return []string{defaultAlternativeRoute}
}
