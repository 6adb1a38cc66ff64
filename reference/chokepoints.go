// Package reference holds the static maritime reference tables:
// chokepoints, shipping routes, alternative routings and adaptation
// strategies. The tables are process-wide constants; accessors return
// copies so callers can never mutate the shared data.
package reference

// Chokepoint is a narrow maritime passage where traffic concentrates,
// creating outsized disruption risk. Risk scores are fixed reference
// values on the same 0-100 scale the engine uses elsewhere.
type Chokepoint struct {
	Name         string  `json:"name"`
	RiskScore    float64 `json:"risk_score"`
	Traffic      string  `json:"traffic"`
	Significance string  `json:"significance"`
}

var chokepoints = []Chokepoint{
	{
		Name:         "Strait of Hormuz",
		RiskScore:    78,
		Traffic:      "~21 million barrels of oil per day",
		Significance: "Sole sea passage from the Persian Gulf; no practical alternative for Gulf crude exports",
	},
	{
		Name:         "Bab el-Mandeb",
		RiskScore:    74,
		Traffic:      "~6.2 million barrels per day plus Asia-Europe container traffic",
		Significance: "Gateway between the Red Sea and the Gulf of Aden; exposed to regional conflict",
	},
	{
		Name:         "Strait of Malacca",
		RiskScore:    72,
		Traffic:      "~90,000 vessel transits per year",
		Significance: "Shortest route between the Indian and Pacific oceans; carries roughly a quarter of traded goods",
	},
	{
		Name:         "Suez Canal",
		RiskScore:    68,
		Traffic:      "~12% of global trade volume",
		Significance: "Asia-Europe shortcut; closure forces 9,000 km diversions around the Cape of Good Hope",
	},
	{
		Name:         "Panama Canal",
		RiskScore:    61,
		Traffic:      "~14,000 transits per year",
		Significance: "Links Atlantic and Pacific basins; throughput constrained by drought-driven draft limits",
	},
	{
		Name:         "Bosporus Strait",
		RiskScore:    55,
		Traffic:      "~41,000 vessel transits per year",
		Significance: "Only maritime outlet for Black Sea grain and energy exports",
	},
	{
		Name:         "Cape of Good Hope",
		RiskScore:    45,
		Traffic:      "Primary Suez diversion route",
		Significance: "Weather-exposed long-haul alternative; absorbs rerouted traffic during Red Sea disruptions",
	},
	{
		Name:         "Strait of Gibraltar",
		RiskScore:    38,
		Traffic:      "~100,000 vessel transits per year",
		Significance: "Mediterranean-Atlantic gateway with dense crossing ferry traffic",
	},
	{
		Name:         "Danish Straits",
		RiskScore:    33,
		Traffic:      "Baltic oil and container exports",
		Significance: "Access route for Baltic trade; shallow draft restricts vessel size",
	},
	{
		Name:         "English Channel",
		RiskScore:    30,
		Traffic:      "~500 vessel movements per day",
		Significance: "World's busiest shipping lane; congestion-prone but well-managed",
	},
}

// Chokepoints returns the static chokepoint table, highest risk first.
func Chokepoints() []Chokepoint {
	out := make([]Chokepoint, len(chokepoints))
	copy(out, chokepoints)
	return out
}
