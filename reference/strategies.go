package reference

// AdaptationStrategy is a static catalog entry describing a mitigation
// approach operators can take against trade disruptions. Pure display
// content returned alongside scored results; no computation reads it.
type AdaptationStrategy struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Timeframe     string `json:"timeframe"`
	CostLevel     string `json:"cost_level"`
	Effectiveness string `json:"effectiveness"`
}

var adaptationStrategies = []AdaptationStrategy{
	{
		Name:          "Multi-port diversification",
		Description:   "Spread cargo across two or more regional gateways to cap single-port exposure",
		Timeframe:     "3-6 months",
		CostLevel:     "Medium",
		Effectiveness: "High",
	},
	{
		Name:          "Inventory buffering",
		Description:   "Raise safety stock for tariff-exposed categories ahead of effective dates",
		Timeframe:     "1-3 months",
		CostLevel:     "Medium",
		Effectiveness: "Medium",
	},
	{
		Name:          "Contract reopeners",
		Description:   "Negotiate tariff pass-through and force-majeure clauses into freight contracts",
		Timeframe:     "2-4 months",
		CostLevel:     "Low",
		Effectiveness: "Medium",
	},
	{
		Name:          "Nearshoring",
		Description:   "Shift sourcing to suppliers inside the destination trade bloc",
		Timeframe:     "12-24 months",
		CostLevel:     "High",
		Effectiveness: "High",
	},
	{
		Name:          "Modal shift",
		Description:   "Move time-critical cargo to rail or air when sea lanes are constrained",
		Timeframe:     "1-2 months",
		CostLevel:     "High",
		Effectiveness: "Medium",
	},
	{
		Name:          "Chokepoint insurance",
		Description:   "Purchase war-risk and delay cover for transits through high-risk passages",
		Timeframe:     "Under 1 month",
		CostLevel:     "Low",
		Effectiveness: "Low",
	},
}

// AdaptationStrategies returns the static strategy catalog.
func AdaptationStrategies() []AdaptationStrategy {
	out := make([]AdaptationStrategy, len(adaptationStrategies))
	copy(out, adaptationStrategies)
	return out
}
