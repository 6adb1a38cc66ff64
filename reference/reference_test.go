package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChokepointsOrderedByRisk(t *testing.T) {
	cps := Chokepoints()
	require.Len(t, cps, 10)
	assert.Equal(t, "Strait of Hormuz", cps[0].Name)
	for i := 1; i < len(cps); i++ {
		assert.GreaterOrEqual(t, cps[i-1].RiskScore, cps[i].RiskScore)
	}
}

func TestChokepointsReturnsCopy(t *testing.T) {
	first := Chokepoints()
	first[0].RiskScore = 0
	assert.Equal(t, 78.0, Chokepoints()[0].RiskScore)
}

func TestShippingRoutes(t *testing.T) {
	routes := ShippingRoutes()
	require.Len(t, routes, 8)
	for _, r := range routes {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Origin)
		assert.NotEmpty(t, r.Destination)
		assert.Positive(t, r.MonthlyVessels)
		assert.Positive(t, r.AvgCapacityTEU)
	}
}

func TestShippingRoutesReturnsCopy(t *testing.T) {
	first := ShippingRoutes()
	first[0].MonthlyVessels = 0
	assert.Equal(t, 420, ShippingRoutes()[0].MonthlyVessels)
}

func TestAlternativesForRoute(t *testing.T) {
	alts := AlternativesForRoute("Asia-Europe")
	require.Len(t, alts, 2)
	assert.Contains(t, alts[0], "Cape of Good Hope")
}

func TestAlternativesForRouteUncatalogued(t *testing.T) {
	alts := AlternativesForRoute("Europe-Africa")
	require.Len(t, alts, 1)
	assert.Equal(t, defaultAlternativeRoute, alts[0])
}

func TestAdaptationStrategies(t *testing.T) {
	strategies := AdaptationStrategies()
	require.Len(t, strategies, 6)
	for _, s := range strategies {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Timeframe)
		assert.Contains(t, []string{"Low", "Medium", "High"}, s.CostLevel)
		assert.Contains(t, []string{"Low", "Medium", "High"}, s.Effectiveness)
	}
}
