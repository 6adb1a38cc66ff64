package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidewatch/model"
)

func fptr(v float64) *float64 { return &v }

func TestMatchPortsForCountryExact(t *testing.T) {
	ports := []model.Port{
		{ID: "p1", Name: "Shanghai", Country: "China"},
		{ID: "p2", Name: "Hong Kong", Country: "China (Hong Kong SAR)"},
		{ID: "p3", Name: "Port of China Basin", Country: "United States"},
	}

	// An exact country hit suppresses the fuzzy and name tiers.
	matches := matchPortsForCountry(ports, "China")
	require.Len(t, matches, 1)
	assert.Equal(t, "p1", matches[0].port.ID)
	assert.False(t, matches[0].byName)
}

func TestMatchPortsForCountrySubstring(t *testing.T) {
	ports := []model.Port{
		{ID: "p2", Name: "Hong Kong", Country: "China (Hong Kong SAR)"},
	}

	matches := matchPortsForCountry(ports, "China")
	require.Len(t, matches, 1)
	assert.Equal(t, "p2", matches[0].port.ID)
	assert.False(t, matches[0].byName)
}

func TestMatchPortsForCountryNameFallbackFlagged(t *testing.T) {
	ports := []model.Port{
		{ID: "p3", Name: "Port of China Basin", Country: "United States"},
	}

	matches := matchPortsForCountry(ports, "China")
	require.Len(t, matches, 1)
	assert.True(t, matches[0].byName)
}

func TestMatchPortsForCountryEmpty(t *testing.T) {
	ports := []model.Port{{ID: "p1", Name: "Shanghai", Country: "China"}}
	assert.Empty(t, matchPortsForCountry(ports, ""))
	assert.Empty(t, matchPortsForCountry(ports, "  "))
	assert.Empty(t, matchPortsForCountry(ports, "Brazil"))
}

func TestAnalyzeTariffImpacts(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", AnnualThroughput: 10000000, StrategicImportance: 90},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", Title: "Section 301", AffectedCountries: []string{"China"}, CurrentRate: 25},
		},
	}

	impacts := e.analyzeTariffImpacts(snap)
	require.Len(t, impacts, 1)

	imp := impacts[0]
	assert.Equal(t, "t1", imp.TariffID)
	assert.Equal(t, "p1", imp.PortID)
	assert.Equal(t, 2500000.0, imp.CostIncrease)
	assert.Equal(t, 250000.0, imp.VolumeShift)
	assert.Equal(t, "Severe", imp.CompetitivenessChange)
	assert.Equal(t, "18-24 months", imp.RecoveryTime)
}

func TestBuildTariffImpactDefaultThroughput(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Chittagong", Country: "Bangladesh"},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", Title: "Textile tariff", AffectedCountries: []string{"Bangladesh"}, CurrentRate: 10},
		},
	}

	impacts := e.analyzeTariffImpacts(snap)
	require.Len(t, impacts, 1)

	imp := impacts[0]
	// Missing throughput falls back to the default and leaves a marker.
	assert.Equal(t, (10.0/100)*defaultThroughput, imp.CostIncrease)
	assert.Contains(t, imp.Unresolved, "annual_throughput missing, default applied")
	// Volume shift is capped at 30% of the actual (zero) throughput.
	assert.Zero(t, imp.VolumeShift)
}

func TestFindAlternatives(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", StrategicImportance: 90,
				Latitude: fptr(31.2304), Longitude: fptr(121.4737)},
			{ID: "p2", Name: "Busan", Country: "South Korea", StrategicImportance: 85,
				Latitude: fptr(35.1796), Longitude: fptr(129.0756)},
			{ID: "p3", Name: "Singapore", Country: "Singapore", StrategicImportance: 92,
				Latitude: fptr(1.3521), Longitude: fptr(103.8198)},
			// Same country as the impacted port: excluded.
			{ID: "p4", Name: "Ningbo", Country: "China", StrategicImportance: 88,
				Latitude: fptr(29.8683), Longitude: fptr(121.544)},
			// Importance more than 20 points below: excluded.
			{ID: "p5", Name: "Haiphong", Country: "Vietnam", StrategicImportance: 40,
				Latitude: fptr(20.8449), Longitude: fptr(106.6881)},
			// No coordinates: excluded.
			{ID: "p6", Name: "Manila", Country: "Philippines", StrategicImportance: 80},
			// Different region: excluded.
			{ID: "p7", Name: "Rotterdam", Country: "Netherlands", StrategicImportance: 95,
				Latitude: fptr(51.9496), Longitude: fptr(4.1453)},
		},
	}

	alts, flagged := e.findAlternatives(snap, &snap.Ports[0])
	assert.Empty(t, flagged)
	require.Len(t, alts, 2)

	// Ranked by distance: Busan is closer to Shanghai than Singapore.
	assert.Equal(t, "p2", alts[0].PortID)
	assert.Equal(t, "p3", alts[1].PortID)
	assert.Less(t, alts[0].DistanceKm, alts[1].DistanceKm)
	assert.InDelta(t, alts[0].DistanceKm*0.8, alts[0].AdditionalCost, 1e-9)
}

func TestFindAlternativesNoCoordinates(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", StrategicImportance: 90},
		},
	}

	alts, flagged := e.findAlternatives(snap, &snap.Ports[0])
	assert.Empty(t, alts)
	assert.Equal(t, "alternatives: port lacks coordinates", flagged)
}

func TestCompetitivenessTiers(t *testing.T) {
	assert.Equal(t, "Severe", competitivenessTier(16))
	assert.Equal(t, "Moderate", competitivenessTier(10))
	assert.Equal(t, "Mild", competitivenessTier(8))
	assert.Equal(t, "Mild", competitivenessTier(2))

	assert.Equal(t, "18-24 months", recoveryTime(20))
	assert.Equal(t, "9-15 months", recoveryTime(12))
	assert.Equal(t, "3-6 months", recoveryTime(5))
}
