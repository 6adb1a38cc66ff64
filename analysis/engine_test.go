package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidewatch/model"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", AnnualThroughput: 47000000, StrategicImportance: 95,
				Latitude: fptr(31.2304), Longitude: fptr(121.4737)},
			{ID: "p2", Name: "Singapore", Country: "Singapore", AnnualThroughput: 37000000, StrategicImportance: 92,
				Latitude: fptr(1.3521), Longitude: fptr(103.8198)},
			{ID: "p3", Name: "Rotterdam", Country: "Netherlands", AnnualThroughput: 14000000, StrategicImportance: 88,
				Latitude: fptr(51.9496), Longitude: fptr(4.1453)},
			{ID: "p4", Name: "Los Angeles", Country: "United States", AnnualThroughput: 9900000, StrategicImportance: 85,
				Latitude: fptr(33.7405), Longitude: fptr(-118.276)},
		},
		Disruptions: []model.Disruption{
			{ID: "d1", Title: "Typhoon season", Severity: model.SeverityHigh,
				AffectedRegions: []string{"Asia Pacific"}, EconomicImpact: 2300000000},
			{ID: "d2", Title: "Red Sea attacks", Severity: model.SeverityCritical,
				AffectedRegions: []string{"Middle East", "Europe"}, EconomicImpact: 5000000000},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", Title: "Section 301", AffectedCountries: []string{"China"},
				ProductCategories: []string{"Electronics"}, CurrentRate: 25, AffectedTrade: 300000000000},
			{ID: "t2", Title: "Steel and aluminum", AffectedCountries: []string{"United States", "Netherlands"},
				CurrentRate: 10, AffectedTrade: 40000000000},
		},
	}
}

func TestComputeDeterministic(t *testing.T) {
	e := New(Params{})
	snap := testSnapshot()

	first, err := json.Marshal(e.Compute(snap))
	require.NoError(t, err)
	second, err := json.Marshal(e.Compute(snap))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeReportSections(t *testing.T) {
	e := New(Params{})
	rep := e.Compute(testSnapshot())

	assert.NotEmpty(t, rep.RegionalStats)
	assert.Len(t, rep.Chokepoints, 10)
	assert.Len(t, rep.Projections, 11)
	assert.NotEmpty(t, rep.TariffPortImpacts)
	assert.NotEmpty(t, rep.RouteImpacts)
	assert.NotEmpty(t, rep.CapacityEffects)
	assert.NotEmpty(t, rep.CrossImpacts)
	assert.NotEmpty(t, rep.CompoundRisks)
	assert.NotEmpty(t, rep.Cascades)
	assert.Len(t, rep.Strategies, 6)
}

func TestComputeEmptySnapshot(t *testing.T) {
	e := New(Params{})
	rep := e.Compute(&model.Snapshot{})

	// Derived sections are empty, static sections still present.
	assert.Empty(t, rep.RegionalStats)
	assert.Empty(t, rep.TariffPortImpacts)
	assert.Empty(t, rep.RouteImpacts)
	assert.Empty(t, rep.CapacityEffects)
	assert.Empty(t, rep.CrossImpacts)
	assert.Empty(t, rep.CompoundRisks)
	assert.Empty(t, rep.Cascades)
	assert.Len(t, rep.Chokepoints, 10)
	assert.Len(t, rep.Projections, 11)
	assert.Len(t, rep.Strategies, 6)
}

func TestComputeDoesNotMutateSnapshot(t *testing.T) {
	e := New(Params{})
	snap := testSnapshot()
	before, err := json.Marshal(snap)
	require.NoError(t, err)

	e.Compute(snap)

	after, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestNewFillsDefaults(t *testing.T) {
	e := New(Params{})
	assert.Equal(t, DefaultParams(), e.params)

	e = New(Params{ValuePerTEU: 2000})
	assert.Equal(t, 2000.0, e.params.ValuePerTEU)
	assert.Equal(t, DefaultParams().CompoundRiskTopN, e.params.CompoundRiskTopN)
}

func TestRegionalStatsOrdering(t *testing.T) {
	e := New(Params{})
	rep := e.Compute(testSnapshot())

	require.NotEmpty(t, rep.RegionalStats)
	for i := 1; i < len(rep.RegionalStats); i++ {
		assert.GreaterOrEqual(t,
			rep.RegionalStats[i-1].EconomicValue,
			rep.RegionalStats[i].EconomicValue)
	}
}
