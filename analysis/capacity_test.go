package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidewatch/model"
)

func TestModelCapacityEffectsHighExposure(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", AnnualThroughput: 10000000},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", AffectedCountries: []string{"China"}, CurrentRate: 20},
		},
	}

	effects := e.modelCapacityEffects(snap)
	require.Len(t, effects, 1)

	ce := effects[0]
	assert.Equal(t, 20.0, ce.AvgTariffExposure)
	assert.Equal(t, -0.25, ce.ExpectedVolumeChange)
	assert.Equal(t, 7500000.0, ce.NewThroughput)
	assert.InDelta(t, 56.25, ce.CapacityUtilization, 1e-9)
	assert.Equal(t, "High", ce.CongestionRisk)
	assert.Equal(t, "Critical", ce.InfrastructureStrain)
}

func TestModelCapacityEffectsModerateExposure(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", AnnualThroughput: 10000000},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", AffectedCountries: []string{"China"}, CurrentRate: 10},
		},
	}

	effects := e.modelCapacityEffects(snap)
	require.Len(t, effects, 1)
	assert.Equal(t, -0.15, effects[0].ExpectedVolumeChange)
	assert.Equal(t, "Reduced", effects[0].CongestionRisk)
	assert.Equal(t, "Elevated", effects[0].InfrastructureStrain)
}

func TestModelCapacityEffectsLowExposure(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Shanghai", Country: "China", AnnualThroughput: 10000000},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", AffectedCountries: []string{"China"}, CurrentRate: 5},
		},
	}

	effects := e.modelCapacityEffects(snap)
	require.Len(t, effects, 1)
	assert.Equal(t, -0.05, effects[0].ExpectedVolumeChange)
	assert.Equal(t, "Stable", effects[0].CongestionRisk)
	assert.Equal(t, "Minimal", effects[0].InfrastructureStrain)
}

func TestModelCapacityEffectsBelowThreshold(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			// Below the high-volume threshold: out of scope.
			{ID: "p1", Name: "Small Port", Country: "China", AnnualThroughput: 1000000},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", AffectedCountries: []string{"China"}, CurrentRate: 25},
		},
	}

	assert.Empty(t, e.modelCapacityEffects(snap))
}

func TestModelCapacityEffectsNoTariffMatch(t *testing.T) {
	e := New(Params{})
	snap := &model.Snapshot{
		Ports: []model.Port{
			{ID: "p1", Name: "Rotterdam", Country: "Netherlands", AnnualThroughput: 14000000},
		},
		Tariffs: []model.Tariff{
			{ID: "t1", AffectedCountries: []string{"China"}, CurrentRate: 25},
		},
	}

	// No tariff names the port's country; no averaging happens at all.
	assert.Empty(t, e.modelCapacityEffects(snap))
}

func TestTariffRatesForCountry(t *testing.T) {
	tariffs := []model.Tariff{
		{ID: "t1", AffectedCountries: []string{"China", "Vietnam"}, CurrentRate: 25},
		{ID: "t2", AffectedCountries: []string{"china"}, CurrentRate: 10},
		{ID: "t3", AffectedCountries: []string{"Germany"}, CurrentRate: 7},
	}

	rates := tariffRatesForCountry(tariffs, "China")
	assert.Equal(t, []float64{25, 10}, rates)

	assert.Empty(t, tariffRatesForCountry(tariffs, "Brazil"))
	assert.Empty(t, tariffRatesForCountry(tariffs, ""))
}
