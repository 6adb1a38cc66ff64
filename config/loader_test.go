package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestApplyDefaults(t *testing.T) {
	var c Config
	ApplyDefaults(&c)

	assert.Equal(t, 1500.0, c.Analysis.ValuePerTEU)
	assert.Equal(t, 5000000.0, c.Analysis.HighVolumeThreshold)
	assert.Equal(t, 10, c.Analysis.CompoundRiskTopN)
	assert.Equal(t, 2025, c.Analysis.ProjectionStartYear)
	assert.Equal(t, 2035, c.Analysis.ProjectionEndYear)
	assert.Equal(t, 30, c.Upstream.Timeout)
	assert.Equal(t, ":8090", c.Server.Port)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	var c Config
	c.Analysis.ValuePerTEU = 2000
	c.Server.Port = ":9000"
	ApplyDefaults(&c)

	assert.Equal(t, 2000.0, c.Analysis.ValuePerTEU)
	assert.Equal(t, ":9000", c.Server.Port)
}

func TestConfigUnmarshal(t *testing.T) {
	raw := []byte(`
app:
  name: "Tidewatch"
  version: "1.0"
analysis:
  value_per_teu: 1750.0
  compound_risk_top_n: 5
upstream:
  base_url: "http://upstream:8080"
logging:
  level: "debug"
  enable_colors: true
`)

	var c Config
	assert.NoError(t, yaml.Unmarshal(raw, &c))
	assert.Equal(t, "Tidewatch", c.App.Name)
	assert.Equal(t, 1750.0, c.Analysis.ValuePerTEU)
	assert.Equal(t, 5, c.Analysis.CompoundRiskTopN)
	assert.Equal(t, "http://upstream:8080", c.Upstream.BaseURL)
	assert.Equal(t, "debug", c.Logging.Level)
}
