package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`
	Upstream struct {
		BaseURL string `yaml:"base_url"`
		Timeout int    `yaml:"request_timeout"`
	} `yaml:"upstream"`
	Analysis struct {
		ValuePerTEU         float64 `yaml:"value_per_teu"`
		HighVolumeThreshold float64 `yaml:"high_volume_threshold"`
		CompoundRiskTopN    int     `yaml:"compound_risk_top_n"`
		ProjectionStartYear int     `yaml:"projection_start_year"`
		ProjectionEndYear   int     `yaml:"projection_end_year"`
	} `yaml:"analysis"`
	News struct {
		RSSUrl       string `yaml:"rss_url"`
		PollInterval int    `yaml:"poll_interval"`
	} `yaml:"news"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Logging struct {
		Level        string `yaml:"level"`
		EnableColors bool   `yaml:"enable_colors"`
	} `yaml:"logging"`
}

var Global Config

// Load reads the config.yaml file and fills in defaults for the
// analysis parameters so a partial config still produces a usable engine.
func Load() error {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, &Global); err != nil {
		return err
	}
	ApplyDefaults(&Global)
	return nil
}

// ApplyDefaults fills zero values with the engine's standard parameters.
func ApplyDefaults(c *Config) {
	if c.Analysis.ValuePerTEU == 0 {
		c.Analysis.ValuePerTEU = 1500.0
	}
	if c.Analysis.HighVolumeThreshold == 0 {
		c.Analysis.HighVolumeThreshold = 5000000
	}
	if c.Analysis.CompoundRiskTopN == 0 {
		c.Analysis.CompoundRiskTopN = 10
	}
	if c.Analysis.ProjectionStartYear == 0 {
		c.Analysis.ProjectionStartYear = 2025
	}
	if c.Analysis.ProjectionEndYear == 0 {
		c.Analysis.ProjectionEndYear = 2035
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 30
	}
	if c.Server.Port == "" {
		c.Server.Port = ":8090"
	}
}
