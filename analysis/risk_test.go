package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tidewatch/model"
)

func TestRiskLevelFor(t *testing.T) {
	assert.Equal(t, RiskLow, RiskLevelFor(0))
	assert.Equal(t, RiskLow, RiskLevelFor(39.9))
	assert.Equal(t, RiskMedium, RiskLevelFor(40))
	assert.Equal(t, RiskMedium, RiskLevelFor(59.9))
	assert.Equal(t, RiskHigh, RiskLevelFor(60))
	assert.Equal(t, RiskHigh, RiskLevelFor(79.9))
	assert.Equal(t, RiskCritical, RiskLevelFor(80))
	assert.Equal(t, RiskCritical, RiskLevelFor(100))
}

func TestSeverityScore(t *testing.T) {
	assert.Equal(t, 25.0, SeverityScore(model.SeverityCritical))
	assert.Equal(t, 15.0, SeverityScore(model.SeverityHigh))
	assert.Equal(t, 8.0, SeverityScore(model.SeverityMedium))
	assert.Equal(t, 3.0, SeverityScore(model.SeverityLow))

	// Unknown severities contribute a flat 5
	assert.Equal(t, 5.0, SeverityScore(model.Severity("catastrophic")))
	assert.Equal(t, 5.0, SeverityScore(model.Severity("")))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(-5))
	assert.Equal(t, 42.0, clampScore(42))
	assert.Equal(t, 100.0, clampScore(180))
}
