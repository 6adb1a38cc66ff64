package model

import (
	"encoding/json"
	"os"
)

// Severity categorizes a disruption event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Port is a read-only input entity. The engine never mutates it.
type Port struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Country             string   `json:"country"`
	Region              string   `json:"region,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	AnnualThroughput    float64  `json:"annual_throughput"` // TEU-equivalent units per year
	StrategicImportance float64  `json:"strategic_importance"`
	Status              string   `json:"status,omitempty"`
}

// HasCoordinates reports whether the port can take part in
// distance-based calculations.
func (p *Port) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Disruption is an active or forecast trade disruption event. The
// affected-region labels are free text and may not match any canonical
// region name.
type Disruption struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Severity        Severity `json:"severity"`
	Type            string   `json:"type,omitempty"`
	AffectedRegions []string `json:"affected_regions"`
	StartDate       string   `json:"start_date,omitempty"`
	EconomicImpact  float64  `json:"economic_impact"`
	ConfidenceScore float64  `json:"confidence_score,omitempty"`
	Status          string   `json:"status,omitempty"`
	Unresolved      []string `json:"unresolved,omitempty"`
}

// Tariff is an active trade tariff affecting one or more countries.
type Tariff struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	AffectedCountries []string `json:"affected_countries"`
	ProductCategories []string `json:"product_categories,omitempty"`
	CurrentRate       float64  `json:"current_rate"` // percentage
	AffectedTrade     float64  `json:"affected_trade"`
	EffectiveDate     string   `json:"effective_date,omitempty"`
	Unresolved        []string `json:"unresolved,omitempty"`
}

// Snapshot is the fully-materialized, immutable input to one analysis
// pass. The engine holds no state between snapshots.
type Snapshot struct {
	Ports       []Port       `json:"ports"`
	Disruptions []Disruption `json:"disruptions"`
	Tariffs     []Tariff     `json:"tariffs"`
}

// Save writes the snapshot to a JSON file.
func (s *Snapshot) Save(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadSnapshot reads a snapshot from a JSON file. The file is run
// through the same normalization as upstream responses, so saved raw
// payloads load the same way as canonical ones.
func LoadSnapshot(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NormalizeSnapshot(data)
}
