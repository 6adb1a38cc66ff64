package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Upstream services are not consistent about field naming
// (affected_regions vs affectedRegions, annual_throughput vs
// annualThroughput) or about types (economic_impact arrives as a number
// or as free text like "$2.3B"). Everything is resolved here, once, at
// the ingestion boundary; the analytic stages only ever see the
// canonical shapes in model.go.

// NormalizeSnapshot decodes a raw snapshot payload into canonical form.
func NormalizeSnapshot(data []byte) (*Snapshot, error) {
	var raw struct {
		Ports       []json.RawMessage `json:"ports"`
		Disruptions []json.RawMessage `json:"disruptions"`
		Tariffs     []json.RawMessage `json:"tariffs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("snapshot payload: %w", err)
	}

	snap := &Snapshot{
		Ports:       make([]Port, 0, len(raw.Ports)),
		Disruptions: make([]Disruption, 0, len(raw.Disruptions)),
		Tariffs:     make([]Tariff, 0, len(raw.Tariffs)),
	}
	for i, msg := range raw.Ports {
		p, err := NormalizePort(msg)
		if err != nil {
			return nil, fmt.Errorf("port %d: %w", i, err)
		}
		snap.Ports = append(snap.Ports, p)
	}
	for i, msg := range raw.Disruptions {
		d, err := NormalizeDisruption(msg)
		if err != nil {
			return nil, fmt.Errorf("disruption %d: %w", i, err)
		}
		snap.Disruptions = append(snap.Disruptions, d)
	}
	for i, msg := range raw.Tariffs {
		t, err := NormalizeTariff(msg)
		if err != nil {
			return nil, fmt.Errorf("tariff %d: %w", i, err)
		}
		snap.Tariffs = append(snap.Tariffs, t)
	}
	return snap, nil
}

// NormalizePort maps a raw port record onto the canonical Port shape.
func NormalizePort(data []byte) (Port, error) {
	m, err := decodeFields(data)
	if err != nil {
		return Port{}, err
	}

	p := Port{
		ID:      stringField(m, "id", "portId", "port_id"),
		Name:    stringField(m, "name", "portName", "port_name"),
		Country: stringField(m, "country"),
		Region:  stringField(m, "region"),
		Status:  stringField(m, "status"),
	}
	p.AnnualThroughput, _ = numberField(m, "annual_throughput", "annualThroughput", "throughput")
	p.StrategicImportance, _ = numberField(m, "strategic_importance", "strategicImportance", "importance")

	if lat, ok := numberField(m, "latitude", "lat"); ok {
		if lon, ok := numberField(m, "longitude", "lon", "lng"); ok {
			p.Latitude = &lat
			p.Longitude = &lon
		}
	}
	return p, nil
}

// NormalizeDisruption maps a raw disruption record onto the canonical
// Disruption shape. A free-text economic impact that cannot be parsed
// defaults to 0 and leaves a marker in Unresolved, so data-quality gaps
// stay visible downstream.
func NormalizeDisruption(data []byte) (Disruption, error) {
	m, err := decodeFields(data)
	if err != nil {
		return Disruption{}, err
	}

	d := Disruption{
		ID:          stringField(m, "id"),
		Title:       stringField(m, "title", "name"),
		Description: stringField(m, "description"),
		Severity:    Severity(strings.ToLower(stringField(m, "severity"))),
		Type:        stringField(m, "type", "disruption_type", "disruptionType"),
		StartDate:   stringField(m, "start_date", "startDate"),
		Status:      stringField(m, "status"),
	}
	d.AffectedRegions = stringListField(m, "affected_regions", "affectedRegions", "regions")
	d.ConfidenceScore, _ = numberField(m, "confidence_score", "confidenceScore")

	if raw, ok := firstField(m, "economic_impact", "economicImpact"); ok {
		impact, parsed := parseMagnitude(raw)
		d.EconomicImpact = impact
		if !parsed {
			d.Unresolved = append(d.Unresolved, "economic_impact: unparseable magnitude")
		}
	}
	return d, nil
}

// NormalizeTariff maps a raw tariff record onto the canonical Tariff shape.
func NormalizeTariff(data []byte) (Tariff, error) {
	m, err := decodeFields(data)
	if err != nil {
		return Tariff{}, err
	}

	t := Tariff{
		ID:            stringField(m, "id"),
		Title:         stringField(m, "title", "name"),
		EffectiveDate: stringField(m, "effective_date", "effectiveDate"),
	}
	t.AffectedCountries = stringListField(m, "affected_countries", "affectedCountries", "countries")
	t.ProductCategories = stringListField(m, "product_categories", "productCategories", "categories")
	t.CurrentRate, _ = numberField(m, "current_rate", "currentRate", "rate")

	if raw, ok := firstField(m, "affected_trade", "affectedTrade"); ok {
		trade, parsed := parseMagnitude(raw)
		t.AffectedTrade = trade
		if !parsed {
			t.Unresolved = append(t.Unresolved, "affected_trade: unparseable magnitude")
		}
	}
	return t, nil
}

func decodeFields(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// firstField returns the raw value of the first alias present.
func firstField(m map[string]json.RawMessage, aliases ...string) (json.RawMessage, bool) {
	for _, key := range aliases {
		if v, ok := m[key]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]json.RawMessage, aliases ...string) string {
	raw, ok := firstField(m, aliases...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// Numeric IDs show up occasionally; render them as text.
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func numberField(m map[string]json.RawMessage, aliases ...string) (float64, bool) {
	raw, ok := firstField(m, aliases...)
	if !ok {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

func stringListField(m map[string]json.RawMessage, aliases ...string) []string {
	raw, ok := firstField(m, aliases...)
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	// Some upstream records send a single label instead of a list.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return []string{s}
	}
	return nil
}

var magnitudeSuffixes = []struct {
	suffix string
	factor float64
}{
	{"trillion", 1e12},
	{"billion", 1e9},
	{"million", 1e6},
	{"thousand", 1e3},
	{"bn", 1e9},
	{"t", 1e12},
	{"b", 1e9},
	{"m", 1e6},
	{"k", 1e3},
}

// parseMagnitude accepts a numeric JSON value or a free-text magnitude
// description ("$2.3B", "450 million", "1,200,000") and returns its
// numeric value. The second return is false when the text could not be
// interpreted; the caller then defaults to 0 and records the gap.
func parseMagnitude(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "usd")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	factor := 1.0
	for _, ms := range magnitudeSuffixes {
		if strings.HasSuffix(s, ms.suffix) {
			factor = ms.factor
			s = strings.TrimSpace(strings.TrimSuffix(s, ms.suffix))
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * factor, true
}
