// Package analysis implements the cross-entity impact-analysis engine:
// a single linear pass over an immutable snapshot of ports, disruptions
// and tariffs that derives regional risk statistics, multi-year
// economic projections, tariff and routing impact estimates, capacity
// effects, compound-risk rankings and cascading-effect chains.
//
// The engine is stateless and deterministic: Compute is a pure function
// of its input, performs no I/O, and two runs over the same snapshot
// marshal to byte-identical JSON. All map iteration goes through sorted
// key slices and every ranking has an explicit tie-break.
package analysis

import (
	"sort"

	"tidewatch/model"
	"tidewatch/reference"
)

// Params are the tunable constants of one engine instance. Zero values
// fall back to the standard parameters, so Engine{} behaves sensibly.
type Params struct {
	ValuePerTEU         float64 // USD per TEU-equivalent unit, used for economic values
	HighVolumeThreshold float64 // annual throughput above which capacity effects apply
	CompoundRiskTopN    int
	ProjectionStartYear int
	ProjectionEndYear   int
}

// DefaultParams returns the standard engine parameters.
func DefaultParams() Params {
	return Params{
		ValuePerTEU:         1500.0,
		HighVolumeThreshold: 5000000,
		CompoundRiskTopN:    10,
		ProjectionStartYear: 2025,
		ProjectionEndYear:   2035,
	}
}

// Engine runs the analysis pass. It holds only configuration; no state
// survives between Compute calls and instances are safe for concurrent
// use.
type Engine struct {
	params Params
}

// New creates an engine, filling zero-valued params with defaults.
func New(params Params) *Engine {
	def := DefaultParams()
	if params.ValuePerTEU == 0 {
		params.ValuePerTEU = def.ValuePerTEU
	}
	if params.HighVolumeThreshold == 0 {
		params.HighVolumeThreshold = def.HighVolumeThreshold
	}
	if params.CompoundRiskTopN == 0 {
		params.CompoundRiskTopN = def.CompoundRiskTopN
	}
	if params.ProjectionStartYear == 0 {
		params.ProjectionStartYear = def.ProjectionStartYear
	}
	if params.ProjectionEndYear == 0 {
		params.ProjectionEndYear = def.ProjectionEndYear
	}
	return &Engine{params: params}
}

// Report is the full set of named result collections for one snapshot.
// Plain, JSON-serializable data with no embedded behavior; the static
// reference listings ride along for display.
type Report struct {
	RegionalStats     []RegionalStat                 `json:"regional_stats"`
	Chokepoints       []reference.Chokepoint         `json:"chokepoints"`
	Projections       []YearProjection               `json:"projections"`
	TariffPortImpacts []TariffPortImpact             `json:"tariff_port_impacts"`
	RouteImpacts      []RouteImpact                  `json:"route_impacts"`
	CapacityEffects   []PortCapacityEffect           `json:"capacity_effects"`
	CrossImpacts      []CrossImpact                  `json:"cross_impacts"`
	CompoundRisks     []CompoundRisk                 `json:"compound_risks"`
	Cascades          []CascadingEffect              `json:"cascading_effects"`
	Strategies        []reference.AdaptationStrategy `json:"adaptation_strategies"`
}

// Compute runs the full pipeline: classify, aggregate, project,
// analyze tariff/vessel/port impacts, build cross-impact views, score
// compound risks, detect cascades, attach static strategies. The
// snapshot is read-only input and is never mutated.
func (e *Engine) Compute(snap *model.Snapshot) *Report {
	regionalStats := e.aggregateRegions(snap)
	regionNames := make([]string, len(regionalStats))
	for i := range regionalStats {
		regionNames[i] = regionalStats[i].Name
	}
	// Match resolution order must not depend on the economic sort.
	sort.Strings(regionNames)

	tariffImpacts := e.analyzeTariffImpacts(snap)
	capacityEffects := e.modelCapacityEffects(snap)

	return &Report{
		RegionalStats:     regionalStats,
		Chokepoints:       reference.Chokepoints(),
		Projections:       ProjectTradeScenarios(e.params.ProjectionStartYear, e.params.ProjectionEndYear),
		TariffPortImpacts: tariffImpacts,
		RouteImpacts:      e.analyzeRouteImpacts(snap),
		CapacityEffects:   capacityEffects,
		CrossImpacts:      buildCrossImpacts(tariffImpacts, snap, regionNames),
		CompoundRisks:     e.scoreCompoundRisks(snap),
		Cascades:          detectCascades(capacityEffects, snap.Tariffs),
		Strategies:        reference.AdaptationStrategies(),
	}
}
