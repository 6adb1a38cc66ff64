package server

import (
	"sync"

	"tidewatch/analysis"
	"tidewatch/model"
)

// Store holds the latest snapshot and the report computed from it. The
// engine itself is stateless; this is the only mutable state the API
// serves from.
type Store struct {
	mu       sync.RWMutex
	snapshot *model.Snapshot
	report   *analysis.Report
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(snap *model.Snapshot, report *analysis.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.report = report
}

func (s *Store) Snapshot() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Store) Report() *analysis.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}
