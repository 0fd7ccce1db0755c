// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"sync"
	"time"

	"github.com/pdiddy/spaceper/pkg/types"
)

// Ticket identifies one search started with State.Begin.
type Ticket struct {
	Generation uint64
	Query      string
}

// Snapshot is a copy of the current result set.
type Snapshot struct {
	Generation uint64               `json:"generation" yaml:"generation"`
	Query      string               `json:"query" yaml:"query"`
	Items      []types.DocumentView `json:"items" yaml:"items"`
	Synopsis   string               `json:"synopsis" yaml:"synopsis"`
	Loading    bool                 `json:"loading" yaml:"loading"`
	Error      string               `json:"error,omitempty" yaml:"error,omitempty"`
	UpdatedAt  time.Time            `json:"updatedAt" yaml:"updated_at"`
}

// State holds the result set shown to the user. Searches may overlap; only
// the most recently started one may change the result set, so a slow
// response for an older query never replaces a newer one.
type State struct {
	mu sync.RWMutex

	latest uint64
	query  string
	items  []types.DocumentView
	byID   map[string]int
	synop  string
	// applied is the generation whose items are currently shown.
	applied uint64
	loading bool
	errMsg  string
	updated time.Time

	now func() time.Time
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		items: []types.DocumentView{},
		byID:  map[string]int{},
		now:   time.Now,
	}
}

// Begin starts a search for query and returns its ticket. Any ticket issued
// earlier becomes stale.
func (s *State) Begin(query string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	s.loading = true
	s.errMsg = ""
	return Ticket{Generation: s.latest, Query: query}
}

// Complete installs docs if t is still the latest ticket and reports whether
// it did. Stale completions are discarded.
func (s *State) Complete(t Ticket, docs []types.DocumentView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Generation != s.latest {
		return false
	}
	items := make([]types.DocumentView, len(docs))
	copy(items, docs)
	byID := make(map[string]int, len(items))
	for i, d := range items {
		if _, dup := byID[d.ID]; !dup {
			byID[d.ID] = i
		}
	}
	s.query = t.Query
	s.items = items
	s.byID = byID
	s.synop = Synopsis(t.Query, items)
	s.applied = t.Generation
	s.loading = false
	s.errMsg = ""
	s.updated = s.now()
	return true
}

// Fail records err for the latest ticket and reports whether it did. The
// previously shown documents stay in place.
func (s *State) Fail(t Ticket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Generation != s.latest {
		return false
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
	}
	s.updated = s.now()
	return true
}

// Snapshot returns a copy of the current result set.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]types.DocumentView, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Generation: s.applied,
		Query:      s.query,
		Items:      items,
		Synopsis:   s.synop,
		Loading:    s.loading,
		Error:      s.errMsg,
		UpdatedAt:  s.updated,
	}
}

// Lookup finds a document in the current result set by ID.
func (s *State) Lookup(id string) (types.DocumentView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return types.DocumentView{}, false
	}
	return s.items[i], true
}
