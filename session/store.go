package session

import (
	"sync"
	"time"

	"weather-dashboard/models"

	"github.com/google/uuid"
)

// State is what the dashboard remembers about one visitor
type State struct {
	Selection models.Selection `json:"selection"`
	Location  *models.Location `json:"location,omitempty"`
	Updated   time.Time        `json:"updated"`
}

// Store holds visitor state in memory, keyed by session ID
type Store struct {
	entries map[string]State
	mutex   sync.RWMutex
	maxAge  time.Duration
	now     func() time.Time
}

// NewStore creates an empty store. Entries idle longer than maxAge are
// treated as absent; a non-positive maxAge keeps them forever.
func NewStore(maxAge time.Duration) *Store {
	return &Store{
		entries: make(map[string]State),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// NewID returns a fresh random session ID
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one produced by NewID
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Store) expired(st State) bool {
	return s.maxAge > 0 && s.now().Sub(st.Updated) > s.maxAge
}

// Get returns the state for id if present and not expired
func (s *Store) Get(id string) (State, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	st, ok := s.entries[id]
	if !ok || s.expired(st) {
		return State{}, false
	}
	return st, true
}

// update applies fn to the live state for id under the write lock
func (s *Store) update(id string, fn func(*State)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.pruneLocked()

	st := s.entries[id]
	fn(&st)
	st.Updated = s.now()
	s.entries[id] = st
}

// SaveSelection records the visitor's latest location choice
func (s *Store) SaveSelection(id string, sel models.Selection) {
	s.update(id, func(st *State) {
		st.Selection = sel
	})
}

// SaveLocation records the visitor's geolocated position
func (s *Store) SaveLocation(id string, loc models.Location) {
	s.update(id, func(st *State) {
		st.Location = &loc
	})
}

// ClearLocation forgets the visitor's geolocated position
func (s *Store) ClearLocation(id string) {
	s.update(id, func(st *State) {
		st.Location = nil
	})
}

// Prune removes expired entries and returns how many were dropped
func (s *Store) Prune() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.pruneLocked()
}

func (s *Store) pruneLocked() int {
	removed := 0
	for id, st := range s.entries {
		if s.expired(st) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of live entries
func (s *Store) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := 0
	for _, st := range s.entries {
		if !s.expired(st) {
			n++
		}
	}
	return n
}
