// CLAUDE:SUMMARY Preservation table: identity key → parked wrapper, identity key → pending scroll snapshot.
// Package store holds the state that crosses a document swap: which wrapper
// is parked under which identity key, and the scroll snapshot waiting for
// each key. An explicit instance with an explicit Clear — no module-level
// state, no persistence; destroy-time teardown resets everything.
package store

import (
	"github.com/hazyhaar/domswap/dom"
	"github.com/hazyhaar/domswap/internal/scroll"
)

// Store is the preservation table. Not safe for concurrent use; the keeper
// serialises access.
type Store struct {
	held  map[string]dom.Element
	snaps map[string]scroll.Snapshot
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		held:  make(map[string]dom.Element),
		snaps: make(map[string]scroll.Snapshot),
	}
}

// Hold parks a wrapper under key. When the key was already taken the
// previous wrapper is returned so the caller can apply its collision
// policy; last write wins at this layer.
func (s *Store) Hold(key string, el dom.Element) (evicted dom.Element) {
	evicted = s.held[key]
	s.held[key] = el
	return evicted
}

// IsHeld reports whether a wrapper is parked under key.
func (s *Store) IsHeld(key string) bool {
	_, ok := s.held[key]
	return ok
}

// Take removes and returns the wrapper parked under key.
func (s *Store) Take(key string) (dom.Element, bool) {
	el, ok := s.held[key]
	if ok {
		delete(s.held, key)
	}
	return el, ok
}

// PutSnapshot stores the pending scroll snapshot for key.
func (s *Store) PutSnapshot(key string, snap scroll.Snapshot) {
	s.snaps[key] = snap
}

// TakeSnapshot removes and returns the pending snapshot for key.
func (s *Store) TakeSnapshot(key string) (scroll.Snapshot, bool) {
	snap, ok := s.snaps[key]
	if ok {
		delete(s.snaps, key)
	}
	return snap, ok
}

// Held returns the number of parked wrappers.
func (s *Store) Held() int {
	return len(s.held)
}

// PendingSnapshots returns the number of snapshots awaiting restore.
func (s *Store) PendingSnapshots() int {
	return len(s.snaps)
}

// Clear drops every parked wrapper and pending snapshot.
func (s *Store) Clear() {
	s.held = make(map[string]dom.Element)
	s.snaps = make(map[string]scroll.Snapshot)
}
