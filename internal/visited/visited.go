// Package visited implements the store of machine states that an exploration
// run has already expanded.
package visited

import (
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/statereach/internal/machine"
)

// Store answers whether a state has been seen before and records new states.
// It is owned by a single exploration run and torn down with it. The table
// size does not limit capacity, it is the denominator for load factor
// reporting.
type Store struct {
	states    set.Set[machine.State]
	count     int
	tableSize int
}

// NewStore creates a new empty store with the given table size.
func NewStore(tableSize int) *Store {
	return &Store{
		states:    set.New[machine.State](),
		tableSize: tableSize,
	}
}

// Contains returns whether the state has been recorded.
func (s *Store) Contains(state machine.State) bool {
	return s.states.Contains(state)
}

// Add records the state. It returns false if the state was already present,
// insertion is idempotent.
func (s *Store) Add(state machine.State) bool {
	if s.states.Contains(state) {
		return false
	}
	s.states.Add(state)
	s.count++
	return true
}

// Len returns the number of recorded states.
func (s *Store) Len() int {
	return s.count
}

// LoadFactor returns the ratio of recorded states to the table size.
func (s *Store) LoadFactor() float64 {
	return float64(s.count) / float64(s.tableSize)
}
