package machine

import "fmt"

// State is one machine configuration. It is a small comparable value type,
// equality of all three fields is the dedup key during exploration.
// States are never mutated after construction, successors are always new
// values.
type State struct {
	PC       int
	Register int
	Halted   bool
}

// Initial returns the initial configuration of every exploration run.
func Initial() State {
	return State{}
}

// String returns a compact description of the configuration.
func (s State) String() string {
	if s.Halted {
		return fmt.Sprintf("pc=%d register=%d halted", s.PC, s.Register)
	}
	return fmt.Sprintf("pc=%d register=%d", s.PC, s.Register)
}

// clamp bounds a register value into [0, maxRegister]. Applied at every
// producing transition so the reachable state space stays finite even though
// the machine arithmetic is unbounded.
func clamp(value, maxRegister int) int {
	if value < 0 {
		return 0
	}
	if value > maxRegister {
		return maxRegister
	}
	return value
}
