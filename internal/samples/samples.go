// Package samples provides the built-in example programs.
package samples

import (
	"sort"

	"github.com/retroenv/statereach/internal/machine"
)

var programs = map[string]machine.Program{
	// a decrement/jump loop that oscillates the register and halts
	"loop": {
		{Kind: machine.Inc},
		{Kind: machine.Jnz, Operand: 2},
		{Kind: machine.Inc},
		{Kind: machine.Dec},
		{Kind: machine.Jnz, Operand: -3},
		{Kind: machine.Halt},
	},

	// a counter exercising the register clamp at both interval ends
	"counter": {
		{Kind: machine.Set, Operand: 995},
		{Kind: machine.Add, Operand: 10},
		{Kind: machine.Sub, Operand: 20},
		{Kind: machine.Jnz, Operand: -2},
		{Kind: machine.Halt},
	},
}

// ByName returns the built-in program with the given name.
func ByName(name string) (machine.Program, bool) {
	program, ok := programs[name]
	return program, ok
}

// Names returns the names of all built-in programs in sorted order.
func Names() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
