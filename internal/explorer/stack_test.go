package explorer

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/statereach/internal/machine"
)

func TestWorkStackLIFO(t *testing.T) {
	var stack workStack

	_, ok := stack.Pop()
	assert.False(t, ok, "empty stack")

	stack.Push(machine.State{PC: 1})
	stack.Push(machine.State{PC: 2})
	stack.Push(machine.State{PC: 3})
	assert.Equal(t, 3, stack.Len())

	state, ok := stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, state.PC)

	state, ok = stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, state.PC)

	assert.Equal(t, 1, stack.Len())
}

// duplicates are allowed on the stack, dedup happens at pop time in the
// explorer loop
func TestWorkStackAllowsDuplicates(t *testing.T) {
	var stack workStack
	state := machine.State{PC: 4, Register: 2}

	stack.Push(state)
	stack.Push(state)
	assert.Equal(t, 2, stack.Len())
}
