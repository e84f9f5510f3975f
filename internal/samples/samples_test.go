package samples

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/statereach/internal/machine"
)

func TestByName(t *testing.T) {
	program, ok := ByName("loop")
	assert.True(t, ok)
	assert.Len(t, program, 6)

	_, ok = ByName("unknown")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"counter", "loop"}, Names())
}

// every sample ends in a halt so exploration can run to completion
func TestSamplesEndInHalt(t *testing.T) {
	for _, name := range Names() {
		program, ok := ByName(name)
		assert.True(t, ok)
		assert.Equal(t, machine.Halt, program[len(program)-1].Kind, name)
	}
}
