package explorer

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/statereach/internal/machine"
	"github.com/retroenv/statereach/internal/options"
)

// countdown sets the register and decrements it to zero in a jnz loop.
// Its reachable state space has exactly 13 configurations.
var countdownProgram = machine.Program{
	{Kind: machine.Set, Operand: 3},
	{Kind: machine.Dec},
	{Kind: machine.Jnz, Operand: -1},
	{Kind: machine.Halt},
}

func testOptions() options.Explorer {
	opts := options.NewExplorer()
	opts.TableSize = 64
	return opts
}

func runProgram(t *testing.T, program machine.Program, opts options.Explorer) (Result, error) {
	t.Helper()

	logger := log.NewTestLogger(t)
	exp := New(logger, program, opts)
	return exp.Run(context.Background())
}

func TestRunHaltOnly(t *testing.T) {
	result, err := runProgram(t, machine.Program{{Kind: machine.Halt}}, testOptions())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	// the initial state and its halted self-loop successor
	assert.Equal(t, 2, result.StatesExplored)
	assert.Equal(t, 1, result.MaxStackDepth)
	assert.Equal(t, "", result.ErrorMessage)
}

func TestRunCountdown(t *testing.T) {
	result, err := runProgram(t, countdownProgram, testOptions())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 13, result.StatesExplored)
}

// TestRunLoop checks the decrement/jump loop reference program: the register
// oscillates, both jnz edges are explored and the run halts safely.
func TestRunLoop(t *testing.T) {
	program := machine.Program{
		{Kind: machine.Inc},
		{Kind: machine.Jnz, Operand: 2},
		{Kind: machine.Inc},
		{Kind: machine.Dec},
		{Kind: machine.Jnz, Operand: -3},
		{Kind: machine.Halt},
	}

	result, err := runProgram(t, program, testOptions())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 11, result.StatesExplored)
}

// TestRunDeterminism verifies that repeated runs of the same program produce
// identical results.
func TestRunDeterminism(t *testing.T) {
	first, err := runProgram(t, countdownProgram, testOptions())
	assert.NoError(t, err)

	second, err := runProgram(t, countdownProgram, testOptions())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunJumpOutOfBounds(t *testing.T) {
	program := machine.Program{
		{Kind: machine.Inc},
		{Kind: machine.Jnz, Operand: 100},
		{Kind: machine.Halt},
	}

	result, err := runProgram(t, program, testOptions())

	assert.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "PC out of bounds (101) at state with register=1", result.ErrorMessage)

	var fault machine.PCOutOfRangeError
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, 101, fault.PC)
}

func TestRunInvalidInstruction(t *testing.T) {
	program := machine.Program{
		{Kind: machine.Inc},
		{Kind: machine.Kind(250)},
	}

	result, err := runProgram(t, program, testOptions())

	assert.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid instruction at PC 1", result.ErrorMessage)
}

func TestRunLoadFactor(t *testing.T) {
	opts := testOptions()
	opts.TableSize = 64

	result, err := runProgram(t, countdownProgram, opts)

	assert.NoError(t, err)
	assert.Equal(t, float64(result.StatesExplored)/64, result.LoadFactor)
}

// TestRunPreciseBranches verifies that the precise branch policy explores
// only the edge selected by the register value, shrinking the state space.
func TestRunPreciseBranches(t *testing.T) {
	opts := testOptions()
	opts.PreciseBranches = true

	result, err := runProgram(t, countdownProgram, opts)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 9, result.StatesExplored)
}

// TestRunTermination runs an unconditional counting loop: the register clamp
// keeps the state space finite, so exploration terminates.
func TestRunTermination(t *testing.T) {
	program := machine.Program{
		{Kind: machine.Inc},
		{Kind: machine.Jnz, Operand: -1},
		{Kind: machine.Halt},
	}
	opts := testOptions()
	opts.MaxRegister = 2

	result, err := runProgram(t, program, opts)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 9, result.StatesExplored)
}

func TestRunStateLimit(t *testing.T) {
	opts := testOptions()
	opts.MaxStates = 4

	result, err := runProgram(t, countdownProgram, opts)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStateLimit))
	assert.False(t, result.Success)
	assert.Equal(t, 4, result.StatesExplored)
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := log.NewTestLogger(t)
	exp := New(logger, countdownProgram, testOptions())
	result, err := exp.Run(ctx)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, result.Success)
}
