// Package explorer implements exhaustive reachability exploration of register
// machine programs. Starting from the initial configuration it expands every
// reachable state exactly once and reports whether exploration completed or
// hit a fault.
package explorer

import (
	"context"
	"errors"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/statereach/internal/machine"
	"github.com/retroenv/statereach/internal/options"
	"github.com/retroenv/statereach/internal/visited"
)

// ErrStateLimit is returned when the visited store reaches the configured
// state limit. It is distinct from the machine faults, the program itself is
// fine, the run just exceeded its resource budget.
var ErrStateLimit = errors.New("visited state limit exceeded")

// Explorer drives one exploration run. The program is read-only, the visited
// store and the work stack are owned by the run and dropped with it.
type Explorer struct {
	logger  *log.Logger
	program machine.Program
	opts    options.Explorer

	stack   workStack
	visited *visited.Store

	statesExplored int
	maxStackDepth  int
}

// New creates a new explorer for the given program.
func New(logger *log.Logger, program machine.Program, opts options.Explorer) *Explorer {
	return &Explorer{
		logger:  logger,
		program: program,
		opts:    opts,
		visited: visited.NewStore(opts.TableSize),
	}
}

// Run explores every configuration reachable from the initial one.
// It terminates when the work stack is exhausted, when a fault is hit or
// when the context is cancelled. The returned error is nil exactly if the
// result reports success.
//
// Revisiting an already expanded state is expected steady-state behavior and
// silently discarded, it is how pop-time dedup is realized.
func (e *Explorer) Run(ctx context.Context) (Result, error) {
	e.stack.Push(machine.Initial())

	for e.stack.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return e.failure(err)
		}

		// the stack size before the pop is the depth statistic
		if depth := e.stack.Len(); depth > e.maxStackDepth {
			e.maxStackDepth = depth
		}

		state, _ := e.stack.Pop()
		if e.visited.Contains(state) {
			continue
		}
		if e.visited.Len() >= e.opts.MaxStates {
			return e.failure(ErrStateLimit)
		}
		e.visited.Add(state)
		e.statesExplored++
		e.logProgress()

		// halted states are leaves, they are recorded but not expanded
		if state.Halted {
			continue
		}

		successors, err := machine.Step(e.program, state, e.opts.MaxRegister, e.opts.PreciseBranches)
		if err != nil {
			return e.failure(err)
		}
		for _, successor := range successors {
			e.stack.Push(successor)
		}
	}

	return e.result(true, ""), nil
}

// failure stops the run, keeping the statistics gathered so far.
func (e *Explorer) failure(err error) (Result, error) {
	return e.result(false, err.Error()), err
}

func (e *Explorer) result(success bool, message string) Result {
	return Result{
		Success:        success,
		StatesExplored: e.statesExplored,
		MaxStackDepth:  e.maxStackDepth,
		LoadFactor:     e.visited.LoadFactor(),
		ErrorMessage:   message,
	}
}

// logProgress narrates exploration progress in verbose mode. It is a pure
// diagnostic channel and does not alter control flow or results.
func (e *Explorer) logProgress() {
	if !e.opts.Verbose || e.opts.ProgressInterval <= 0 {
		return
	}
	if e.statesExplored%e.opts.ProgressInterval != 0 {
		return
	}
	e.logger.Info("Exploration progress",
		log.Int("states", e.statesExplored),
		log.Int("pending", e.stack.Len()),
	)
}
