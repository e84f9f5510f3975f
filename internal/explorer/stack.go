package explorer

import "github.com/retroenv/statereach/internal/machine"

// workStack is the LIFO of states pending expansion. Replacing recursion
// with an explicit heap-growable stack decouples traversal depth from the
// call stack, looping programs can produce arbitrarily deep simple paths.
//
// The stack does not deduplicate, a state can sit on it multiple times and
// is discarded at pop time if it was expanded in the meantime. Checking the
// visited store before every push would cost a probe per successor even for
// entries that never get popped.
type workStack struct {
	states []machine.State
}

// Push appends a state to the top of the stack.
func (w *workStack) Push(s machine.State) {
	w.states = append(w.states, s)
}

// Pop removes and returns the top state, or false if the stack is empty.
func (w *workStack) Pop() (machine.State, bool) {
	if len(w.states) == 0 {
		return machine.State{}, false
	}
	top := w.states[len(w.states)-1]
	w.states = w.states[:len(w.states)-1]
	return top, true
}

// Len returns the number of states on the stack.
func (w *workStack) Len() int {
	return len(w.states)
}
