package machine

import "fmt"

// PCOutOfRangeError is the fault raised when a non-halted configuration is
// about to be expanded while its pc lies outside the program.
type PCOutOfRangeError struct {
	PC       int
	Register int
}

func (e PCOutOfRangeError) Error() string {
	return fmt.Sprintf("PC out of bounds (%d) at state with register=%d", e.PC, e.Register)
}

// InvalidInstructionError is the fault raised when the instruction at a valid
// pc is not part of the instruction set.
type InvalidInstructionError struct {
	PC int
}

func (e InvalidInstructionError) Error() string {
	return fmt.Sprintf("Invalid instruction at PC %d", e.PC)
}

// Step computes all successor configurations of a non-halted state.
// Register results are clamped to [0, maxRegister].
//
// A jnz always produces the fall-through successor and additionally the jump
// successor if the register is non-zero. The jump target is not bounds
// checked here, a target outside the program faults when it is expanded, not
// when it is produced. With precise set, jnz instead produces exactly one
// successor, chosen by the register value.
//
// Both faults terminate the whole run, they are not recoverable per state.
func Step(program Program, s State, maxRegister int, precise bool) ([]State, error) {
	if s.PC < 0 || s.PC >= len(program) {
		return nil, PCOutOfRangeError{PC: s.PC, Register: s.Register}
	}

	ins := program[s.PC]
	switch ins.Kind {
	case Inc:
		return advance(s, clamp(s.Register+1, maxRegister)), nil

	case Dec:
		return advance(s, clamp(s.Register-1, maxRegister)), nil

	case Set:
		return advance(s, clamp(ins.Operand, maxRegister)), nil

	case Add:
		return advance(s, clamp(s.Register+ins.Operand, maxRegister)), nil

	case Sub:
		return advance(s, clamp(s.Register-ins.Operand, maxRegister)), nil

	case Jnz:
		fallthroughState := State{PC: s.PC + 1, Register: s.Register}
		jumpState := State{PC: s.PC + ins.Operand, Register: s.Register}

		if precise {
			if s.Register != 0 {
				return []State{jumpState}, nil
			}
			return []State{fallthroughState}, nil
		}

		if s.Register != 0 {
			return []State{fallthroughState, jumpState}, nil
		}
		return []State{fallthroughState}, nil

	case Halt:
		return []State{{PC: s.PC, Register: s.Register, Halted: true}}, nil

	default:
		return nil, InvalidInstructionError{PC: s.PC}
	}
}

// advance returns the single successor of a unary register transform.
func advance(s State, register int) []State {
	return []State{{PC: s.PC + 1, Register: register}}
}
