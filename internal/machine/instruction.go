// Package machine defines the register machine model: instructions, programs,
// configurations and the successor function used by the explorer.
package machine

import "fmt"

// Kind identifies the operation of an instruction.
type Kind uint8

// Kind constants for the register machine instruction set.
// The machine has a single register and a program counter. Set, Add, Sub and
// Jnz carry an operand, the remaining kinds ignore it.
const (
	Inc  Kind = iota // register += 1
	Dec              // register -= 1
	Set              // register := operand
	Add              // register += operand
	Sub              // register -= operand
	Jnz              // jump by operand relative to the current pc if register != 0
	Halt             // stop the machine

	kindCount // sentinel
)

var kindNames = [kindCount]string{
	Inc:  "inc",
	Dec:  "dec",
	Set:  "set",
	Add:  "add",
	Sub:  "sub",
	Jnz:  "jnz",
	Halt: "halt",
}

// String returns the mnemonic of the instruction kind.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
	return kindNames[k]
}

// HasOperand returns whether the instruction kind carries an operand.
// For jnz the operand is a signed offset relative to the current pc,
// for set, add and sub it is an immediate value.
func (k Kind) HasOperand() bool {
	switch k {
	case Set, Add, Sub, Jnz:
		return true
	default:
		return false
	}
}

// KindByName returns the instruction kind for a mnemonic.
func KindByName(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// Instruction is one tagged operation of a program. Immutable once loaded,
// trivially copyable by value.
type Instruction struct {
	Kind    Kind
	Operand int
}

// String returns the instruction in assembly-like notation.
func (i Instruction) String() string {
	if i.Kind.HasOperand() {
		return fmt.Sprintf("%s %d", i.Kind, i.Operand)
	}
	return i.Kind.String()
}

// Program is an ordered, fixed-length sequence of instructions, indexed
// 0..len-1. It does not change during exploration and can be shared between
// runs.
type Program []Instruction
