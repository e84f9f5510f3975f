// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/statereach/internal/machine"
	"gopkg.in/yaml.v3"
)

// programFile is the on-disk YAML representation of a program.
type programFile struct {
	Name         string            `yaml:"name"`
	Instructions []instructionSpec `yaml:"instructions"`
}

type instructionSpec struct {
	Op      string `yaml:"op"`
	Operand *int   `yaml:"operand"`
}

// Load reads and parses a program file from disk.
// It returns the program and its name, defaulting to the file name if the
// document does not carry one.
func Load(fileName string) (machine.Program, string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, "", fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	program, name, err := Parse(file)
	if err != nil {
		return nil, "", fmt.Errorf("loading program %s: %w", fileName, err)
	}
	if name == "" {
		name = fileName
	}
	return program, name, nil
}

// Parse reads a YAML program document. Unknown mnemonics and missing
// operands are rejected here, the explorer never sees a malformed program
// through this path.
func Parse(reader io.Reader) (machine.Program, string, error) {
	var doc programFile
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&doc); err != nil {
		return nil, "", fmt.Errorf("decoding document: %w", err)
	}

	if len(doc.Instructions) == 0 {
		return nil, "", fmt.Errorf("program contains no instructions")
	}

	program := make(machine.Program, 0, len(doc.Instructions))
	for i, spec := range doc.Instructions {
		kind, ok := machine.KindByName(spec.Op)
		if !ok {
			return nil, "", fmt.Errorf("instruction %d: unknown operation '%s'", i, spec.Op)
		}

		ins := machine.Instruction{Kind: kind}
		if kind.HasOperand() {
			if spec.Operand == nil {
				return nil, "", fmt.Errorf("instruction %d: operation '%s' requires an operand", i, spec.Op)
			}
			ins.Operand = *spec.Operand
		}
		program = append(program, ins)
	}

	return program, doc.Name, nil
}
