// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/statereach/internal/options"
)

// ParseFlags parses command line flags and returns program and explorer options
func ParseFlags() (options.Program, options.Explorer, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	explorerOptions := options.NewExplorer()
	readOptionFlags(flags, &opts, &explorerOptions)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Sample == "") {
		return opts, explorerOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, explorerOptions, err
	}

	if len(args) > 0 && opts.Input == "" {
		opts.Input = args[0]
	}

	if opts.Input != "" && opts.Sample != "" {
		return opts, explorerOptions, &UsageError{
			msg: "a program file and -sample can not be combined, pass only one of them",
		}
	}

	if err := validateExplorerOptions(explorerOptions); err != nil {
		return opts, explorerOptions, err
	}

	explorerOptions.Verbose = opts.Verbose
	return opts, explorerOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: statereach [options] <program file to check>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// validateExplorerOptions validates the state space tunables
func validateExplorerOptions(opts options.Explorer) error {
	if opts.MaxRegister < 0 {
		return fmt.Errorf("invalid max register %d, must not be negative", opts.MaxRegister)
	}
	if opts.TableSize <= 0 {
		return fmt.Errorf("invalid table size %d, must be positive", opts.TableSize)
	}
	if opts.MaxStates <= 0 {
		return fmt.Errorf("invalid state limit %d, must be positive", opts.MaxStates)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, explorerOptions *options.Explorer) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program file")
	flags.StringVar(&opts.Sample, "sample", "", "name of a built-in sample program to check (loop, counter)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Verbose, "v", false, "print progress during exploration")

	flags.IntVar(&explorerOptions.MaxRegister, "max-register", options.DefaultMaxRegister, "register clamp ceiling, bounds the state space")
	flags.IntVar(&explorerOptions.TableSize, "table-size", options.DefaultTableSize, "visited table size used for load factor reporting")
	flags.IntVar(&explorerOptions.MaxStates, "max-states", options.DefaultMaxStates, "abort after this many distinct states")
	flags.IntVar(&explorerOptions.ProgressInterval, "progress", options.DefaultProgressInterval, "states between progress messages in verbose mode")
	flags.BoolVar(&explorerOptions.PreciseBranches, "precise-branches", false, "follow conditional jumps only along the edge selected by the register value")
}
