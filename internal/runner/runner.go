// Package runner handles the complete check workflow for one program.
package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/statereach/internal/explorer"
	"github.com/retroenv/statereach/internal/loader"
	"github.com/retroenv/statereach/internal/machine"
	"github.com/retroenv/statereach/internal/options"
	"github.com/retroenv/statereach/internal/samples"
)

// Run resolves the program to check, explores its state space and reports
// the outcome. A non-nil error maps to a non-zero process exit code.
func Run(ctx context.Context, logger *log.Logger, opts options.Program,
	explorerOptions options.Explorer) error {

	program, name, err := resolveProgram(opts)
	if err != nil {
		return err
	}

	logger.Info("Checking program",
		log.String("name", name),
		log.Int("instructions", len(program)),
		log.Int("maxRegister", explorerOptions.MaxRegister),
	)

	exp := explorer.New(logger, program, explorerOptions)
	result, err := exp.Run(ctx)
	if err != nil {
		// error reporting happens at the top level, only narrate the
		// progress made up to the abort
		logger.Debug("Exploration aborted",
			log.Int("statesExplored", result.StatesExplored),
			log.Int("maxStackDepth", result.MaxStackDepth),
		)
		return fmt.Errorf("exploring state space: %w", err)
	}

	logger.Info("Exploration completed",
		log.Int("statesExplored", result.StatesExplored),
		log.Int("maxStackDepth", result.MaxStackDepth),
		log.String("loadFactor", fmt.Sprintf("%.4f", result.LoadFactor)),
	)
	return nil
}

// resolveProgram picks the program to check, either a built-in sample or a
// program file.
func resolveProgram(opts options.Program) (machine.Program, string, error) {
	if opts.Sample != "" {
		program, ok := samples.ByName(opts.Sample)
		if !ok {
			return nil, "", fmt.Errorf("unknown sample '%s', available: %s",
				opts.Sample, strings.Join(samples.Names(), ", "))
		}
		return program, opts.Sample, nil
	}
	return loader.Load(opts.Input)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("statereach", log.String("version", buildinfo.Version(version, commit, date)))
}
