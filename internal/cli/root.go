// Package cli provides the command-line interface for tickr.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mrz1836/tickr/internal/errors"
	"github.com/mrz1836/tickr/internal/signal"
	"github.com/mrz1836/tickr/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use after flag parsing.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger.
//
// This function MUST only be called after the root command's
// PersistentPreRunE has executed; before that it returns a zero-value logger
// that discards all output. It is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the tickr CLI.
// This function-based approach avoids package-level globals, making the
// code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "tickr",
		Short: "tickr - a terminal wall clock",
		Long: `tickr draws the current local time, centered in the terminal and updated
once per second, phase-aligned to real second boundaries.

Quit with 'q', Escape, or Ctrl+C.`,
		Version: formatVersion(info),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Bind flags to Viper
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Environment variables can enable options the flags left off.
			flags.Verbose = v.GetBool("verbose")
			flags.Quiet = v.GetBool("quiet")
			flags.NoColor = v.GetBool("no-color")
			flags.TwelveHour = v.GetBool("twelve-hour")

			if flags.NoColor {
				tui.DisableColor()
			} else {
				tui.CheckNoColor()
			}

			// Initialize logger based on flags (protected by mutex for thread safety)
			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Unlock()

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd.Context(), flags)
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage: true,
	}

	// Add global flags
	AddGlobalFlags(cmd, flags)

	return cmd
}

// runClock wires the signal handler into the clock program and blocks until
// shutdown. All three exit paths (quit key, interrupt signal, and worker
// failure) converge on the same context cancellation.
func runClock(ctx context.Context, flags *GlobalFlags) error {
	logger := GetLogger()
	defer CloseLogFile()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.ErrNotTerminal
	}

	h := signal.NewHandler(ctx)
	defer h.Stop()

	err := tui.Run(h.Context(), tui.Config{TwelveHour: flags.TwelveHour}, logger)

	select {
	case <-h.Interrupted():
		logger.Info().Msg("interrupted, shutting down")
	default:
	}

	return err
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
