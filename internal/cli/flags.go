// Package cli provides the command-line interface for tickr.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/tickr/internal/constants"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
)

// GlobalFlags holds flags available to the command.
type GlobalFlags struct {
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
	// NoColor disables styled output regardless of terminal support.
	NoColor bool
	// TwelveHour renders hours on a 1-12 clock instead of 0-23.
	TwelveHour bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVar(&flags.TwelveHour, "twelve-hour", false, "display a 12-hour clock")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for environment variable
// support. The TICKR_ prefix is used for environment variables
// (e.g., TICKR_VERBOSE, TICKR_TWELVE_HOUR).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{"verbose", "quiet", "no-color", "twelve-hour"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	// Enable environment variable support with TICKR_ prefix.
	// Dashes in flag names map to underscores (TICKR_TWELVE_HOUR).
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return nil
}
