// Package tui renders the clock face as a Bubble Tea program.
//
// Styling uses Lip Gloss with AdaptiveColor for light/dark terminal support.
// Call CheckNoColor() before rendering to respect the NO_COLOR standard.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for the clock face.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleFace renders the time text itself.
	StyleFace = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleDim renders de-emphasized text.
	StyleDim = lipgloss.NewStyle().Foreground(ColorMuted)
)

// DisableColor forces plain output regardless of terminal support.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}
