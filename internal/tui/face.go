// Package tui renders the clock face as a Bubble Tea program.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrz1836/tickr/internal/constants"
	"github.com/mrz1836/tickr/internal/display"
)

// CellReader is the non-blocking read side of the shared time cell.
type CellReader interface {
	// Snapshot returns the latest published value; false while empty.
	Snapshot() (display.Time, bool)
}

// RepaintMsg asks the model to re-render the current cell value. It carries
// no payload: the renderer always reads the latest snapshot, never a value
// baked into the message, so stale messages are harmless.
type RepaintMsg struct{}

// ClockModel is the Bubble Tea model for the clock face.
// It implements tea.Model interface (Init, Update, View).
//
// View never blocks and holds no time state of its own; the shared cell is
// the single source of truth and repaints are driven by the redraw watcher.
type ClockModel struct {
	cell       CellReader
	twelveHour bool
	// Terminal dimensions, updated from WindowSizeMsg
	width, height int
	// Exit flag
	quitting bool
}

// NewClockModel creates a ClockModel reading from the given cell.
// Dimensions start at the default surface size until the terminal reports
// its real size.
func NewClockModel(cell CellReader, twelveHour bool) *ClockModel {
	return &ClockModel{
		cell:       cell,
		twelveHour: twelveHour,
		width:      constants.DefaultSurfaceWidth,
		height:     constants.DefaultSurfaceHeight,
	}
}

// Init returns the initial command to run when the program starts.
// The workers drive all repaints, so there is no self-tick.
func (m *ClockModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (m *ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RepaintMsg:
		// No state to change; returning triggers a re-render that reads
		// the cell's current snapshot.
		return m, nil
	}

	return m, nil
}

// View renders the time centered in the current surface. While the cell is
// still empty it renders an empty face rather than a zero time.
func (m *ClockModel) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.face())
}

// face formats the current cell snapshot for display.
func (m *ClockModel) face() string {
	v, ok := m.cell.Snapshot()
	if !ok {
		return ""
	}
	if m.twelveHour {
		v = v.TwelveHour()
	}
	return StyleFace.Render(v.String())
}

// Size returns the current surface dimensions (useful for testing).
func (m *ClockModel) Size() (width, height int) {
	return m.width, m.height
}

// IsQuitting returns true if the model is in quitting state.
func (m *ClockModel) IsQuitting() bool {
	return m.quitting
}
