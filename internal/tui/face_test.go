package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tickr/internal/cell"
	"github.com/mrz1836/tickr/internal/constants"
	"github.com/mrz1836/tickr/internal/display"
)

func TestNewClockModel_DefaultSize(t *testing.T) {
	m := NewClockModel(cell.New(), false)

	w, h := m.Size()
	assert.Equal(t, constants.DefaultSurfaceWidth, w)
	assert.Equal(t, constants.DefaultSurfaceHeight, h)
}

func TestClockModel_WindowSizeMsgUpdatesSurface(t *testing.T) {
	m := NewClockModel(cell.New(), false)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 9})

	assert.Nil(t, cmd)
	w, h := updated.(*ClockModel).Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 9, h)
}

func TestClockModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := NewClockModel(cell.New(), false)

			updated, cmd := m.Update(key)

			require.NotNil(t, cmd, "quit key should produce a command")
			assert.True(t, updated.(*ClockModel).IsQuitting())
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestClockModel_RepaintMsgTriggersRerenderOnly(t *testing.T) {
	c := cell.New()
	m := NewClockModel(c, false)

	updated, cmd := m.Update(RepaintMsg{})

	assert.Nil(t, cmd)
	assert.Same(t, m, updated.(*ClockModel))
}

func TestClockModel_ViewEmptyCell(t *testing.T) {
	m := NewClockModel(cell.New(), false)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 9})

	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 9)
	for _, line := range lines {
		assert.Empty(t, strings.TrimSpace(line), "empty cell renders a blank surface")
	}
}

func TestClockModel_ViewCentersTime(t *testing.T) {
	c := cell.New()
	c.Set(display.Time{Hour: 10, Minute: 30, Second: 45})

	m := NewClockModel(c, false)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 9})

	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 9, "view fills the surface height")

	// One line of text in nine rows sits on the middle row, and an
	// 8 character face in 30 columns gets 11 columns of left padding.
	middle := lines[4]
	assert.Equal(t, strings.Repeat(" ", 11)+"10:30:45", strings.TrimRight(middle, " "))

	for i, line := range lines {
		if i == 4 {
			continue
		}
		assert.Empty(t, strings.TrimSpace(line), "row %d should be background", i)
	}
}

func TestClockModel_ViewSurfaceWidth(t *testing.T) {
	c := cell.New()
	c.Set(display.Time{Hour: 23, Minute: 59, Second: 59})

	m := NewClockModel(c, false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	for _, line := range strings.Split(m.View(), "\n") {
		assert.Equal(t, 80, runewidth.StringWidth(line), "every row spans the full surface width")
	}
}

func TestClockModel_ViewTwelveHour(t *testing.T) {
	c := cell.New()
	c.Set(display.Time{Hour: 15, Minute: 4, Second: 5})

	m := NewClockModel(c, true)
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 3})

	assert.Contains(t, m.View(), "03:04:05")
}

func TestClockModel_ViewReadsLatestSnapshot(t *testing.T) {
	c := cell.New()
	m := NewClockModel(c, false)
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 3})

	c.Set(display.Time{Hour: 10, Minute: 30, Second: 45})
	assert.Contains(t, m.View(), "10:30:45")

	// A stale RepaintMsg still renders the newest value.
	c.Set(display.Time{Hour: 10, Minute: 30, Second: 46})
	m.Update(RepaintMsg{})
	assert.Contains(t, m.View(), "10:30:46")
	assert.NotContains(t, m.View(), "10:30:45")
}

func TestClockModel_ViewWhileQuitting(t *testing.T) {
	m := NewClockModel(cell.New(), false)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Empty(t, m.View())
}
