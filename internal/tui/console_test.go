package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/andreagrandi/icetool/internal/console"
)

func filledBuffer(n int) *console.Buffer {
	buf := console.NewBuffer(100)
	for i := 0; i < n; i++ {
		buf.Append(fmt.Sprintf("line %d", i))
	}

	return buf
}

func TestConsoleView_Empty(t *testing.T) {
	view := NewConsoleView(NewTheme(), defaultKeyMap(), console.NewBuffer(10), 5)

	assert.Contains(t, view.View(), "console is empty")
}

func TestConsoleView_FollowsTail(t *testing.T) {
	buf := filledBuffer(20)
	view := NewConsoleView(NewTheme(), defaultKeyMap(), buf, 5)

	out := view.View()
	assert.Contains(t, out, "line 19")
	assert.NotContains(t, out, "line 0\n")
	assert.True(t, view.Following())

	buf.Append("line 20")
	assert.Contains(t, view.View(), "line 20")
}

func TestConsoleView_ScrollUpStopsFollowing(t *testing.T) {
	buf := filledBuffer(20)
	view := NewConsoleView(NewTheme(), defaultKeyMap(), buf, 5)

	_, _ = view.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 14, view.Offset())
	assert.False(t, view.Following())

	buf.Append("line 20")
	out := view.View()
	assert.NotContains(t, out, "line 20")
	assert.Contains(t, out, "more")
}

func TestConsoleView_ScrollDownResumesFollowing(t *testing.T) {
	view := NewConsoleView(NewTheme(), defaultKeyMap(), filledBuffer(20), 5)

	_, _ = view.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.True(t, view.Following())
	assert.Equal(t, 15, view.Offset())
}

func TestConsoleView_ScrollUpAtTop(t *testing.T) {
	view := NewConsoleView(NewTheme(), defaultKeyMap(), filledBuffer(3), 5)

	_, _ = view.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 0, view.Offset())
}

func TestConsoleView_WindowSizeClampsOffset(t *testing.T) {
	view := NewConsoleView(NewTheme(), defaultKeyMap(), filledBuffer(20), 5)
	_, _ = view.Update(tea.KeyMsg{Type: tea.KeyUp})

	_, _ = view.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	assert.Equal(t, 40-ChromeLines, view.viewHeight)
	assert.Equal(t, 0, view.Offset())
}

func TestConsoleView_StatusHints(t *testing.T) {
	short := NewConsoleView(NewTheme(), defaultKeyMap(), filledBuffer(2), 5)
	long := NewConsoleView(NewTheme(), defaultKeyMap(), filledBuffer(20), 5)

	assert.Len(t, short.StatusHints(), 3)
	assert.Len(t, long.StatusHints(), 5)
}
