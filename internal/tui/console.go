package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreagrandi/icetool/internal/console"
)

// ConsoleView shows the console buffer with scrolling. While the view is
// scrolled to the bottom it follows new lines.
type ConsoleView struct {
	theme      Theme
	keys       keyMap
	buffer     *console.Buffer
	offset     int
	follow     bool
	viewHeight int
}

// NewConsoleView creates a view over buf.
func NewConsoleView(theme Theme, keys keyMap, buf *console.Buffer, viewHeight int) *ConsoleView {
	return &ConsoleView{
		theme:      theme,
		keys:       keys,
		buffer:     buf,
		follow:     true,
		viewHeight: viewHeight,
	}
}

func (c *ConsoleView) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.viewHeight = contentHeightFromTerminal(msg.Height)
		c.clampOffset(c.buffer.Len())
		return c, nil

	case tea.KeyMsg:
		total := c.buffer.Len()
		if c.follow {
			c.offset = c.maxOffset(total)
		}

		switch {
		case key.Matches(msg, c.keys.Up):
			if c.offset > 0 {
				c.offset--
			}
		case key.Matches(msg, c.keys.Down):
			if max := c.maxOffset(total); c.offset < max {
				c.offset++
			}
		}

		c.follow = c.offset >= c.maxOffset(total)
	}

	return c, nil
}

func (c *ConsoleView) View() string {
	lines := c.buffer.Lines()
	if len(lines) == 0 {
		return c.theme.Dim.Render("  (console is empty)") + "\n"
	}

	if c.follow {
		c.offset = c.maxOffset(len(lines))
	}
	c.clampOffset(len(lines))

	viewLines := c.viewHeight

	// Reserve a line for the scroll indicator when there is more content below.
	hasMore := c.offset+viewLines < len(lines)
	if hasMore {
		viewLines--
	}

	end := c.offset + viewLines
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for _, line := range lines[c.offset:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if hasMore {
		remaining := len(lines) - end
		b.WriteString(c.theme.Dim.Render("  ▼ " + strings.Repeat(".", 3) + " " + strconv.Itoa(remaining) + " more"))
	}

	return b.String()
}

func (c *ConsoleView) StatusHints() []KeyHint {
	if c.buffer.Len() > c.viewHeight {
		return hintsFor(c.keys.Up, c.keys.Down, c.keys.NextTab, c.keys.JumpTab, c.keys.Quit)
	}

	return hintsFor(c.keys.NextTab, c.keys.JumpTab, c.keys.Quit)
}

func (c *ConsoleView) maxOffset(total int) int {
	max := total - c.viewHeight
	if max < 0 {
		return 0
	}

	return max
}

func (c *ConsoleView) clampOffset(total int) {
	if max := c.maxOffset(total); c.offset > max {
		c.offset = max
	}
}

// Offset returns the current scroll offset (for testing).
func (c *ConsoleView) Offset() int {
	return c.offset
}

// Following reports whether the view tracks the newest lines (for testing).
func (c *ConsoleView) Following() bool {
	return c.follow
}
