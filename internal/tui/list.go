package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreagrandi/icetool/internal/screen"
)

const listHeaderLines = 2 // title line + blank

// ListView renders a scripted list and turns enter into a selection.
type ListView struct {
	theme      Theme
	keys       keyMap
	tab        int
	list       *screen.ListScreen
	offset     int
	viewHeight int
}

// NewListView creates a view over list for the tab at index tab.
func NewListView(theme Theme, keys keyMap, tab int, list *screen.ListScreen, viewHeight int) *ListView {
	return &ListView{
		theme:      theme,
		keys:       keys,
		tab:        tab,
		list:       list,
		viewHeight: viewHeight,
	}
}

func (v *ListView) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewHeight = contentHeightFromTerminal(msg.Height)
		v.ensureVisible()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.list.MoveCursor(-1)
			v.ensureVisible()
		case key.Matches(msg, v.keys.Down):
			v.list.MoveCursor(1)
			v.ensureVisible()
		case key.Matches(msg, v.keys.Select):
			tab := v.tab
			return v, func() tea.Msg {
				return selectMsg{tab: tab}
			}
		}
	}

	return v, nil
}

func (v *ListView) View() string {
	var b strings.Builder

	if !v.list.Loaded() {
		b.WriteString(v.theme.Dim.Render("  (list not loaded)") + "\n")
		return b.String()
	}

	b.WriteString("  " + v.theme.Title.Render(v.list.Title()) + "\n\n")

	items := v.list.Items()
	if len(items) == 0 {
		b.WriteString(v.theme.Dim.Render("  (empty)") + "\n")
		return b.String()
	}

	v.ensureVisible()

	end := v.offset + v.itemRows()
	if end > len(items) {
		end = len(items)
	}

	actionWidth := 0
	for _, item := range items {
		if len(item.Action) > actionWidth {
			actionWidth = len(item.Action)
		}
	}

	for i := v.offset; i < end; i++ {
		item := items[i]
		action := v.theme.Dim.Render(item.Action + strings.Repeat(" ", actionWidth-len(item.Action)))

		if i == v.list.Cursor() {
			b.WriteString("  " + v.theme.Cursor.Render("▸ "+item.Description) + "  " + action)
		} else {
			b.WriteString("    " + item.Description + "  " + action)
		}
		b.WriteString("\n")
	}

	if remaining := len(items) - end; remaining > 0 {
		b.WriteString(v.theme.Dim.Render("  ▼ " + strconv.Itoa(remaining) + " more"))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *ListView) StatusHints() []KeyHint {
	return hintsFor(v.keys.Up, v.keys.Down, v.keys.Select, v.keys.NextTab, v.keys.JumpTab, v.keys.Quit)
}

// itemRows is the number of list rows that fit, keeping one for the
// "more" indicator.
func (v *ListView) itemRows() int {
	rows := v.viewHeight - listHeaderLines - 1
	if rows < 1 {
		rows = 1
	}

	return rows
}

func (v *ListView) ensureVisible() {
	cursor := v.list.Cursor()
	rows := v.itemRows()

	if cursor < v.offset {
		v.offset = cursor
	}

	if cursor >= v.offset+rows {
		v.offset = cursor - rows + 1
	}

	if v.offset < 0 {
		v.offset = 0
	}
}

// Offset returns the first visible row (for testing).
func (v *ListView) Offset() int {
	return v.offset
}
