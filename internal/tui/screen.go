package tui

import tea "github.com/charmbracelet/bubbletea"

// KeyHint describes a keybinding shown in the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// Screen renders the content of one tab.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	StatusHints() []KeyHint
}

// selectMsg is sent when the highlighted item of a tab's list is chosen.
type selectMsg struct {
	tab int
}
