package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// RenderStatusBar renders keybinding hints for the bottom status bar.
func RenderStatusBar(theme Theme, hints []KeyHint, width int) string {
	var parts []string

	for _, h := range hints {
		label := theme.StatusKey.Render(h.Key)
		parts = append(parts, label+" "+h.Desc)
	}

	content := strings.Join(parts, "  ")
	return theme.StatusBar.Render(content)
}

// RenderStatusLine renders the last status message, in the error style when
// isErr is set.
func RenderStatusLine(theme Theme, message string, isErr bool) string {
	if message == "" {
		return ""
	}

	if isErr {
		return theme.Error.Render("✗ " + message)
	}

	return theme.Dim.Render(message)
}

// hintsFor converts enabled key bindings into status bar hints.
func hintsFor(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}

		help := b.Help()
		hints = append(hints, KeyHint{Key: help.Key, Desc: help.Desc})
	}

	return hints
}
