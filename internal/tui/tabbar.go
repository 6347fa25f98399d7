package tui

import (
	"strconv"
	"strings"

	"github.com/andreagrandi/icetool/internal/tabhost"
)

// RenderTabBar renders the registered tabs with their jump number.
//
// The current tab is highlighted; the others are dim. An empty tab list
// renders as an empty string.
func RenderTabBar(theme Theme, tabs []tabhost.Tab, current int) string {
	if len(tabs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := tab.Title
		if i < 9 {
			label = strconv.Itoa(i+1) + " " + label
		}

		if i == current {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabIdle.Render(label))
		}
	}

	sep := theme.TabSep.Render("│")
	return strings.Join(parts, sep)
}
