package screen

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/andreagrandi/icetool/internal/script"
)

const cursorStateKey = "cursor"

// ScriptSource resolves script names. *script.Library satisfies it.
type ScriptSource interface {
	Get(name string) (script.Script, error)
}

// ListScreen is the shared base of every scripted list screen. It owns the
// list content and cursor; controllers decide what a selection does.
type ListScreen struct {
	source  ScriptSource
	log     zerolog.Logger
	name    string
	title   string
	items   []script.Item
	loaded  bool
	created bool
	cursor  int
}

// NewListScreen creates an empty list screen backed by source.
func NewListScreen(source ScriptSource, logger zerolog.Logger) *ListScreen {
	return &ListScreen{source: source, log: logger}
}

// InitList loads the items of the named script, replacing any previous list.
func (l *ListScreen) InitList(name string) error {
	if l.source == nil {
		return fmt.Errorf("load list %q: no script source", name)
	}

	s, err := l.source.Get(name)
	if err != nil {
		return fmt.Errorf("load list %q: %w", name, err)
	}

	l.name = s.Name
	l.title = s.DisplayTitle()
	l.items = append([]script.Item(nil), s.Items...)
	l.loaded = true
	l.cursor = 0

	l.log.Debug().Str("list", l.name).Int("items", len(l.items)).Msg("list loaded")

	return nil
}

// OnCreate runs the shared setup. The list must already be loaded.
func (l *ListScreen) OnCreate(saved SavedState) error {
	if !l.loaded {
		return ErrListNotInitialized
	}

	if raw, ok := saved[cursorStateKey]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			l.cursor = n
			l.clampCursor()
		} else {
			l.log.Warn().Str("list", l.name).Str("cursor", raw).Msg("ignoring malformed saved cursor")
		}
	}

	l.created = true
	l.log.Info().Str("list", l.name).Int("items", len(l.items)).Msg("screen created")

	return nil
}

// SaveState returns the state to hand back to OnCreate on the next run.
func (l *ListScreen) SaveState() SavedState {
	return SavedState{cursorStateKey: strconv.Itoa(l.cursor)}
}

// Name returns the loaded script name.
func (l *ListScreen) Name() string { return l.name }

// Title returns the loaded script title.
func (l *ListScreen) Title() string { return l.title }

// Loaded reports whether InitList succeeded.
func (l *ListScreen) Loaded() bool { return l.loaded }

// Created reports whether OnCreate completed.
func (l *ListScreen) Created() bool { return l.created }

// Cursor returns the highlighted item index.
func (l *ListScreen) Cursor() int { return l.cursor }

// Items returns a copy of the loaded items.
func (l *ListScreen) Items() []script.Item {
	return append([]script.Item(nil), l.items...)
}

// MoveCursor moves the highlight by delta, stopping at both ends.
func (l *ListScreen) MoveCursor(delta int) {
	l.cursor += delta
	l.clampCursor()
}

// SetCursor moves the highlight to index, clamped into range.
func (l *ListScreen) SetCursor(index int) {
	l.cursor = index
	l.clampCursor()
}

// Selected returns the highlighted item.
func (l *ListScreen) Selected() (script.Item, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return script.Item{}, false
	}

	return l.items[l.cursor], true
}

// IndexOf returns the position of the item with the given action.
func (l *ListScreen) IndexOf(action string) (int, bool) {
	for i, item := range l.items {
		if item.Action == action {
			return i, true
		}
	}

	return -1, false
}

func (l *ListScreen) clampCursor() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}

	if l.cursor < 0 {
		l.cursor = 0
	}
}
