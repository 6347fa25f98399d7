// Package screen holds the scripted screen controllers and the lifecycle base
// they compose with.
//
// A controller receives its collaborators at construction: a Base that loads
// list content and runs the shared setup, and a TabSetter for the shell's tab
// host. Controllers never reach for process-wide state.
package screen

import "errors"

// Tab indexes registered by the shell, in registration order.
const (
	TabConsole = iota
	TabDSP
	TabPresets
)

// Script names backing the list screens.
const (
	ListDSP     = "dsp"
	ListPresets = "presets"
)

// ErrListNotInitialized is returned by ListScreen.OnCreate when no list was
// loaded first.
var ErrListNotInitialized = errors.New("list not initialized")

// SavedState carries instance data from a previous run. Controllers forward it
// untouched; only ListScreen reads the keys it wrote itself.
type SavedState map[string]string

// ListInitializer loads the list content for a named script.
type ListInitializer interface {
	InitList(name string) error
}

// Base is the capability set a scripted screen composes with: list loading
// plus the shared creation logic, which expects the list to be loaded.
type Base interface {
	ListInitializer
	OnCreate(saved SavedState) error
}

// TabSetter switches the active tab of a tab host.
type TabSetter interface {
	SetCurrentTab(index int) error
}

// SelectionHandler receives list selections. Returning true marks the event
// consumed so no further handler sees it.
type SelectionHandler interface {
	OnItemSelected(action, description string) (bool, error)
}

// Controller drives one scripted screen.
type Controller interface {
	SelectionHandler
	OnCreate(saved SavedState) error
}

// HandlerFunc adapts a function to SelectionHandler.
type HandlerFunc func(action, description string) (bool, error)

func (f HandlerFunc) OnItemSelected(action, description string) (bool, error) {
	return f(action, description)
}
