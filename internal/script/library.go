package script

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a script name cannot be resolved.
var ErrNotFound = errors.New("script not found")

// Library resolves script names into their definitions.
type Library struct {
	scripts map[string]Script
}

// NewLibrary wraps a set of loaded scripts.
func NewLibrary(scripts map[string]Script) *Library {
	copied := make(map[string]Script, len(scripts))
	for name, s := range scripts {
		copied[name] = s
	}

	return &Library{scripts: copied}
}

// Get returns the script with the given name.
func (l *Library) Get(name string) (Script, error) {
	trimmed := strings.TrimSpace(name)
	if l == nil {
		return Script{}, fmt.Errorf("%w: %q", ErrNotFound, trimmed)
	}

	s, ok := l.scripts[trimmed]
	if !ok {
		return Script{}, fmt.Errorf("%w: %q", ErrNotFound, trimmed)
	}

	return s, nil
}

// Items returns a copy of the items of the named script.
func (l *Library) Items(name string) ([]Item, error) {
	s, err := l.Get(name)
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	return items, nil
}

// Names returns all script names in sorted order.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}

	names := make([]string, 0, len(l.scripts))
	for name := range l.scripts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
