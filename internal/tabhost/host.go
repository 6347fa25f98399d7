package tabhost

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrUnknownTab is returned when a tab index is not registered.
	ErrUnknownTab = errors.New("unknown tab")
	// ErrDuplicateTab is returned when registering a tab ID twice.
	ErrDuplicateTab = errors.New("duplicate tab")
)

// Tab is one entry managed by the host.
type Tab struct {
	ID    string
	Title string
}

// ChangeFunc is called after the current tab changed.
type ChangeFunc func(prev, next int)

// Host holds the registered tabs and which one is active.
//
// A Host is shared by every screen controller in a shell; it is safe for
// concurrent use.
type Host struct {
	mu        sync.Mutex
	tabs      []Tab
	current   int
	listeners []ChangeFunc
}

// New creates an empty host.
func New() *Host {
	return &Host{}
}

// Register appends a tab and returns its index.
func (h *Host) Register(tab Tab) (int, error) {
	id := strings.TrimSpace(tab.ID)
	if id == "" {
		return -1, errors.New("tab id is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.tabs {
		if existing.ID == id {
			return -1, fmt.Errorf("%w: %q", ErrDuplicateTab, id)
		}
	}

	tab.ID = id
	if strings.TrimSpace(tab.Title) == "" {
		tab.Title = id
	}

	h.tabs = append(h.tabs, tab)

	return len(h.tabs) - 1, nil
}

// SetCurrentTab activates the tab at index.
func (h *Host) SetCurrentTab(index int) error {
	return h.switchTo(func(int, int) int { return index })
}

// CurrentTab returns the active tab index.
func (h *Host) CurrentTab() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current
}

// Current returns the active tab. The second value is false when no tab is
// registered.
func (h *Host) Current() (Tab, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.tabs) == 0 {
		return Tab{}, false
	}

	return h.tabs[h.current], true
}

// Tabs returns a copy of the registered tabs in index order.
func (h *Host) Tabs() []Tab {
	h.mu.Lock()
	defer h.mu.Unlock()

	tabs := make([]Tab, len(h.tabs))
	copy(tabs, h.tabs)

	return tabs
}

// Len returns the number of registered tabs.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.tabs)
}

// IndexOf looks up a tab by ID.
func (h *Host) IndexOf(id string) (int, bool) {
	trimmed := strings.TrimSpace(id)

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, tab := range h.tabs {
		if tab.ID == trimmed {
			return i, true
		}
	}

	return -1, false
}

// Next activates the following tab, wrapping to the first one.
func (h *Host) Next() error {
	return h.step(1)
}

// Prev activates the preceding tab, wrapping to the last one.
func (h *Host) Prev() error {
	return h.step(-1)
}

func (h *Host) step(delta int) error {
	return h.switchTo(func(current, count int) int {
		if count == 0 {
			return -1
		}

		return (current + delta + count) % count
	})
}

// switchTo picks and stores the next index in one critical section, then
// notifies listeners outside it.
func (h *Host) switchTo(pick func(current, count int) int) error {
	h.mu.Lock()
	count := len(h.tabs)
	index := pick(h.current, count)
	if index < 0 || index >= count {
		h.mu.Unlock()
		if count == 0 {
			return fmt.Errorf("%w: no tabs registered", ErrUnknownTab)
		}

		return fmt.Errorf("%w: index %d (registered: %d)", ErrUnknownTab, index, count)
	}

	prev := h.current
	h.current = index
	listeners := append([]ChangeFunc(nil), h.listeners...)
	h.mu.Unlock()

	if prev == index {
		return nil
	}

	for _, fn := range listeners {
		fn(prev, index)
	}

	return nil
}

// OnChange registers fn to be called whenever the current tab changes.
func (h *Host) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.listeners = append(h.listeners, fn)
}
