// Package shell assembles the tab host, the scripted screens and the console
// into one running application, independent of how it is displayed.
package shell

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andreagrandi/icetool/internal/console"
	"github.com/andreagrandi/icetool/internal/screen"
	"github.com/andreagrandi/icetool/internal/script"
	"github.com/andreagrandi/icetool/internal/session"
	"github.com/andreagrandi/icetool/internal/tabhost"
)

// ErrNoList is returned when selecting on a tab without a list.
var ErrNoList = errors.New("tab has no list")

// Page is one tab together with the screen shown in it. Console has no list
// and no controller.
type Page struct {
	Index      int
	Tab        tabhost.Tab
	List       *screen.ListScreen
	Controller screen.Controller
}

// HasList reports whether the page shows a scripted list.
func (p Page) HasList() bool {
	return p.List != nil && p.Controller != nil
}

type pageDef struct {
	index int
	id    string
	title string
	list  string
}

var layout = []pageDef{
	{index: screen.TabConsole, id: "console", title: "Console"},
	{index: screen.TabDSP, id: "dsp", title: "DSP", list: screen.ListDSP},
	{index: screen.TabPresets, id: "presets", title: "Presets", list: screen.ListPresets},
}

// Shell owns the tab host shared by every screen controller.
type Shell struct {
	Host    *tabhost.Host
	Console *console.Buffer
	pages   []Page
	log     zerolog.Logger
}

// New registers the tabs and builds a controller per scripted tab. Screens are
// not created yet; call Create.
func New(source screen.ScriptSource, buf *console.Buffer, logger zerolog.Logger) (*Shell, error) {
	if buf == nil {
		buf = console.NewBuffer(console.DefaultCapacity)
	}

	s := &Shell{
		Host:    tabhost.New(),
		Console: buf,
		log:     logger,
	}

	for _, def := range layout {
		index, err := s.Host.Register(tabhost.Tab{ID: def.id, Title: def.title})
		if err != nil {
			return nil, fmt.Errorf("register tab %q: %w", def.id, err)
		}

		if index != def.index {
			return nil, fmt.Errorf("register tab %q: got index %d, want %d", def.id, index, def.index)
		}

		page := Page{Index: index, Tab: tabhost.Tab{ID: def.id, Title: def.title}}
		if def.list != "" {
			page.List = screen.NewListScreen(source, logger)
			page.Controller = s.newController(def, page.List)
		}

		s.pages = append(s.pages, page)
	}

	s.Host.OnChange(func(prev, next int) {
		s.log.Info().Str("from", s.pages[prev].Tab.ID).Str("to", s.pages[next].Tab.ID).Msg("tab changed")
	})

	return s, nil
}

func (s *Shell) newController(def pageDef, base screen.Base) screen.Controller {
	if def.list == screen.ListDSP {
		return screen.NewDSPScreen(base, s.Host)
	}

	return screen.NewScriptScreen(base, def.list, s.log)
}

// Create runs OnCreate for every scripted screen with its saved state and
// restores the active tab. sess may be nil.
func (s *Shell) Create(sess *session.Session) error {
	for _, page := range s.pages {
		if !page.HasList() {
			continue
		}

		saved := screen.SavedState(sess.State(page.Tab.ID))
		if err := page.Controller.OnCreate(saved); err != nil {
			return fmt.Errorf("create %s tab: %w", page.Tab.ID, err)
		}
	}

	if sess == nil {
		return nil
	}

	if err := s.Host.SetCurrentTab(sess.ActiveTab); err != nil {
		s.log.Warn().Err(err).Int("tab", sess.ActiveTab).Msg("ignoring saved active tab")
	}

	return nil
}

// Snapshot writes the active tab and every list position into sess.
func (s *Shell) Snapshot(sess *session.Session) {
	if sess == nil {
		return
	}

	sess.ActiveTab = s.Host.CurrentTab()
	for _, page := range s.pages {
		if page.HasList() && page.List.Created() {
			sess.SetState(page.Tab.ID, page.List.SaveState())
		}
	}
}

// Pages returns every page in tab order.
func (s *Shell) Pages() []Page {
	return append([]Page(nil), s.pages...)
}

// Page returns the page at a tab index.
func (s *Shell) Page(index int) (Page, bool) {
	if index < 0 || index >= len(s.pages) {
		return Page{}, false
	}

	return s.pages[index], true
}

// PageByID returns the page of the tab with the given ID.
func (s *Shell) PageByID(id string) (Page, bool) {
	index, ok := s.Host.IndexOf(id)
	if !ok {
		return Page{}, false
	}

	return s.Page(index)
}

// ActivePage returns the page of the current tab.
func (s *Shell) ActivePage() Page {
	page, _ := s.Page(s.Host.CurrentTab())
	return page
}

// Select dispatches the highlighted item of the page at index.
func (s *Shell) Select(index int) (bool, error) {
	page, ok := s.Page(index)
	if !ok {
		return false, fmt.Errorf("select on tab %d: %w", index, tabhost.ErrUnknownTab)
	}

	if !page.HasList() {
		return false, fmt.Errorf("select on %s tab: %w", page.Tab.ID, ErrNoList)
	}

	item, ok := page.List.Selected()
	if !ok {
		return false, fmt.Errorf("select on %s tab: list is empty", page.Tab.ID)
	}

	return s.dispatch(page, item)
}

// SelectAction highlights the item with the given action and dispatches it.
func (s *Shell) SelectAction(index int, action string) (bool, error) {
	page, ok := s.Page(index)
	if !ok {
		return false, fmt.Errorf("select on tab %d: %w", index, tabhost.ErrUnknownTab)
	}

	if !page.HasList() {
		return false, fmt.Errorf("select on %s tab: %w", page.Tab.ID, ErrNoList)
	}

	pos, ok := page.List.IndexOf(action)
	if !ok {
		return false, fmt.Errorf("select on %s tab: no item with action %q", page.Tab.ID, action)
	}

	page.List.SetCursor(pos)

	return s.Select(index)
}

func (s *Shell) dispatch(page Page, item script.Item) (bool, error) {
	s.log.Info().Str("tab", page.Tab.ID).Str("action", item.Action).Msg("item selected")

	d := screen.NewDispatcher(page.Controller, s.consoleFallback(page))

	handled, err := d.Dispatch(item.Action, item.Description)
	if err != nil {
		s.log.Error().Err(err).Str("tab", page.Tab.ID).Str("action", item.Action).Msg("selection failed")
		return false, err
	}

	return handled, nil
}

// consoleFallback records selections no controller consumed.
func (s *Shell) consoleFallback(page Page) screen.SelectionHandler {
	return screen.HandlerFunc(func(action, description string) (bool, error) {
		s.Console.Append(fmt.Sprintf("[%s] %s (%s)", page.Tab.Title, description, action))
		return true, nil
	})
}
