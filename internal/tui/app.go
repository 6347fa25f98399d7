package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andreagrandi/icetool/internal/app"
	"github.com/andreagrandi/icetool/internal/shell"
)

// ShellModel is the root Bubble Tea model. It draws the tab bar from the
// shell's tab host on every frame, so a tab switch made by a screen
// controller shows up on the next render.
type ShellModel struct {
	theme     Theme
	keys      keyMap
	shell     *shell.Shell
	screens   []Screen
	version   string
	status    string
	statusErr bool
	width     int
	height    int
}

// NewShellModel creates the root model for a created shell.
func NewShellModel(sh *shell.Shell, version string) ShellModel {
	theme := NewTheme()
	keys := defaultKeyMap()

	pages := sh.Pages()
	screens := make([]Screen, len(pages))
	for i, page := range pages {
		if page.HasList() {
			screens[i] = NewListView(theme, keys, page.Index, page.List, ContentHeight)
			continue
		}

		screens[i] = NewConsoleView(theme, keys, sh.Console, ContentHeight)
	}

	return ShellModel{
		theme:   theme,
		keys:    keys,
		shell:   sh,
		screens: screens,
		version: version,
		status:  "Ready",
	}
}

func (m ShellModel) Init() tea.Cmd {
	return nil
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Every tab keeps its own scroll state, so all of them get the size.
		var cmds []tea.Cmd
		for i, s := range m.screens {
			var cmd tea.Cmd
			m.screens[i], cmd = s.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.setError(m.shell.Host.Next())
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.setError(m.shell.Host.Prev())
			return m, nil
		case key.Matches(msg, m.keys.JumpTab):
			index := int(msg.String()[0] - '1')
			m.setError(m.shell.Host.SetCurrentTab(index))
			return m, nil
		}

	case selectMsg:
		return m.handleSelect(msg)
	}

	active := m.shell.Host.CurrentTab()
	if active < 0 || active >= len(m.screens) {
		return m, nil
	}

	var cmd tea.Cmd
	m.screens[active], cmd = m.screens[active].Update(msg)
	return m, cmd
}

func (m ShellModel) handleSelect(msg selectMsg) (tea.Model, tea.Cmd) {
	page, ok := m.shell.Page(msg.tab)
	if !ok || !page.HasList() {
		return m, nil
	}

	item, _ := page.List.Selected()

	handled, err := m.shell.Select(msg.tab)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	if handled {
		m.setStatus("Selected: " + item.Description)
	} else {
		m.setStatus("No handler for " + item.Action)
	}

	return m, nil
}

func (m ShellModel) View() string {
	// Title bar.
	titleLabel := app.Name
	if m.version != "" {
		titleLabel += " v" + m.version
	}

	current := m.shell.Host.CurrentTab()
	titleBar := m.theme.Title.Render(titleLabel) + "  " + RenderTabBar(m.theme, m.shell.Host.Tabs(), current)

	// Separator line.
	sepWidth := m.width
	if sepWidth <= 0 {
		sepWidth = 40
	}

	separator := m.theme.Separator.Render(strings.Repeat("─", sepWidth))

	// Content area.
	var content string
	var hints []KeyHint
	if current >= 0 && current < len(m.screens) {
		content = m.screens[current].View()
		hints = m.screens[current].StatusHints()
	}
	content = padToHeight(content, m.contentHeight())

	statusLine := RenderStatusLine(m.theme, m.status, m.statusErr)
	statusBar := RenderStatusBar(m.theme, hints, m.width)

	return titleBar + "\n" + separator + "\n" + content + "\n" + statusLine + "\n" + statusBar
}

// Status returns the status message and whether it is an error (for testing).
func (m ShellModel) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *ShellModel) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *ShellModel) setError(err error) {
	if err == nil {
		return
	}

	m.status = err.Error()
	m.statusErr = true
}

func (m ShellModel) contentHeight() int {
	return contentHeightFromTerminal(m.height)
}

// contentHeightFromTerminal calculates the content area height from the
// terminal height, subtracting the chrome lines.
func contentHeightFromTerminal(termHeight int) int {
	if termHeight <= 0 {
		return ContentHeight
	}

	h := termHeight - ChromeLines
	if h < 1 {
		h = 1
	}

	return h
}

// padToHeight pads or truncates content to exactly targetHeight lines.
func padToHeight(content string, targetHeight int) string {
	content = strings.TrimRight(content, "\n")

	lines := strings.Split(content, "\n")
	for len(lines) < targetHeight {
		lines = append(lines, "")
	}

	if len(lines) > targetHeight {
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}

// Run starts the full-screen UI and blocks until the user quits.
func Run(sh *shell.Shell, version string) error {
	if sh == nil {
		return errors.New("shell is nil")
	}

	p := tea.NewProgram(NewShellModel(sh, version), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
