package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreagrandi/icetool/internal/screen"
	"github.com/andreagrandi/icetool/internal/script"
	"github.com/andreagrandi/icetool/internal/session"
	"github.com/andreagrandi/icetool/internal/tabhost"
)

func TestScriptsListCommand(t *testing.T) {
	withTestShellEnv(t)

	output, err := executeRoot(t, "", "scripts", "list")
	require.NoError(t, err)

	assert.Contains(t, output, "Scripts:")
	assert.Contains(t, output, "dsp")
	assert.Contains(t, output, " 2 items  DSP")
	assert.Contains(t, output, "presets")
}

func TestScriptsShowCommand(t *testing.T) {
	withTestShellEnv(t)

	output, err := executeRoot(t, "", "scripts", "show", "dsp")
	require.NoError(t, err)

	assert.Contains(t, output, "DSP (dsp)")
	assert.Contains(t, output, "1) open  Open DSP")
	assert.Contains(t, output, "2) eq    Equalizer")
}

func TestScriptsShowUnknown(t *testing.T) {
	withTestShellEnv(t)

	_, err := executeRoot(t, "", "scripts", "show", "missing")
	assert.ErrorIs(t, err, script.ErrNotFound)
}

func TestTabsCommandMarksCurrentTab(t *testing.T) {
	dir := withTestShellEnv(t)
	require.NoError(t, session.NewStore(filepath.Join(dir, "session.toml")).Save(&session.Session{ActiveTab: screen.TabDSP}))

	output, err := executeRoot(t, "", "tabs")
	require.NoError(t, err)

	assert.Contains(t, output, "  1  console")
	assert.Contains(t, output, "* 2  dsp")
	assert.Contains(t, output, "  3  presets")
}

func TestSelectCommandOnDSPSwitchesToConsole(t *testing.T) {
	dir := withTestShellEnv(t)

	output, err := executeRoot(t, "", "select", "dsp", "eq")
	require.NoError(t, err)

	assert.Contains(t, output, "Current tab: console")

	sess := loadTestSession(t, dir)
	assert.Equal(t, screen.TabConsole, sess.ActiveTab)
	assert.Equal(t, "1", sess.State("dsp")["cursor"])
}

func TestSelectCommandByNumber(t *testing.T) {
	dir := withTestShellEnv(t)

	output, err := executeRoot(t, "", "select", "3", "load-live")
	require.NoError(t, err)

	assert.Contains(t, output, "Current tab: presets")
	assert.Equal(t, screen.TabPresets, loadTestSession(t, dir).ActiveTab)
}

func TestSelectCommandUnknownTab(t *testing.T) {
	withTestShellEnv(t)

	_, err := executeRoot(t, "", "select", "mixer", "open")
	assert.ErrorIs(t, err, tabhost.ErrUnknownTab)
}

func TestSelectCommandUnknownAction(t *testing.T) {
	withTestShellEnv(t)

	_, err := executeRoot(t, "", "select", "dsp", "missing")
	assert.Error(t, err)
}

func TestSessionResetCommand(t *testing.T) {
	dir := withTestShellEnv(t)
	path := filepath.Join(dir, "session.toml")
	require.NoError(t, session.NewStore(path).Save(&session.Session{ActiveTab: screen.TabDSP}))

	output, err := executeRoot(t, "", "session", "reset")
	require.NoError(t, err)

	assert.Contains(t, output, "Session reset")
	assert.NoFileExists(t, path)

	_, err = executeRoot(t, "", "session", "reset")
	assert.NoError(t, err)
}
