package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateScriptRejectsMissingName(t *testing.T) {
	s := Script{
		Items: []Item{{Action: "open"}},
	}

	if err := ValidateScript(s); err == nil {
		t.Fatal("expected validation error for missing name")
	}
}

func TestValidateScriptRejectsEmptyItems(t *testing.T) {
	s := Script{Name: "dsp"}

	if err := ValidateScript(s); err == nil {
		t.Fatal("expected validation error for script without items")
	}
}

func TestValidateScriptRejectsItemWithoutAction(t *testing.T) {
	s := Script{
		Name:  "dsp",
		Items: []Item{{Action: "open"}, {Description: "No action"}},
	}

	if err := ValidateScript(s); err == nil {
		t.Fatal("expected validation error for item without action")
	}
}

func TestLoadScriptsLoadsDefinitionsFromMultiplePaths(t *testing.T) {
	bundledDir := t.TempDir()
	userDir := t.TempDir()

	bundled := `name: dsp
title: DSP
items:
  - action: open
    description: "Open DSP"
`

	user := `name: dsp
title: DSP (custom)
items:
  - action: open
    description: "Open custom DSP"
  - action: eq
`

	presets := `name: presets
items:
  - action: load-default
`

	writeScriptFile(t, filepath.Join(bundledDir, "dsp.yaml"), bundled)
	writeScriptFile(t, filepath.Join(userDir, "dsp.yml"), user)
	writeScriptFile(t, filepath.Join(userDir, "presets.yaml"), presets)
	writeScriptFile(t, filepath.Join(userDir, "README.md"), "ignored")

	scripts, err := LoadScripts(bundledDir, userDir)
	if err != nil {
		t.Fatalf("expected scripts to load: %v", err)
	}

	if len(scripts) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(scripts))
	}

	dsp := scripts["dsp"]
	if dsp.Title != "DSP (custom)" {
		t.Fatalf("expected user definition to override bundled one, got title %q", dsp.Title)
	}

	if len(dsp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(dsp.Items))
	}

	if dsp.Items[1].Description != "eq" {
		t.Fatalf("expected empty description to default to action, got %q", dsp.Items[1].Description)
	}
}

func TestLoadScriptsSkipsMissingDirectories(t *testing.T) {
	scripts, err := LoadScripts(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("expected missing directory to be skipped: %v", err)
	}

	if len(scripts) != 0 {
		t.Fatalf("expected no scripts, got %d", len(scripts))
	}
}

func TestLoadScriptsReturnsErrorOnInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeScriptFile(t, filepath.Join(dir, "broken.yaml"), "name: [unterminated")

	if _, err := LoadScripts(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadScriptsReturnsErrorOnInvalidDefinition(t *testing.T) {
	dir := t.TempDir()
	writeScriptFile(t, filepath.Join(dir, "empty.yaml"), "name: empty\nitems: []\n")

	if _, err := LoadScripts(dir); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadEmbeddedScriptsIncludesDSP(t *testing.T) {
	scripts := make(map[string]Script)
	if err := loadEmbeddedScripts(scripts); err != nil {
		t.Fatalf("expected embedded scripts to load: %v", err)
	}

	dsp, ok := scripts["dsp"]
	if !ok {
		t.Fatal("expected bundled dsp script")
	}

	if dsp.Items[0].Action != "open" {
		t.Fatalf("expected first dsp action to be open, got %q", dsp.Items[0].Action)
	}
}

func TestLibraryGetReturnsNotFound(t *testing.T) {
	lib := NewLibrary(map[string]Script{})

	_, err := lib.Get("dsp")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLibraryItemsReturnsCopy(t *testing.T) {
	lib := NewLibrary(map[string]Script{
		"dsp": {Name: "dsp", Items: []Item{{Action: "open", Description: "Open DSP"}}},
	})

	items, err := lib.Items("dsp")
	if err != nil {
		t.Fatalf("expected items: %v", err)
	}

	items[0].Action = "mutated"

	again, _ := lib.Items("dsp")
	if again[0].Action != "open" {
		t.Fatalf("expected library items to be unaffected, got %q", again[0].Action)
	}
}

func TestLibraryNamesSorted(t *testing.T) {
	lib := NewLibrary(map[string]Script{
		"presets": {Name: "presets"},
		"dsp":     {Name: "dsp"},
	})

	names := lib.Names()
	if len(names) != 2 || names[0] != "dsp" || names[1] != "presets" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func writeScriptFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
