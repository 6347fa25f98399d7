package app

import "testing"

func TestAppVersion(t *testing.T) {
	app := New()

	if app.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, app.Version)
	}

	if app.Name != "icetool" {
		t.Errorf("Expected name icetool, got %s", app.Name)
	}

	expectedFullVersion := "icetool version " + Version
	if app.GetFullVersion() != expectedFullVersion {
		t.Errorf("Expected full version '%s', got '%s'", expectedFullVersion, app.GetFullVersion())
	}
}

func TestAppTitle(t *testing.T) {
	app := &App{Name: Name, Version: "1.2.3"}
	if got := app.Title(); got != "icetool v1.2.3" {
		t.Errorf("Expected title 'icetool v1.2.3', got '%s'", got)
	}

	app.Version = ""
	if got := app.Title(); got != "icetool" {
		t.Errorf("Expected bare name without version, got '%s'", got)
	}
}

func TestAppConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version constant should not be empty")
	}

	if Author == "" {
		t.Error("Author constant should not be empty")
	}

	if License == "" {
		t.Error("License constant should not be empty")
	}
}
