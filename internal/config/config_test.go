package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromReturnsDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if !cfg.IsFeatureEnabled("tui") {
		t.Fatal("expected tui feature to be enabled by default")
	}

	if cfg.ScriptsDir() != "" {
		t.Fatalf("expected no scripts dir by default, got %q", cfg.ScriptsDir())
	}
}

func TestLoadFromReadsExistingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"features":{"tui":false},"scripts_dir":"/opt/scripts","log_level":"debug"}`

	writeConfig(t, configPath, content)

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.IsFeatureEnabled("tui") {
		t.Fatal("expected tui feature to be disabled")
	}

	if cfg.ScriptsDir() != "/opt/scripts" {
		t.Fatalf("expected scripts dir, got %q", cfg.ScriptsDir())
	}

	if cfg.LogLevel() != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.LogLevel())
	}
}

func TestLoadFromAcceptsCommentsAndTrailingCommas(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{
  // keep the plain menu on this machine
  "features": {"tui": false,},
  "session_file": "/tmp/icetool-session.toml", /* shared */
}`

	writeConfig(t, configPath, content)

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.IsFeatureEnabled("tui") {
		t.Fatal("expected tui feature to be disabled")
	}

	if cfg.SessionFile() != "/tmp/icetool-session.toml" {
		t.Fatalf("expected session file, got %q", cfg.SessionFile())
	}
}

func TestLoadFromReturnsErrorOnInvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	writeConfig(t, configPath, "{not json}")

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error on invalid JSON")
	}
}

func TestLoadFromReturnsErrorOnInvalidFeaturesType(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	writeConfig(t, configPath, `{"features":"not-a-map"}`)

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error on invalid features type")
	}
}

func TestLoadFromReturnsErrorOnInvalidSettingType(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	writeConfig(t, configPath, `{"scripts_dir":42}`)

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error on invalid setting type")
	}
}

func TestSetFeatureEnableAndDisable(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("session", false); err != nil {
		t.Fatalf("expected disable to succeed: %v", err)
	}

	if cfg.IsFeatureEnabled("session") {
		t.Fatal("expected session to be disabled after SetFeature(false)")
	}

	if err := cfg.SetFeature("session", true); err != nil {
		t.Fatalf("expected enable to succeed: %v", err)
	}

	if !cfg.IsFeatureEnabled("session") {
		t.Fatal("expected session to be enabled after SetFeature(true)")
	}
}

func TestSetFeaturePersistsToDisk(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("tui", false); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	reloaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected reload to succeed: %v", err)
	}

	if reloaded.IsFeatureEnabled("tui") {
		t.Fatal("expected tui to remain disabled after reload")
	}
}

func TestSetFeatureRejectsUnknownFeature(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("nonexistent", true); err == nil {
		t.Fatal("expected error for unknown feature")
	}
}

func TestSetFeatureRejectsEmptyName(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("  ", true); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestSetFeatureRejectsNilConfig(t *testing.T) {
	var cfg *Config

	if err := cfg.SetFeature("tui", true); err == nil {
		t.Fatal("expected error on nil config")
	}
}

func TestIsFeatureEnabledUsesDefaultsOnNilConfig(t *testing.T) {
	var cfg *Config

	if !cfg.IsFeatureEnabled("tui") {
		t.Fatal("expected nil config to fall back to the tui default")
	}

	if cfg.IsFeatureEnabled("nonexistent") {
		t.Fatal("expected unknown feature to return false")
	}
}

func TestFeaturesReturnsSortedList(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	features := cfg.Features()
	if len(features) != len(FeatureRegistry) {
		t.Fatalf("expected %d features, got %d", len(FeatureRegistry), len(features))
	}

	for i := 1; i < len(features); i++ {
		if features[i-1].Name > features[i].Name {
			t.Fatalf("expected sorted features, got %v", features)
		}
	}

	for _, f := range features {
		if f.Description == "" {
			t.Fatalf("expected %s to have a description", f.Name)
		}
	}
}

func TestLogFileDefaultsNextToConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if got := cfg.LogFile(); got != filepath.Join(dir, "icetool.log") {
		t.Fatalf("unexpected log file %q", got)
	}
}

func TestSessionFileDefaultsNextToConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if got := cfg.SessionFile(); got != filepath.Join(dir, "session.toml") {
		t.Fatalf("unexpected session file %q", got)
	}
}

func TestSetFeaturePreservesUnknownTopLevelKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	writeConfig(t, configPath, `{"custom_setting":"keep-me","scripts_dir":"/srv/scripts","features":{"tui":true}}`)

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("tui", false); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file to be readable: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("expected valid JSON on disk: %v", err)
	}

	if parsed["custom_setting"] != "keep-me" {
		t.Fatalf("expected custom_setting to be preserved, got %v", parsed["custom_setting"])
	}

	if parsed["scripts_dir"] != "/srv/scripts" {
		t.Fatalf("expected scripts_dir to be preserved, got %v", parsed["scripts_dir"])
	}

	features, ok := parsed["features"].(map[string]any)
	if !ok {
		t.Fatal("expected features key in JSON")
	}

	if tui, ok := features["tui"].(bool); !ok || tui {
		t.Fatal("expected tui=false in JSON")
	}
}

func writeConfig(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
}
