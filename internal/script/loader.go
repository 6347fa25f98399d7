package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bundledscripts "github.com/andreagrandi/icetool/scripts"
	"gopkg.in/yaml.v3"
)

// LoadScripts loads script definitions from one or more directories.
//
// If no paths are provided, default locations are used in this order:
//  1. scripts/ relative to the executable
//  2. scripts/ relative to the current working directory
//  3. ~/.config/icetool/scripts
//
// When multiple files define the same script name, the last loaded definition
// wins. With default paths, this means user-local scripts override bundled
// ones.
func LoadScripts(paths ...string) (map[string]Script, error) {
	loadBundledDefaults := len(paths) == 0

	loadPaths, err := resolveScriptPaths(paths...)
	if err != nil {
		return nil, err
	}

	scripts := make(map[string]Script)
	if loadBundledDefaults {
		if err := loadEmbeddedScripts(scripts); err != nil {
			return nil, err
		}
	}

	for _, rawPath := range loadPaths {
		path, err := expandHome(rawPath)
		if err != nil {
			return nil, fmt.Errorf("expand scripts path %q: %w", rawPath, err)
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("read scripts directory %q: %w", path, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !isScriptFile(entry.Name()) {
				continue
			}

			filePath := filepath.Join(path, entry.Name())
			script, err := loadScriptFile(filePath)
			if err != nil {
				return nil, err
			}

			scripts[script.Name] = script
		}
	}

	return scripts, nil
}

// LoadWithOverrides loads the bundled scripts and the default user locations,
// then layers the scripts found in dir on top. An empty dir behaves like
// LoadScripts with no arguments.
func LoadWithOverrides(dir string) (map[string]Script, error) {
	scripts, err := LoadScripts()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(dir) == "" {
		return scripts, nil
	}

	extra, err := LoadScripts(dir)
	if err != nil {
		return nil, err
	}

	for name, s := range extra {
		scripts[name] = s
	}

	return scripts, nil
}

// ValidateScript validates required fields for a script definition.
func ValidateScript(s Script) error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return errors.New("script name is required")
	}

	if len(s.Items) == 0 {
		return fmt.Errorf("script %q has no items", name)
	}

	for i, item := range s.Items {
		if strings.TrimSpace(item.Action) == "" {
			return fmt.Errorf("script %q item %d has no action", name, i+1)
		}
	}

	return nil
}

func resolveScriptPaths(paths ...string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}

	binaryPath := "scripts"
	executablePath, err := os.Executable()
	if err == nil {
		binaryPath = filepath.Join(filepath.Dir(executablePath), "scripts")
	}

	loadPaths := []string{binaryPath}

	workingDirectory, err := os.Getwd()
	if err == nil {
		loadPaths = append(loadPaths, filepath.Join(workingDirectory, "scripts"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return dedupePaths(loadPaths), nil
	}

	loadPaths = append(loadPaths, filepath.Join(homeDir, ".config", "icetool", "scripts"))

	return dedupePaths(loadPaths), nil
}

func dedupePaths(paths []string) []string {
	seenPaths := make(map[string]struct{}, len(paths))
	uniquePaths := make([]string, 0, len(paths))

	for _, path := range paths {
		normalizedPath := filepath.Clean(path)
		if normalizedPath == "" {
			continue
		}

		if _, seen := seenPaths[normalizedPath]; seen {
			continue
		}

		seenPaths[normalizedPath] = struct{}{}
		uniquePaths = append(uniquePaths, path)
	}

	return uniquePaths
}

func isScriptFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

func loadScriptFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script file %q: %w", path, err)
	}

	return parseScriptDefinition(path, data)
}

func loadEmbeddedScripts(scripts map[string]Script) error {
	entries, err := bundledscripts.FS.ReadDir(".")
	if err != nil {
		return fmt.Errorf("read embedded scripts: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isScriptFile(entry.Name()) {
			continue
		}

		filePath := entry.Name()
		data, err := bundledscripts.FS.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read embedded script file %q: %w", filePath, err)
		}

		script, err := parseScriptDefinition("embedded/"+filePath, data)
		if err != nil {
			return err
		}

		scripts[script.Name] = script
	}

	return nil
}

func parseScriptDefinition(path string, data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("parse script file %q: %w", path, err)
	}

	script = normalizeScript(script)

	if err := ValidateScript(script); err != nil {
		return Script{}, fmt.Errorf("validate script file %q: %w", path, err)
	}

	return script, nil
}

func normalizeScript(s Script) Script {
	s.Name = strings.TrimSpace(s.Name)
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)

	items := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		item.Action = strings.TrimSpace(item.Action)
		item.Description = strings.TrimSpace(item.Description)
		if item.Description == "" {
			item.Description = item.Action
		}
		items = append(items, item)
	}
	s.Items = items

	return s
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}

	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	relativePath := path[2:]
	return filepath.Join(homeDir, relativePath), nil
}
