package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	sessionFileName = "session.toml"
	sessionDirName  = "icetool"
)

// Session is the state persisted between runs.
type Session struct {
	ActiveTab int                          `toml:"active_tab"`
	Screens   map[string]map[string]string `toml:"screens,omitempty"`
}

// State returns the saved state for a screen, or an empty map.
func (s *Session) State(name string) map[string]string {
	if s == nil || s.Screens == nil {
		return map[string]string{}
	}

	state, ok := s.Screens[name]
	if !ok {
		return map[string]string{}
	}

	copied := make(map[string]string, len(state))
	for k, v := range state {
		copied[k] = v
	}

	return copied
}

// SetState replaces the saved state of a screen.
func (s *Session) SetState(name string, state map[string]string) {
	if s.Screens == nil {
		s.Screens = make(map[string]map[string]string)
	}

	copied := make(map[string]string, len(state))
	for k, v := range state {
		copied[k] = v
	}

	s.Screens[name] = copied
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store at path. An empty path uses
// ~/.config/icetool/session.toml.
func NewStore(path string) *Store {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = defaultSessionPath()
	}

	return &Store{path: resolved}
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the session file. A missing or empty file yields an empty session.
func (s *Store) Load() (*Session, error) {
	sess := &Session{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sess, nil
		}

		return nil, fmt.Errorf("read session file %q: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return sess, nil
	}

	if err := toml.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("parse session file %q: %w", s.path, err)
	}

	return sess, nil
}

// Save writes sess to the session file.
func (s *Store) Save(sess *Session) error {
	if sess == nil {
		return errors.New("session is nil")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session directory %q: %w", dir, err)
	}

	data, err := toml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("serialize session file %q: %w", s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file %q: %w", s.path, err)
	}

	return nil
}

// Reset deletes the session file. A missing file is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file %q: %w", s.path, err)
	}

	return nil
}

func defaultSessionPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", sessionDirName, sessionFileName)
	}

	return filepath.Join(homeDir, ".config", sessionDirName, sessionFileName)
}
