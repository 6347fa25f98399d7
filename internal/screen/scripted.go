package screen

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ScriptScreen controls a scripted tab with no behavior of its own. It loads
// its list like DSPScreen does but leaves selections to the next handler.
type ScriptScreen struct {
	base Base
	name string
	log  zerolog.Logger
}

// NewScriptScreen creates a controller for the script called name.
func NewScriptScreen(base Base, name string, logger zerolog.Logger) *ScriptScreen {
	return &ScriptScreen{base: base, name: name, log: logger}
}

func (s *ScriptScreen) OnItemSelected(action, description string) (bool, error) {
	s.log.Debug().Str("list", s.name).Str("action", action).Str("description", description).Msg("selection passed on")
	return false, nil
}

func (s *ScriptScreen) OnCreate(saved SavedState) error {
	if err := s.base.InitList(s.name); err != nil {
		return fmt.Errorf("create %s screen: %w", s.name, err)
	}

	if err := s.base.OnCreate(saved); err != nil {
		return fmt.Errorf("create %s screen: %w", s.name, err)
	}

	return nil
}
