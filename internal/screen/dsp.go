package screen

import "fmt"

// DSPScreen controls the DSP tab. Selecting any item jumps to the console tab.
type DSPScreen struct {
	base Base
	host TabSetter
}

// NewDSPScreen creates the DSP controller.
func NewDSPScreen(base Base, host TabSetter) *DSPScreen {
	return &DSPScreen{base: base, host: host}
}

// OnItemSelected switches the host to the console tab. The selection itself
// is not inspected.
func (s *DSPScreen) OnItemSelected(_, _ string) (bool, error) {
	if err := s.host.SetCurrentTab(TabConsole); err != nil {
		return false, fmt.Errorf("switch to console tab: %w", err)
	}

	return true, nil
}

// OnCreate loads the dsp list and only then runs the base setup, which
// renders from that list.
func (s *DSPScreen) OnCreate(saved SavedState) error {
	if err := s.base.InitList(ListDSP); err != nil {
		return fmt.Errorf("create dsp screen: %w", err)
	}

	if err := s.base.OnCreate(saved); err != nil {
		return fmt.Errorf("create dsp screen: %w", err)
	}

	return nil
}
