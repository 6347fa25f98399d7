package cli

import (
	"os"
	"time"
)

const (
	escByte       = byte(0x1b)
	ctrlCByte     = byte(0x03)
	escSeqTimeout = 25 * time.Millisecond
)

// tabPickerInput wraps the terminal input of survey prompts. A lone Esc is
// rewritten to Ctrl+C so survey aborts the prompt, and the press is
// remembered so the menu can open the tab picker instead of quitting.
type tabPickerInput struct {
	file       *os.File
	escPressed bool
}

func newTabPickerInput(file *os.File) *tabPickerInput {
	return &tabPickerInput{file: file}
}

func (i *tabPickerInput) Read(p []byte) (int, error) {
	n, err := i.file.Read(p)
	if n <= 0 {
		return n, err
	}

	// Only an Esc ending the read can be a lone key press.
	last := n - 1
	if p[last] == escByte && !escFollowedBySequence(i.file, escSeqTimeout) {
		p[last] = ctrlCByte
		i.escPressed = true
	}

	return n, err
}

func (i *tabPickerInput) Fd() uintptr {
	return i.file.Fd()
}

// takeEsc reports whether Esc was pressed since the last call.
func (i *tabPickerInput) takeEsc() bool {
	pressed := i.escPressed
	i.escPressed = false

	return pressed
}
