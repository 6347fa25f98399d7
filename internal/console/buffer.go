package console

import (
	"strings"
	"sync"
)

// DefaultCapacity is the number of lines kept when no capacity is given.
const DefaultCapacity = 500

// Buffer keeps the most recent lines shown by the console tab.
//
// Buffer implements io.Writer so it can receive log output directly.
// Bytes after the last newline are held back until the line is completed.
type Buffer struct {
	mu       sync.Mutex
	lines    []string
	partial  strings.Builder
	capacity int
}

// NewBuffer creates a buffer holding at most capacity lines.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Buffer{capacity: capacity}
}

// Write splits p into lines and appends the complete ones.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := string(p)
	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			b.partial.WriteString(text)
			break
		}

		b.partial.WriteString(text[:idx])
		b.appendLocked(strings.TrimRight(b.partial.String(), "\r"))
		b.partial.Reset()
		text = text[idx+1:]
	}

	return len(p), nil
}

// Append adds a single line.
func (b *Buffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.appendLocked(line)
}

// Lines returns a copy of the buffered lines, oldest first.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.lines))
	copy(out, b.lines)

	return out
}

// Len returns the number of complete lines held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.lines)
}

func (b *Buffer) appendLocked(line string) {
	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.capacity; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}
