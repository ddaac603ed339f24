package tui

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Frame is a double-buffered line renderer. Lines are collected with Print
// and Line, and Flush rewrites only the rows that differ from the previous
// flush. When the destination is not interactive, Flush writes the frame as
// plain text with every style marker removed.
//
// A Frame is driven by one interaction loop. Its methods serialize on an
// internal lock so a session can detach it from another goroutine.
type Frame struct {
	mu          sync.Mutex
	out         io.Writer
	interactive bool

	pending  strings.Builder
	current  []string
	previous []string
}

// NewFrame returns a Frame writing to out. interactive selects the diffing
// terminal renderer over the plain text fallback.
func NewFrame(out io.Writer, interactive bool) *Frame {
	return &Frame{out: out, interactive: interactive}
}

// Print appends text to the pending line without terminating it.
func (f *Frame) Print(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending.WriteString(text)
}

// Line appends text to the pending line and terminates it.
func (f *Frame) Line(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending.WriteString(text)
	f.current = append(f.current, f.pending.String())
	f.pending.Reset()
}

// Lines returns a copy of the lines collected since the last flush.
func (f *Frame) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.current...)
}

// Flush renders the collected lines and starts a new generation.
func (f *Frame) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending.Len() > 0 {
		f.current = append(f.current, f.pending.String())
		f.pending.Reset()
	}

	if !f.interactive {
		plain := StripTokens(strings.Join(f.current, "\n"))
		if !strings.HasSuffix(plain, "\n") {
			plain += "\n"
		}
		f.current = nil
		f.previous = nil
		_, err := io.WriteString(f.out, plain)
		return err
	}

	var b strings.Builder
	b.WriteString(ansi.CursorHomePosition)

	rows := max(len(f.current), len(f.previous))
	for i := 0; i < rows; i++ {
		cur := lineAt(f.current, i)
		if cur == lineAt(f.previous, i) {
			continue
		}
		b.WriteString(ansi.CursorPosition(1, i+1))
		b.WriteString(ansi.EraseEntireLine)
		if cur != "" {
			b.WriteString(ExpandTokens(cur))
			b.WriteString(ansi.ResetStyle)
		}
	}

	f.previous = f.current
	f.current = nil

	_, err := io.WriteString(f.out, b.String())
	return err
}

// Clear empties both generations and the pending line and clears the screen.
func (f *Frame) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clear()
}

// Detach clears the screen and discards everything rendered afterwards.
func (f *Frame) Detach() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.clear()
	f.out = io.Discard
	return err
}

func (f *Frame) clear() error {
	f.pending.Reset()
	f.current = nil
	f.previous = nil
	_, err := io.WriteString(f.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
