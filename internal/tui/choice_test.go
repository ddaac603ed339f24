package tui

import (
	"reflect"
	"testing"
)

func TestChoice(t *testing.T) {
	options := []string{"codex", "claude", "aider"}

	tests := []struct {
		name   string
		input  []string
		want   string
		wantOK bool
	}{
		{"skip row", []string{"\r"}, "", false},
		{"first option", []string{"\x1b[B", "\r"}, "aider", true},
		{"last option", []string{"\x1b[B", "\x1b[B", "\x1b[B", "\r"}, "codex", true},
		{"clamped", []string{"\x0e", "\x0e", "\x0e", "\x0e", "\x0e", "\r"}, "codex", true},
		{"back to skip", []string{"\x1b[B", "\x1b[A", "\x1b[A", "\r"}, "", false},
		{"typing ignored", []string{"c", "\x7f", "\x1b[B", "\r"}, "aider", true},
		{"escape", []string{"\x1b[B", "\x1b"}, "", false},
		{"ctrl-c", []string{"\x03"}, "", false},
		{"eof", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChoice("Select Config", options)
			got, ok, err := c.Run(newFakeTerminal(keys(tt.input...)))
			mustNoErr(t, err)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Run() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestChoice_SortsCopy(t *testing.T) {
	options := []string{"zeta", "alpha"}
	NewChoice("Select Config", options)

	if !reflect.DeepEqual(options, []string{"zeta", "alpha"}) {
		t.Errorf("caller slice reordered to %v", options)
	}
}

func TestChoice_Render(t *testing.T) {
	c := NewChoice("Select Config", []string{"codex", "aider"})
	c.sel.Cursor = 2
	f := NewFrame(nil, false)
	c.render(f)

	want := []string{
		"{highlight}Select Config{reset}",
		rule(),
		"  {dim}Skip (no config){reset}",
		"",
		"  aider",
		"→ codex",
		rule(),
		"{dim}↑↓: Navigate  Enter: Select  ESC: Cancel{reset}",
	}
	if got := f.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("render =\n%q\nwant\n%q", got, want)
	}
}

func TestRunChoice_NoOptionsSkips(t *testing.T) {
	got, ok, err := RunChoice("Select Config", nil)
	if err != nil || ok || got != "" {
		t.Errorf("RunChoice(nil) = (%q, %v, %v), want skipped", got, ok, err)
	}
}
