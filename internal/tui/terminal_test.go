package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSession_EscapeCleansUpOnce(t *testing.T) {
	var out bytes.Buffer
	mode := &fakeMode{}
	s := newSession(&out, keys("w", "\x1b[B", "\x1b"), mode)

	var result PickerResult
	err := s.run(func(term Terminal) error {
		var err error
		result, err = newTestPicker("", staticItems("widget")).Run(term)
		return err
	})
	mustNoErr(t, err)

	if result.Action != ActionNone {
		t.Errorf("Action = %v, want %v", result.Action, ActionNone)
	}
	if n := strings.Count(out.String(), ansi.ShowCursor); n != 1 {
		t.Errorf("cursor shown %d times, want 1", n)
	}
	if n := strings.Count(out.String(), ansi.HideCursor); n != 1 {
		t.Errorf("cursor hidden %d times, want 1", n)
	}
	if mode.raw != 1 || mode.restores != 1 {
		t.Errorf("raw = %d, restores = %d, want 1 and 1", mode.raw, mode.restores)
	}
	if !strings.HasSuffix(out.String(), ansi.ShowCursor+ansi.EraseEntireScreen+ansi.CursorHomePosition) {
		t.Errorf("output does not end with the cleanup sequence: %q", out.String())
	}

	s.Close()
	if n := strings.Count(out.String(), ansi.ShowCursor); n != 1 {
		t.Errorf("second Close() showed the cursor again (%d times)", n)
	}
}

func TestSession_StartSequence(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, keys("\x1b"), &fakeMode{})

	err := s.run(func(Terminal) error { return nil })
	mustNoErr(t, err)

	want := ansi.EraseEntireScreen + ansi.CursorHomePosition + ansi.HideCursor
	if !strings.HasPrefix(out.String(), want) {
		t.Errorf("output starts with %q, want %q", out.String(), want)
	}
}

func TestSession_CleansUpOnError(t *testing.T) {
	var out bytes.Buffer
	mode := &fakeMode{}
	s := newSession(&out, keys(), mode)
	boom := errors.New("boom")

	err := s.run(func(Terminal) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("run() error = %v, want %v", err, boom)
	}
	if mode.restores != 1 || strings.Count(out.String(), ansi.ShowCursor) != 1 {
		t.Errorf("restores = %d, output = %q, want one cleanup", mode.restores, out.String())
	}
}

func TestSession_CleansUpOnPanic(t *testing.T) {
	var out bytes.Buffer
	mode := &fakeMode{}
	s := newSession(&out, keys(), mode)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = s.run(func(Terminal) error { panic("boom") })
	}()

	if mode.restores != 1 || strings.Count(out.String(), ansi.ShowCursor) != 1 {
		t.Errorf("restores = %d, output = %q, want one cleanup", mode.restores, out.String())
	}
}

func TestSession_RawModeFailure(t *testing.T) {
	var out bytes.Buffer
	mode := &fakeMode{rawErr: errors.New("not a tty")}
	s := newSession(&out, keys(), mode)

	called := false
	err := s.run(func(Terminal) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("run() error = nil, want raw mode error")
	}
	if called {
		t.Error("controller ran without raw mode")
	}
	if strings.Count(out.String(), ansi.ShowCursor) != 1 {
		t.Errorf("output = %q, want the cursor shown again", out.String())
	}
}

func TestSession_PromptLine(t *testing.T) {
	var out bytes.Buffer
	mode := &fakeMode{}
	s := newSession(&out, keys("\r", "  my project \n"), mode)

	var result PickerResult
	err := s.run(func(term Terminal) error {
		var err error
		result, err = newTestPicker("", staticItems()).Run(term)
		return err
	})
	mustNoErr(t, err)

	if result.Action != ActionCreate || result.Path != "/kamis/2026-03-07-my-project" {
		t.Errorf("result = %+v, want create /kamis/2026-03-07-my-project", result)
	}
	// Entry, resume after the prompt.
	if mode.raw != 2 {
		t.Errorf("raw = %d, want 2", mode.raw)
	}
	// Prompt, exit.
	if mode.restores != 2 {
		t.Errorf("restores = %d, want 2", mode.restores)
	}
	if !strings.Contains(out.String(), ansi.ShowCursor+ansi.CursorHomePosition) {
		t.Errorf("prompt did not show the cursor before drawing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Enter name: ") {
		t.Errorf("prompt text missing from %q", out.String())
	}
}

func TestSession_CloseDetachesFrame(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, keys(), &fakeMode{})

	mustNoErr(t, s.run(func(Terminal) error { return nil }))
	if !s.closed() {
		t.Fatal("closed() = false after run")
	}

	n := out.Len()
	s.Frame().Line("late")
	mustNoErr(t, s.Frame().Flush())
	if out.Len() != n {
		t.Errorf("flush after Close wrote %q", out.String()[n:])
	}
}

func TestSession_CloseWhileRendering(t *testing.T) {
	var out bytes.Buffer
	mode := &fakeMode{}
	s := newSession(&out, keys(), mode)

	err := s.run(func(term Terminal) error {
		done := make(chan struct{})
		go func() {
			defer close(done)
			s.Close()
		}()
		for i := 0; i < 200; i++ {
			f := term.Frame()
			f.Line("row")
			f.Line(strings.Repeat("x", i%7))
			if err := f.Flush(); err != nil {
				return err
			}
		}
		<-done
		return nil
	})
	mustNoErr(t, err)

	if mode.restores != 1 || strings.Count(out.String(), ansi.ShowCursor) != 1 {
		t.Errorf("restores = %d, cursor shown %d times, want one cleanup", mode.restores, strings.Count(out.String(), ansi.ShowCursor))
	}
	if !strings.HasSuffix(out.String(), ansi.ShowCursor+ansi.EraseEntireScreen+ansi.CursorHomePosition) {
		t.Errorf("output does not end with the cleanup sequence: %q", out.String())
	}
}
