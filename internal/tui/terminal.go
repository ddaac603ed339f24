package tui

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
)

// Terminal is what the selection controllers need from an interactive session.
type Terminal interface {
	// Frame returns the renderer for this session.
	Frame() *Frame

	// ReadKey blocks for one logical key.
	ReadKey() (Key, error)

	// PromptLine shows prompt and reads one line in cooked mode.
	PromptLine(prompt string) (string, error)
}

// modeSwitcher toggles the input between raw and its original mode.
type modeSwitcher interface {
	Raw() error
	Restore() error
}

type ttyMode struct {
	fd    int
	saved *term.State
}

func (m *ttyMode) Raw() error {
	state, err := term.MakeRaw(m.fd)
	if err != nil {
		return err
	}
	if m.saved == nil {
		m.saved = state
	}
	return nil
}

func (m *ttyMode) Restore() error {
	if m.saved == nil {
		return nil
	}
	return term.Restore(m.fd, m.saved)
}

// IsInteractive reports whether both in and out are terminals.
func IsInteractive(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// syncWriter serializes writes from the controller and the signal watcher.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// Session owns the terminal for one controller run: raw input, a hidden
// cursor and a Frame. Close undoes all of it exactly once.
type Session struct {
	out   io.Writer
	src   ByteSource
	frame *Frame
	keys  *KeyReader

	mu      sync.Mutex // guards mode and closing
	mode    modeSwitcher
	closing bool

	closeOnce sync.Once
	stop      func()
}

func newSession(out io.Writer, src ByteSource, mode modeSwitcher) *Session {
	w := &syncWriter{w: out}
	return &Session{
		out:   w,
		src:   src,
		frame: NewFrame(w, true),
		keys:  NewKeyReader(src),
		mode:  mode,
	}
}

func (s *Session) raw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode.Raw()
}

func (s *Session) restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode.Restore()
}

// closed reports whether Close has started.
func (s *Session) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closing
}

// Run gives fn an interactive session on in and out. The terminal is
// restored when fn returns, fails, panics, or the process receives
// SIGINT, SIGTERM or SIGHUP.
func Run(in, out *os.File, fn func(Terminal) error) error {
	s := newSession(out, NewFileSource(in), &ttyMode{fd: int(in.Fd())})
	s.stop = s.watchSignals()
	return s.run(fn)
}

func (s *Session) run(fn func(Terminal) error) error {
	defer s.Close()
	if err := s.start(); err != nil {
		return err
	}
	return fn(s)
}

func (s *Session) start() error {
	logging.Hold()
	if err := s.frame.Clear(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.out, ansi.HideCursor); err != nil {
		return err
	}
	if err := s.raw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return nil
}

// Close shows the cursor, clears and detaches the frame and restores the
// input mode. Only the first call has any effect; later calls wait for it.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closing = true
		s.mu.Unlock()

		if s.stop != nil {
			s.stop()
		}
		_, _ = io.WriteString(s.out, ansi.ShowCursor)
		_ = s.frame.Detach()
		if err := s.restore(); err != nil {
			logging.Warn("failed to restore terminal mode", "error", err)
		}
		logging.Release()
	})
}

func (s *Session) watchSignals() func() {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case sig := <-sigs:
			if s.closed() {
				// The controller finished first; its result stands.
				return
			}
			s.Close()
			code := 1
			if n, ok := sig.(syscall.Signal); ok {
				code = 128 + int(n)
			}
			os.Exit(code)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}

// Frame returns the session's renderer.
func (s *Session) Frame() *Frame {
	return s.frame
}

// ReadKey blocks for one logical key.
func (s *Session) ReadKey() (Key, error) {
	return s.keys.ReadKey()
}

// PromptLine clears the screen, shows the cursor, switches the input back to
// its original line-buffered mode and reads one line. Raw mode is resumed
// before returning.
func (s *Session) PromptLine(prompt string) (string, error) {
	if err := s.frame.Clear(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(s.out, ansi.ShowCursor); err != nil {
		return "", err
	}
	s.frame.Print(prompt)
	if err := s.frame.Flush(); err != nil {
		return "", err
	}

	if err := s.restore(); err != nil {
		return "", fmt.Errorf("failed to restore line mode: %w", err)
	}
	line, readErr := ReadLine(s.src)
	if err := s.raw(); err != nil {
		return "", fmt.Errorf("failed to re-enter raw mode: %w", err)
	}
	return strings.TrimSpace(line), readErr
}
