package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// Logger is the global structured logger
	Logger *slog.Logger

	// Verbose enables debug logging
	Verbose bool

	sink = &heldWriter{w: os.Stderr}
)

func init() {
	Logger = slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// heldWriter forwards to w, or queues while held.
type heldWriter struct {
	mu   sync.Mutex
	w    io.Writer
	held bool
	buf  bytes.Buffer
}

func (h *heldWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.held {
		return h.buf.Write(p)
	}
	return h.w.Write(p)
}

func (h *heldWriter) setHeld(held bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = held
	if !held && h.buf.Len() > 0 {
		_, _ = h.w.Write(h.buf.Bytes())
		h.buf.Reset()
	}
}

// Setup configures the logger based on verbosity and output preferences
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if w == nil {
		w = os.Stderr
	}
	sink.setHeld(false)
	sink.mu.Lock()
	sink.w = w
	sink.mu.Unlock()

	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(sink, opts))
	} else {
		Logger = slog.New(slog.NewTextHandler(sink, opts))
	}
}

// Hold queues log records instead of writing them. The terminal picker holds
// the log while it owns the screen so records do not land inside a frame.
func Hold() {
	sink.setHeld(true)
}

// Release writes any queued records and resumes direct output.
func Release() {
	sink.setHeld(false)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
