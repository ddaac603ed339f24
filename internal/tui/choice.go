package tui

import (
	"errors"
	"io"
	"os"
	"sort"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
)

// Choice is the fixed-list selection controller. Row 0 is a permanent skip
// row and rows 1..N are the options.
type Choice struct {
	title   string
	options []string
	sel     Selection
}

// NewChoice creates a chooser over a sorted copy of options.
func NewChoice(title string, options []string) *Choice {
	sorted := append([]string(nil), options...)
	sort.Strings(sorted)
	return &Choice{title: title, options: sorted}
}

// RunChoice asks the user to pick one of options on stdin and stderr.
// ok is false when the user skipped or cancelled, when there is nothing to
// choose from, or when no terminal is attached. With no options the terminal
// is never touched.
func RunChoice(title string, options []string) (choice string, ok bool, err error) {
	if len(options) == 0 {
		return "", false, nil
	}
	if !IsInteractive(os.Stdin, os.Stderr) {
		logging.Debug("choice skipped, not a terminal", "title", title)
		return "", false, nil
	}

	err = Run(os.Stdin, os.Stderr, func(t Terminal) error {
		var err error
		choice, ok, err = NewChoice(title, options).Run(t)
		return err
	})
	return choice, ok, err
}

// Run loops until the user confirms a row or cancels.
func (c *Choice) Run(t Terminal) (string, bool, error) {
	for {
		c.render(t.Frame())
		if err := t.Frame().Flush(); err != nil {
			return "", false, err
		}

		key, err := t.ReadKey()
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}

		switch {
		case key.Kind == KeyEnter:
			if c.sel.Cursor == 0 {
				return "", false, nil
			}
			return c.options[c.sel.Cursor-1], true, nil
		case key.IsCancel():
			return "", false, nil
		case key.IsUp():
			c.sel.MoveUp()
		case key.IsDown():
			c.sel.MoveDown(len(c.options))
		}
	}
}

func (c *Choice) render(f *Frame) {
	f.Line("{highlight}" + c.title + "{reset}")
	f.Line(rule())

	f.Line(marker(c.sel.Cursor == 0) + "{dim}Skip (no config){reset}")
	f.Line("")

	for i, name := range c.options {
		f.Line(marker(c.sel.Cursor == i+1) + name)
	}

	f.Line(rule())
	f.Line("{dim}↑↓: Navigate  Enter: Select  ESC: Cancel{reset}")
}
