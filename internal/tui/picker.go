package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/workspace"
)

// Item is one candidate directory.
type Item struct {
	Name string
	Path string
}

// ErrListItems marks a failure of the item provider, as opposed to a
// failure of the terminal itself.
var ErrListItems = errors.New("failed to list items")

// ItemsFunc returns the current candidates. The picker calls it on every
// iteration, so directories created or removed meanwhile show up at once.
type ItemsFunc func() ([]Item, error)

// Action represents the outcome of a picker run
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionCreate
	ActionClone
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionCreate:
		return "create"
	case ActionClone:
		return "clone"
	}
	return "none"
}

// PickerResult holds the result of the picker. ActionNone means the user
// cancelled or gave no name.
type PickerResult struct {
	Action Action
	Item   Item   // ActionOpen
	Path   string // target directory for every action but ActionNone
	URI    string // ActionClone
}

// PickerOptions configures the directory picker
type PickerOptions struct {
	// Query seeds the search term.
	Query string

	// BasePath is the directory new entries are created under.
	BasePath string

	// Items supplies the candidates.
	Items ItemsFunc

	// CloneName replaces the derived directory name for clones.
	CloneName string

	// Hosts are extra domain tokens that mark a name as a remote reference.
	Hosts []string

	// Now returns the date used for new directory names. Defaults to time.Now.
	Now func() time.Time
}

// Picker is the directory/create selection controller.
type Picker struct {
	opts PickerOptions
	sel  Selection
}

// NewPicker creates a picker in its initial browsing state.
func NewPicker(opts PickerOptions) *Picker {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Picker{
		opts: opts,
		sel:  Selection{Search: strings.TrimSpace(opts.Query)},
	}
}

// Selection returns the current search term and cursor.
func (p *Picker) Selection() Selection {
	return p.sel
}

// RunPicker runs the picker on stdin and stderr. Without a terminal on both
// it returns ActionNone without drawing anything.
func RunPicker(opts PickerOptions) (PickerResult, error) {
	if !IsInteractive(os.Stdin, os.Stderr) {
		logging.Debug("picker skipped, not a terminal")
		return PickerResult{}, nil
	}

	var result PickerResult
	err := Run(os.Stdin, os.Stderr, func(t Terminal) error {
		var err error
		result, err = NewPicker(opts).Run(t)
		return err
	})
	return result, err
}

// Run loops until the user confirms or cancels.
func (p *Picker) Run(t Terminal) (PickerResult, error) {
	for {
		items, err := p.items()
		if err != nil {
			return PickerResult{}, err
		}
		p.sel.Clamp(len(items))

		p.render(t.Frame(), items)
		if err := t.Frame().Flush(); err != nil {
			return PickerResult{}, err
		}

		key, err := t.ReadKey()
		if errors.Is(err, io.EOF) {
			return PickerResult{}, nil
		}
		if err != nil {
			return PickerResult{}, err
		}

		switch {
		case key.Kind == KeyEnter:
			if p.sel.Cursor < len(items) {
				item := items[p.sel.Cursor]
				return PickerResult{Action: ActionOpen, Item: item, Path: item.Path}, nil
			}
			return p.createNew(t)
		case key.IsCancel():
			return PickerResult{}, nil
		case key.IsUp():
			p.sel.MoveUp()
		case key.IsDown():
			p.sel.MoveDown(len(items))
		case key.Kind == KeyBackspace:
			p.sel.Erase()
		case key.Kind == KeyPrintable:
			p.sel.Type(key.Char)
		}
	}
}

func (p *Picker) items() ([]Item, error) {
	if p.opts.Items == nil {
		return nil, nil
	}
	items, err := p.opts.Items()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListItems, err)
	}
	return FilterItems(items, p.sel.Search), nil
}

func (p *Picker) render(f *Frame, items []Item) {
	f.Line("{highlight}Toolkami Selector{reset}")
	f.Line(rule())
	f.Line("Search: " + p.sel.Search)
	f.Line(rule())

	for i, item := range items {
		f.Line(marker(i == p.sel.Cursor) + item.Name)
	}

	label := p.sel.Search
	if label == "" {
		label = "(enter name)"
	}
	f.Line("")
	f.Line(marker(p.sel.Cursor == len(items)) + "+ Create new: " + label)
}

func (p *Picker) createNew(t Terminal) (PickerResult, error) {
	name := p.sel.Search
	if name == "" {
		line, err := t.PromptLine("Enter name: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return PickerResult{}, err
		}
		name = line
	}
	if name == "" {
		return PickerResult{}, nil
	}
	return NewEntry(p.opts.BasePath, name, p.opts.CloneName, p.opts.Hosts, p.opts.Now())
}

// NewEntry resolves a typed name into a clone or create result under base.
// Names that look like a remote repository and parse cleanly become clones;
// everything else becomes a dated directory.
func NewEntry(base, name, cloneName string, hosts []string, now time.Time) (PickerResult, error) {
	if workspace.LooksLikeRemote(name, hosts) {
		if ref, ok := workspace.ParseRemote(name); ok {
			dir := cloneName
			if dir == "" {
				dir = workspace.DatedName(now, ref.User+"-"+ref.Repo)
			}
			path, err := securejoin.SecureJoin(base, dir)
			if err != nil {
				return PickerResult{}, fmt.Errorf("invalid clone directory %q: %w", dir, err)
			}
			return PickerResult{Action: ActionClone, URI: name, Path: path}, nil
		}
		logging.Debug("remote-looking name not recognized, creating directory", "name", name)
	}

	dir := workspace.DatedName(now, name)
	path, err := securejoin.SecureJoin(base, dir)
	if err != nil {
		return PickerResult{}, fmt.Errorf("invalid directory name %q: %w", dir, err)
	}
	return PickerResult{Action: ActionCreate, Path: path}, nil
}
