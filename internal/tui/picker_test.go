package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 7, 9, 30, 0, 0, time.UTC)

func newTestPicker(query string, items ItemsFunc) *Picker {
	return NewPicker(PickerOptions{
		Query:    query,
		BasePath: "/kamis",
		Items:    items,
		Now:      func() time.Time { return testNow },
	})
}

func runPicker(t *testing.T, p *Picker, term *fakeTerminal) PickerResult {
	t.Helper()
	result, err := p.Run(term)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

func TestPicker_OpenExisting(t *testing.T) {
	p := newTestPicker("", staticItems("alpha", "beta", "gamma"))
	result := runPicker(t, p, newFakeTerminal(keys("\x1b[B", "\x1b[B", "\x1b[A", "\r")))

	if result.Action != ActionOpen {
		t.Fatalf("Action = %v, want %v", result.Action, ActionOpen)
	}
	if result.Item.Name != "beta" || result.Path != "/kamis/beta" {
		t.Errorf("result = %+v, want beta", result)
	}
}

func TestPicker_FilterThenOpen(t *testing.T) {
	p := newTestPicker("", staticItems("alpha", "beta"))
	result := runPicker(t, p, newFakeTerminal(keys("e", "t", "\r")))

	if result.Action != ActionOpen || result.Item.Name != "beta" {
		t.Errorf("result = %+v, want open beta", result)
	}
}

func TestPicker_CtrlKeysNavigate(t *testing.T) {
	p := newTestPicker("", staticItems("alpha", "beta", "gamma"))
	result := runPicker(t, p, newFakeTerminal(keys("\x0e", "\x0e", "\x10", "\r")))

	if result.Item.Name != "beta" {
		t.Errorf("Item = %q, want beta", result.Item.Name)
	}
}

func TestPicker_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		query string
		input []string
	}{
		{"escape", "", []string{"\x1b"}},
		{"escape with search", "wid", []string{"\x1b[B", "\x1b"}},
		{"ctrl-c", "", []string{"a", "\x03"}},
		{"eof", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPicker(tt.query, staticItems("widget", "gadget"))
			result := runPicker(t, p, newFakeTerminal(keys(tt.input...)))
			if result.Action != ActionNone {
				t.Errorf("Action = %v, want %v", result.Action, ActionNone)
			}
		})
	}
}

func TestPicker_IgnoredKeysKeepState(t *testing.T) {
	p := newTestPicker("wi", staticItems("widget"))
	term := newFakeTerminal(keys("\x1b[B", "/", "\t", "\x1b"))
	runPicker(t, p, term)

	if got := p.Selection(); got.Search != "wi" || got.Cursor != 1 {
		t.Errorf("Selection() = %+v, want search wi and cursor 1", got)
	}
}

func TestPicker_CreateFromSearch(t *testing.T) {
	p := newTestPicker("", staticItems("alpha"))
	term := newFakeTerminal(keys("n", "e", "w", " ", "x", "\r"))
	result := runPicker(t, p, term)

	if result.Action != ActionCreate {
		t.Fatalf("Action = %v, want %v", result.Action, ActionCreate)
	}
	if want := "/kamis/2026-03-07-new-x"; result.Path != want {
		t.Errorf("Path = %q, want %q", result.Path, want)
	}
	if term.prompts != 0 {
		t.Errorf("prompted %d times, want 0", term.prompts)
	}
}

func TestPicker_CreatePromptsWithoutSearch(t *testing.T) {
	t.Run("name given", func(t *testing.T) {
		term := newFakeTerminal(keys("\x1b[B", "\r"))
		term.answer = "my project"
		result := runPicker(t, newTestPicker("", staticItems("alpha")), term)

		if term.prompt != "Enter name: " {
			t.Errorf("prompt = %q, want %q", term.prompt, "Enter name: ")
		}
		if result.Action != ActionCreate || result.Path != "/kamis/2026-03-07-my-project" {
			t.Errorf("result = %+v, want create /kamis/2026-03-07-my-project", result)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		term := newFakeTerminal(keys("\r"))
		result := runPicker(t, newTestPicker("", staticItems()), term)

		if term.prompts != 1 {
			t.Errorf("prompted %d times, want 1", term.prompts)
		}
		if result.Action != ActionNone {
			t.Errorf("Action = %v, want %v", result.Action, ActionNone)
		}
	})
}

func TestPicker_EmptyFilteredListConfirmsCreate(t *testing.T) {
	p := newTestPicker("zzz", staticItems("alpha"))
	result := runPicker(t, p, newFakeTerminal(keys("\r")))

	if result.Action != ActionCreate || !strings.HasSuffix(result.Path, "-zzz") {
		t.Errorf("result = %+v, want create ending in -zzz", result)
	}
}

func TestPicker_Clone(t *testing.T) {
	p := newTestPicker("git@github.com:acme/widget.git", staticItems("alpha"))
	result := runPicker(t, p, newFakeTerminal(keys("\r")))

	if result.Action != ActionClone {
		t.Fatalf("Action = %v, want %v", result.Action, ActionClone)
	}
	if result.URI != "git@github.com:acme/widget.git" {
		t.Errorf("URI = %q", result.URI)
	}
	if !strings.HasSuffix(result.Path, "-acme-widget") {
		t.Errorf("Path = %q, want suffix -acme-widget", result.Path)
	}
}

func TestPicker_ItemsReadEveryIteration(t *testing.T) {
	calls := 0
	items := func() ([]Item, error) {
		calls++
		if calls == 1 {
			return []Item{{Name: "alpha", Path: "/kamis/alpha"}}, nil
		}
		return []Item{{Name: "beta", Path: "/kamis/beta"}}, nil
	}

	result := runPicker(t, newTestPicker("", items), newFakeTerminal(keys("\x1b[A", "\r")))
	if calls != 2 {
		t.Errorf("provider called %d times, want 2", calls)
	}
	if result.Item.Name != "beta" {
		t.Errorf("Item = %q, want beta", result.Item.Name)
	}
}

func TestPicker_CursorClampedWhenListShrinks(t *testing.T) {
	calls := 0
	items := func() ([]Item, error) {
		calls++
		if calls == 1 {
			return []Item{{Name: "a"}, {Name: "b"}, {Name: "c"}}, nil
		}
		return []Item{{Name: "a"}}, nil
	}

	p := newTestPicker("", items)
	runPicker(t, p, newFakeTerminal(keys("\x1b[B", "\x1b[B", "\x1b[B", "\x1b")))
	if got := p.Selection().Cursor; got != 1 {
		t.Errorf("Cursor = %d, want 1", got)
	}
}

func TestPicker_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	p := newTestPicker("", func() ([]Item, error) { return nil, boom })

	_, err := p.Run(newFakeTerminal(keys("\r")))
	if !errors.Is(err, boom) || !errors.Is(err, ErrListItems) {
		t.Errorf("Run() error = %v, want %v wrapped as %v", err, boom, ErrListItems)
	}
}

func TestPicker_Render(t *testing.T) {
	p := newTestPicker("et", staticItems("alpha", "beta"))
	f := NewFrame(nil, false)
	items, err := p.items()
	mustNoErr(t, err)
	p.render(f, items)

	want := []string{
		"{highlight}Toolkami Selector{reset}",
		rule(),
		"Search: et",
		rule(),
		"→ beta",
		"",
		"  + Create new: et",
	}
	if got := f.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("render =\n%q\nwant\n%q", got, want)
	}

	p.sel.Search = ""
	p.sel.Cursor = 2
	items, err = p.items()
	mustNoErr(t, err)
	f = NewFrame(nil, false)
	p.render(f, items)
	lines := f.Lines()
	if got := lines[len(lines)-1]; got != "→ + Create new: (enter name)" {
		t.Errorf("create row = %q", got)
	}
}

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cloneName  string
		hosts      []string
		wantAction Action
		wantPath   string
	}{
		{"plain", "widget", "", nil, ActionCreate, "/kamis/2026-03-07-widget"},
		{"whitespace", "my  big\tidea", "", nil, ActionCreate, "/kamis/2026-03-07-my-big-idea"},
		{"scp", "git@github.com:acme/widget.git", "", nil, ActionClone, "/kamis/2026-03-07-acme-widget"},
		{"https", "https://gitlab.com/acme/widget", "", nil, ActionClone, "/kamis/2026-03-07-acme-widget"},
		{"override", "https://github.com/acme/widget", "mine", nil, ActionClone, "/kamis/mine"},
		{"custom host", "https://git.corp/acme/tool", "", []string{"git.corp"}, ActionClone, "/kamis/2026-03-07-acme-tool"},
		{"unparsed remote", "widget.git", "", nil, ActionCreate, "/kamis/2026-03-07-widget.git"},
		{"traversal", "../../etc", "", nil, ActionCreate, "/kamis/2026-03-07-..-..-etc"},
		{"nested remote", "https://gitlab.com/grp/sub/repo.git", "", nil, ActionCreate, "/kamis/2026-03-07-https:-gitlab.com-grp-sub-repo.git"},
		{"override traversal", "https://github.com/acme/widget", "../../etc", nil, ActionClone, "/kamis/etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEntry("/kamis", tt.input, tt.cloneName, tt.hosts, testNow)
			mustNoErr(t, err)
			if got.Action != tt.wantAction {
				t.Errorf("Action = %v, want %v", got.Action, tt.wantAction)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}
