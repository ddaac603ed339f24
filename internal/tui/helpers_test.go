package tui

import (
	"bytes"
	"io"
	"testing"
)

// burstSource replays input in bursts. Bytes of the current burst are
// immediately available; later bursts only arrive on a blocking read.
type burstSource struct {
	bursts [][]byte
}

func keys(bursts ...string) *burstSource {
	s := &burstSource{}
	for _, b := range bursts {
		s.bursts = append(s.bursts, []byte(b))
	}
	return s
}

func (s *burstSource) ReadByte() (byte, error) {
	for len(s.bursts) > 0 && len(s.bursts[0]) == 0 {
		s.bursts = s.bursts[1:]
	}
	if len(s.bursts) == 0 {
		return 0, io.EOF
	}
	b := s.bursts[0][0]
	s.bursts[0] = s.bursts[0][1:]
	return b, nil
}

func (s *burstSource) ReadPending(n int) ([]byte, bool) {
	if len(s.bursts) == 0 || len(s.bursts[0]) == 0 {
		return nil, false
	}
	n = min(n, len(s.bursts[0]))
	data := s.bursts[0][:n]
	s.bursts[0] = s.bursts[0][n:]
	return data, true
}

type fakeMode struct {
	raw      int
	restores int
	rawErr   error
}

func (m *fakeMode) Raw() error {
	m.raw++
	return m.rawErr
}

func (m *fakeMode) Restore() error {
	m.restores++
	return nil
}

// fakeTerminal drives a controller without a session around it.
type fakeTerminal struct {
	frame   *Frame
	keys    *KeyReader
	prompt  string
	answer  string
	prompts int
}

func newFakeTerminal(src ByteSource) *fakeTerminal {
	return &fakeTerminal{
		frame: NewFrame(&bytes.Buffer{}, false),
		keys:  NewKeyReader(src),
	}
}

func (t *fakeTerminal) Frame() *Frame         { return t.frame }
func (t *fakeTerminal) ReadKey() (Key, error) { return t.keys.ReadKey() }

func (t *fakeTerminal) PromptLine(prompt string) (string, error) {
	t.prompts++
	t.prompt = prompt
	return t.answer, nil
}

func staticItems(names ...string) ItemsFunc {
	return func() ([]Item, error) {
		items := make([]Item, len(names))
		for i, n := range names {
			items[i] = Item{Name: n, Path: "/kamis/" + n}
		}
		return items, nil
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
