package tui

// Selection is the mutable state of a list controller. Cursor ranges over
// 0..count inclusive, where count is the number of listed rows after the
// first; the last position is the trailing action row.
type Selection struct {
	Search string
	Cursor int
}

// MoveUp moves the cursor one row up, stopping at the top.
func (s *Selection) MoveUp() {
	s.Cursor = max(s.Cursor-1, 0)
}

// MoveDown moves the cursor one row down, stopping at count.
func (s *Selection) MoveDown(count int) {
	s.Cursor = min(s.Cursor+1, count)
}

// Type appends ch to the search term and returns the cursor to the top.
func (s *Selection) Type(ch byte) {
	s.Search += string(ch)
	s.Cursor = 0
}

// Erase drops the last search character and returns the cursor to the top.
func (s *Selection) Erase() {
	if s.Search != "" {
		s.Search = s.Search[:len(s.Search)-1]
	}
	s.Cursor = 0
}

// Clamp pulls the cursor back into 0..count after the list changed size.
func (s *Selection) Clamp(count int) {
	s.Cursor = min(max(s.Cursor, 0), count)
}

func marker(selected bool) string {
	if selected {
		return "→ "
	}
	return "  "
}

func rule() string {
	return "{dim}────────────────────────────────────────{reset}"
}
