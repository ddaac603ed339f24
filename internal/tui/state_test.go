package tui

import "testing"

func TestSelection_CursorClamp(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		var s Selection
		for i := 0; i < n+5; i++ {
			s.MoveDown(n)
		}
		if s.Cursor != n {
			t.Errorf("n=%d: cursor after %d downs = %d, want %d", n, n+5, s.Cursor, n)
		}
		for i := 0; i < n+5; i++ {
			s.MoveUp()
		}
		if s.Cursor != 0 {
			t.Errorf("n=%d: cursor after %d ups = %d, want 0", n, n+5, s.Cursor)
		}
	}
}

func TestSelection_SearchResetsCursor(t *testing.T) {
	tests := []struct {
		name   string
		search string
		apply  func(*Selection)
		want   string
	}{
		{"type", "wi", func(s *Selection) { s.Type('d') }, "wid"},
		{"erase", "wid", func(s *Selection) { s.Erase() }, "wi"},
		{"erase empty", "", func(s *Selection) { s.Erase() }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Selection{Search: tt.search, Cursor: 4}
			tt.apply(&s)
			if s.Cursor != 0 {
				t.Errorf("cursor = %d, want 0", s.Cursor)
			}
			if s.Search != tt.want {
				t.Errorf("search = %q, want %q", s.Search, tt.want)
			}
		})
	}
}

func TestSelection_Clamp(t *testing.T) {
	tests := []struct {
		cursor, count, want int
	}{
		{5, 2, 2},
		{-1, 2, 0},
		{1, 2, 1},
		{3, 0, 0},
	}

	for _, tt := range tests {
		s := Selection{Cursor: tt.cursor}
		s.Clamp(tt.count)
		if s.Cursor != tt.want {
			t.Errorf("Clamp(%d) from %d = %d, want %d", tt.count, tt.cursor, s.Cursor, tt.want)
		}
	}
}
