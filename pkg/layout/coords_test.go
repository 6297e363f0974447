package layout

import (
	"testing"

	"example.com/codejournal/pkg/buffer"
)

func TestRectifyColumn(t *testing.T) {
	// "a\tb\tc": tabs at logical 1 and 3, display spans [1,5) and [6,10).
	line := LineInfo{Start: 0, Len: 5, Tabs: []int{1, 3}}
	cases := []struct {
		in, want int
	}{
		{0, 0},
		{1, 1}, {2, 1},
		{3, 5}, {4, 5},
		{5, 5},
		{6, 6}, {7, 6},
		{8, 10}, {9, 10},
		{10, 10},
	}
	for _, c := range cases {
		got := RectifyColumn(line, c.in)
		if got != c.want {
			t.Fatalf("RectifyColumn(%d) = %d, want %d", c.in, got, c.want)
		}
		if again := RectifyColumn(line, got); again != got {
			t.Fatalf("RectifyColumn not idempotent at %d: %d -> %d", c.in, got, again)
		}
	}
}

func TestRectifyColumn_AdjacentTabs(t *testing.T) {
	line := LineInfo{Start: 0, Len: 2, Tabs: []int{0, 1}}
	for col := 0; col <= line.Width(); col++ {
		got := RectifyColumn(line, col)
		if got != 0 && got != 4 && got != 8 {
			t.Fatalf("column %d rectified to %d, expected a tab boundary", col, got)
		}
		if RectifyColumn(line, got) != got {
			t.Fatalf("column %d not stable after rectification", col)
		}
	}
}

func TestOffsetCursorRoundTrip(t *testing.T) {
	g := buffer.NewFromString("ab\tcd\t\tef\nsecond line with\ttab\n\tlead")
	lines := Build(g, 12)
	for off := 0; off <= g.Len(); off++ {
		c := OffsetToCursor(lines, 0, off)
		line := lines[c.Row]
		if RectifyColumn(line, c.Column) != c.Column {
			t.Fatalf("offset %d mapped inside a tab span: %+v", off, c)
		}
		if back := CursorToOffset(lines, 0, c); back != off {
			t.Fatalf("offset %d -> %+v -> %d", off, c, back)
		}
	}
}

func TestCursorToOffset_InsideTabSpan(t *testing.T) {
	g := buffer.NewFromString("a\tb")
	lines := Build(g, 20)
	// tab occupies display columns [1,5)
	cases := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 2, 6: 3}
	for col, want := range cases {
		got := CursorToOffset(lines, 0, Cursor{Row: 0, Column: col})
		if got != want {
			t.Fatalf("column %d -> offset %d, want %d", col, got, want)
		}
	}
}

func TestCursorToOffset_Clamps(t *testing.T) {
	g := buffer.NewFromString("abc\nde")
	lines := Build(g, 20)
	if got := CursorToOffset(lines, 0, Cursor{Row: 0, Column: 50}); got != 3 {
		t.Fatalf("expected column clamp to end of line (3), got %d", got)
	}
	if got := CursorToOffset(lines, 0, Cursor{Row: 9, Column: 1}); got != 5 {
		t.Fatalf("expected row clamp to last line (5), got %d", got)
	}
	if got := CursorToOffset(lines, 0, Cursor{Row: -2, Column: -1}); got != 0 {
		t.Fatalf("expected clamp to origin, got %d", got)
	}
}

func TestOffsetToCursor_RespectsLineOffset(t *testing.T) {
	g := buffer.NewFromString("one\ntwo\nthree")
	lines := Build(g, 20)
	c := OffsetToCursor(lines, 1, 9)
	if c.Row != 1 || c.Column != 1 {
		t.Fatalf("expected row 1 col 1, got %+v", c)
	}
	c = OffsetToCursor(lines, 2, 1)
	if c.Row != -2 {
		t.Fatalf("expected negative row above viewport, got %+v", c)
	}
}

func TestLineIndex(t *testing.T) {
	lines := []LineInfo{{Start: 0, Len: 3}, {Start: 4, Len: 2}, {Start: 7}}
	cases := map[int]int{0: 0, 3: 0, 4: 1, 6: 1, 7: 2, 99: 2}
	for off, want := range cases {
		if got := LineIndex(lines, off); got != want {
			t.Fatalf("LineIndex(%d) = %d, want %d", off, got, want)
		}
	}
}
