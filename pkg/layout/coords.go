package layout

import "sort"

// tabExtra is the number of display columns a tab adds beyond its own.
const tabExtra = TabWidth - 1

// Cursor is a display position relative to the first visible line.
type Cursor struct {
	Row    int
	Column int
}

// displayTab returns the display column where the i-th tab of the line
// starts.
func displayTab(l LineInfo, i int) int {
	return l.Tabs[i] + i*tabExtra
}

// RectifyColumn snaps a column that falls inside a tab's rendered span to
// the nearest edge of that span.
func RectifyColumn(l LineInfo, column int) int {
	for i := range l.Tabs {
		tab := displayTab(l, i)
		if column >= tab && column < tab+TabWidth/2 {
			return tab
		} else if column >= tab+TabWidth/2 && column < tab+TabWidth {
			return tab + TabWidth
		}
	}
	return column
}

// LineIndex returns the index of the line containing offset. Offsets past
// the last line start resolve to the last line.
func LineIndex(lines []LineInfo, offset int) int {
	i := sort.Search(len(lines), func(i int) bool { return lines[i].Start > offset })
	if i == 0 {
		return 0
	}
	return i - 1
}

// OffsetToCursor converts a buffer offset into a display position given
// the index of the first visible line. Rows above the viewport are negative.
func OffsetToCursor(lines []LineInfo, lineOffset, offset int) Cursor {
	idx := LineIndex(lines, offset)
	line := lines[idx]
	found := 0
	for _, tab := range line.Tabs {
		if line.Start+tab >= offset {
			break
		}
		found++
	}
	return Cursor{
		Row:    idx - lineOffset,
		Column: offset - line.Start + found*tabExtra,
	}
}

// ClampCursor returns the position the cursor actually occupies: the row
// limited to existing lines and the column limited to the line width and
// rectified.
func ClampCursor(lines []LineInfo, lineOffset int, c Cursor) Cursor {
	row := c.Row
	if lineOffset+row >= len(lines) {
		row = len(lines) - 1 - lineOffset
	}
	if lineOffset+row < 0 {
		row = -lineOffset
	}
	line := lines[lineOffset+row]
	col := c.Column
	if col > line.Width() {
		col = line.Width()
	}
	if col < 0 {
		col = 0
	}
	return Cursor{Row: row, Column: RectifyColumn(line, col)}
}

// CursorToOffset converts a display position back into a buffer offset.
// A column inside a tab span resolves to one of the tab's boundary offsets.
func CursorToOffset(lines []LineInfo, lineOffset int, c Cursor) int {
	c = ClampCursor(lines, lineOffset, c)
	line := lines[lineOffset+c.Row]
	for i, tab := range line.Tabs {
		col := c.Column - i*tabExtra
		if col < tab {
			return line.Start + col
		} else if col >= tab && col < tab+TabWidth/2 {
			return line.Start + tab
		} else if col >= tab+TabWidth/2 && col < tab+TabWidth {
			return line.Start + tab + 1
		}
	}
	return line.Start + c.Column - tabExtra*len(line.Tabs)
}
