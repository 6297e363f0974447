// Package layout segments buffer content into display lines and maps between
// buffer offsets and display positions.
package layout

import "example.com/codejournal/pkg/buffer"

// TabWidth is the number of display columns a tab occupies.
const TabWidth = 4

// LineInfo describes one display line of the line map.
type LineInfo struct {
	Start int   // logical offset of the first rune
	Len   int   // runes in the line, excluding a trailing newline or wrap space
	Tabs  []int // line-relative offsets of tabs, ascending
}

// Chunk is the result of a single wrap decision.
type Chunk struct {
	Len       int
	EndOfLine bool // stopped at a newline
	Separator bool // stopped at a space absorbed as the wrap point
	Tabs      []int
}

// consumed reports how many runes the chunk covers including any newline or
// separator that ended it.
func (c Chunk) consumed() int {
	if c.EndOfLine || c.Separator {
		return c.Len + 1
	}
	return c.Len
}

// Segment reads runes from start spending at most limit display columns and
// decides where the display line ends.
func Segment(src buffer.Reader, start, limit int) Chunk {
	if limit < 1 {
		limit = 1
	}
	lastSpace := -1
	var tabs []int
	i := start
	budget := limit
	for budget > 0 {
		ch, err := src.Get(i)
		if err != nil {
			return Chunk{Len: i - start, Tabs: tabs}
		}
		switch ch {
		case '\n':
			return Chunk{Len: i - start, EndOfLine: true, Tabs: tabs}
		case '\t':
			if budget < TabWidth && i > start {
				return Chunk{Len: i - start, Tabs: tabs}
			}
			tabs = append(tabs, i-start)
			budget -= TabWidth
			i++
			continue
		case ' ':
			lastSpace = i
		}
		i++
		budget--
	}

	if i >= src.Len() {
		return Chunk{Len: i - start, Tabs: tabs}
	}
	next, _ := src.Get(i)
	switch next {
	case '\n':
		return Chunk{Len: i - start, EndOfLine: true, Tabs: tabs}
	case ' ':
		return Chunk{Len: i - start, Separator: true, Tabs: tabs}
	}

	// Word-wrap back to the last space only while at least two runes remain.
	last, _ := src.Get(i - 1)
	if i < src.Len()-1 && last != ' ' && lastSpace >= start {
		n := lastSpace - start + 1
		return Chunk{Len: n, Tabs: tabsBefore(tabs, n)}
	}
	return Chunk{Len: i - start, Tabs: tabs}
}

func tabsBefore(tabs []int, n int) []int {
	for k, t := range tabs {
		if t >= n {
			return tabs[:k]
		}
	}
	return tabs
}

// Build segments the whole buffer into display lines of at most limit
// columns. The result always has at least one line.
func Build(src buffer.Reader, limit int) []LineInfo {
	var lines []LineInfo
	index := 0
	for index < src.Len() {
		c := Segment(src, index, limit)
		lines = append(lines, LineInfo{Start: index, Len: c.Len, Tabs: c.Tabs})
		index += c.consumed()
		if (c.EndOfLine || c.Separator) && index >= src.Len() {
			lines = append(lines, LineInfo{Start: index})
		}
	}
	if len(lines) == 0 {
		lines = append(lines, LineInfo{Start: 0})
	}
	return lines
}

// Width returns the rendered width of the line in display columns.
func (l LineInfo) Width() int {
	return l.Len + len(l.Tabs)*(TabWidth-1)
}

// End returns the logical offset one past the line's last rune.
func (l LineInfo) End() int {
	return l.Start + l.Len
}
