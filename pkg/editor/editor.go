// Package editor sequences edits, navigation and resizes over a gap buffer
// and keeps the line map, viewport and cursor consistent with each other.
package editor

import (
	"example.com/codejournal/pkg/buffer"
	"example.com/codejournal/pkg/layout"
)

// DefaultTitle is drawn in the frame when no title is configured.
const DefaultTitle = "[Code Journal]"

// Sink receives diagnostic events. It is never consulted for control flow.
type Sink interface {
	Event(event string, fields map[string]any)
}

// Options configures a new Editor.
type Options struct {
	Title string
	Sink  Sink
}

// Editor owns the buffer and every piece of state derived from it.
type Editor struct {
	buf        *buffer.GapBuffer
	lines      []layout.LineInfo
	outer      Dimensions
	area       Dimensions
	lineOffset int
	cursor     layout.Cursor
	goal       int // column vertical moves aim for
	title      string
	sink       Sink
}

// New creates an Editor over buf laid out inside outer. A nil buf starts an
// empty journal.
func New(buf *buffer.GapBuffer, outer Dimensions, opts Options) *Editor {
	if buf == nil {
		buf = buffer.New()
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	e := &Editor{
		buf:   buf,
		outer: outer,
		area:  outer.Interior(),
		title: title,
		sink:  opts.Sink,
	}
	e.rebuild()
	return e
}

// Handle applies a single command and reports what needs repainting.
func (e *Editor) Handle(cmd Command) Damage {
	switch cmd.Kind {
	case KindInsert:
		return e.Insert(cmd.Char)
	case KindDelete:
		return e.Delete()
	case KindMove:
		return e.Navigate(cmd.Direction, cmd.Magnitude)
	case KindResize:
		return e.Resize(cmd.Dims)
	}
	return DamageNone
}

// Insert adds ch at the cursor and moves the cursor past it.
func (e *Editor) Insert(ch rune) Damage {
	off := e.Offset()
	e.buf.MoveWindow(off)
	e.buf.Insert(ch)
	e.rebuild()
	e.remap(off + 1)

	limit := min(e.area.Rows, len(e.lines))
	if e.cursor.Row == limit && e.lineOffset+e.area.Rows < len(e.lines) {
		e.cursor.Row--
		e.lineOffset++
	}
	d := DamageLines | DamageCursor | e.ensureVisible()
	e.event("insert", map[string]any{"rune": string(ch), "offset": off})
	return d
}

// Delete removes the rune before the cursor. It does nothing at the start
// of the buffer.
func (e *Editor) Delete() Damage {
	off := e.Offset()
	if off == 0 {
		return DamageNone
	}
	e.buf.MoveWindow(off)
	e.buf.Delete()
	e.rebuild()

	if e.lineOffset > 0 && len(e.lines)-e.lineOffset < e.area.Rows {
		e.lineOffset--
	}
	e.remap(off - 1)
	d := DamageLines | DamageCursor | e.ensureVisible()
	e.event("delete", map[string]any{"offset": off})
	return d
}

// Resize lays the document out for new outer dimensions, keeping the
// cursor on the same buffer offset.
func (e *Editor) Resize(outer Dimensions) Damage {
	off := e.Offset()
	e.outer = outer
	e.area = outer.Interior()
	e.rebuild()

	if e.lineOffset > 0 && len(e.lines)-e.lineOffset < e.area.Rows {
		e.lineOffset = max(0, len(e.lines)-e.area.Rows)
	}
	e.remap(off)
	e.ensureVisible()
	e.event("resize", map[string]any{"rows": outer.Rows, "cols": outer.Cols, "lines": len(e.lines)})
	return DamageAll
}

// Reset replaces the buffer, placing the cursor at the end of the new
// content.
func (e *Editor) Reset(buf *buffer.GapBuffer) Damage {
	if buf == nil {
		buf = buffer.New()
	}
	e.buf = buf
	e.lineOffset = 0
	e.cursor = layout.Cursor{}
	e.rebuild()
	e.remap(buf.Len())
	e.ensureVisible()
	e.event("reset", map[string]any{"len": buf.Len()})
	return DamageAll
}

// Offset returns the buffer offset under the cursor.
func (e *Editor) Offset() int {
	return layout.CursorToOffset(e.lines, e.lineOffset, e.cursor)
}

// Cursor returns the cursor position relative to the first visible line.
func (e *Editor) Cursor() layout.Cursor { return e.cursor }

// LineOffset returns the index of the first visible line.
func (e *Editor) LineOffset() int { return e.lineOffset }

// Lines returns the current line map. Callers must not modify it.
func (e *Editor) Lines() []layout.LineInfo { return e.lines }

// Len returns the number of runes in the document.
func (e *Editor) Len() int { return e.buf.Len() }

// Text returns the whole document.
func (e *Editor) Text() string { return e.buf.String() }

// Area returns the interior editing rectangle.
func (e *Editor) Area() Dimensions { return e.area }

// View is a read-only snapshot for the rendering adapter.
type View struct {
	Title      string
	Outer      Dimensions
	Inner      Dimensions
	LineOffset int
	Lines      []string // visible lines with tabs unexpanded
	Cursor     layout.Cursor
}

// View returns the visible part of the document.
func (e *Editor) View() View {
	v := View{
		Title:      e.title,
		Outer:      e.outer,
		Inner:      e.area,
		LineOffset: e.lineOffset,
		Cursor:     e.cursor,
	}
	for i := 0; i < e.area.Rows && e.lineOffset+i < len(e.lines); i++ {
		l := e.lines[e.lineOffset+i]
		v.Lines = append(v.Lines, string(e.buf.Slice(l.Start, l.End())))
	}
	return v
}

func (e *Editor) rebuild() {
	e.lines = layout.Build(e.buf, e.area.Cols)
}

// remap places the cursor on offset under the current line offset.
func (e *Editor) remap(offset int) {
	e.cursor = layout.OffsetToCursor(e.lines, e.lineOffset, offset)
	e.goal = e.cursor.Column
}

func (e *Editor) event(name string, fields map[string]any) {
	if e.sink == nil {
		return
	}
	fields["row"] = e.cursor.Row
	fields["column"] = e.cursor.Column
	fields["line_offset"] = e.lineOffset
	fields["buffer_len"] = e.buf.Len()
	e.sink.Event(name, fields)
}
