package app

import (
	"github.com/gdamore/tcell/v2"

	"example.com/codejournal/pkg/config"
	"example.com/codejournal/pkg/editor"
	"example.com/codejournal/pkg/layout"
)

// BottomMarker is drawn in the bottom border below the text area.
const BottomMarker = "==="

// draw repaints the parts of the screen named by d.
func (r *Runner) draw(d editor.Damage) {
	if r.Screen == nil || r.Editor == nil {
		return
	}
	renderView(r.Screen, r.Editor.View(), r.Theme, r.Prompt, d)
}

// renderView draws v onto s. The frame fill covers the text area, so frame
// damage always repaints the lines as well.
func renderView(s tcell.Screen, v editor.View, th config.Theme, prompt string, d editor.Damage) {
	if d == editor.DamageNone {
		return
	}
	if d.Has(editor.DamageFrame) {
		drawFrame(s, v, th, prompt)
		d |= editor.DamageLines
	}
	if d.Has(editor.DamageLines) {
		drawLines(s, v, th)
	}
	s.ShowCursor(v.Inner.Col+v.Cursor.Column, v.Inner.Row+v.Cursor.Row)
	s.Show()
}

func fill(s tcell.Screen, x, y, w int, style tcell.Style) {
	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// putString draws str from (x, y), stopping at limit columns. It returns
// the number of columns used.
func putString(s tcell.Screen, x, y, limit int, str string, style tcell.Style) int {
	n := 0
	for _, ch := range str {
		if n >= limit {
			break
		}
		s.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}

// drawFrame paints the outer rectangle, the title in the top border and the
// marker and prompt in the bottom border.
func drawFrame(s tcell.Screen, v editor.View, th config.Theme, prompt string) {
	style := tcell.StyleDefault.Background(th.Background).Foreground(th.Frame)
	for y := 0; y < v.Outer.Rows; y++ {
		fill(s, v.Outer.Col, v.Outer.Row+y, v.Outer.Cols, style)
	}
	room := v.Outer.Col + v.Outer.Cols - v.Inner.Col
	putString(s, v.Inner.Col, v.Outer.Row, room, v.Title, style)

	bottom := v.Outer.Row + v.Outer.Rows - 1
	n := putString(s, v.Inner.Col, bottom, room, BottomMarker, style)
	if prompt != "" && n+1 < room {
		promptStyle := style.Foreground(th.Prompt)
		putString(s, v.Inner.Col+n+1, bottom, room-n-1, prompt, promptStyle)
	}
}

// drawLines clears the text area and draws the visible lines with each tab
// expanded to its display width.
func drawLines(s tcell.Screen, v editor.View, th config.Theme) {
	style := tcell.StyleDefault.Background(th.Background).Foreground(th.Text)
	for i := 0; i < v.Inner.Rows; i++ {
		y := v.Inner.Row + i
		fill(s, v.Inner.Col, y, v.Inner.Cols, style)
		if i >= len(v.Lines) {
			continue
		}
		x := 0
		for _, ch := range v.Lines[i] {
			if ch == '\t' {
				x += layout.TabWidth
				continue
			}
			s.SetContent(v.Inner.Col+x, y, ch, nil, style)
			x++
		}
	}
}
