package editor

import "example.com/codejournal/pkg/layout"

// ensureVisible scrolls so the cursor's line is inside the visible rows.
// A cursor below the band lands on the last interior row, leaving the final
// row as a scroll margin.
func (e *Editor) ensureVisible() Damage {
	rows := e.area.Rows
	switch {
	case e.cursor.Row >= rows:
		target := max(rows-2, 0)
		e.lineOffset += e.cursor.Row - target
		e.cursor.Row = target
	case e.cursor.Row < 0:
		e.lineOffset += e.cursor.Row
		e.cursor.Row = 0
	default:
		return DamageNone
	}
	return DamageLines
}

// Navigate moves the cursor n steps in direction d.
func (e *Editor) Navigate(d Direction, n int) Damage {
	if n < 1 {
		n = 1
	}
	dmg := DamageCursor
	for i := 0; i < n; i++ {
		dmg |= e.step(d)
	}
	e.event("move", map[string]any{"direction": d.String(), "magnitude": n})
	return dmg
}

func (e *Editor) step(d Direction) Damage {
	switch d {
	case Left:
		if off := e.Offset(); off > 0 {
			e.remap(off - 1)
			return e.ensureVisible()
		}
	case Right:
		if off := e.Offset(); off < e.buf.Len() {
			e.remap(off + 1)
			return e.ensureVisible()
		}
	case Up:
		dmg := DamageNone
		if e.cursor.Row > 0 {
			e.cursor.Row--
		} else if e.lineOffset > 0 {
			e.lineOffset--
			dmg = DamageLines
		}
		e.aimColumn()
		return dmg
	case Down:
		dmg := DamageNone
		limit := min(e.area.Rows, len(e.lines)-e.lineOffset)
		if e.cursor.Row+1 >= limit {
			if e.lineOffset+e.area.Rows < len(e.lines) {
				e.lineOffset++
				dmg = DamageLines
			}
			e.cursor.Row = limit - 1
		} else {
			e.cursor.Row++
		}
		e.aimColumn()
		return dmg
	}
	return DamageNone
}

// aimColumn puts the cursor on the goal column of its current line, clamped
// to the line and snapped out of tab spans.
func (e *Editor) aimColumn() {
	e.cursor = layout.ClampCursor(e.lines, e.lineOffset, layout.Cursor{Row: e.cursor.Row, Column: e.goal})
}
