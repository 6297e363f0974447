package app

import "example.com/codejournal/pkg/editor"

// apply hands cmd to the editor, tracks unsaved changes and repaints what
// the editor reports as damaged.
func (r *Runner) apply(cmd editor.Command) editor.Damage {
	r.init()
	d := r.Editor.Handle(cmd)
	switch cmd.Kind {
	case editor.KindInsert, editor.KindDelete:
		if d.Has(editor.DamageLines) {
			r.Dirty = true
		}
	}
	r.draw(d)
	return d
}
