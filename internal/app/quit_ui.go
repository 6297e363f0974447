package app

import (
	"github.com/gdamore/tcell/v2"

	"example.com/codejournal/pkg/editor"
)

// runQuitPrompt asks for confirmation in the bottom border when the journal
// is dirty. It returns true if the user confirms quit.
func (r *Runner) runQuitPrompt() bool {
	if r.Screen == nil {
		return true
	}
	r.showMessage("Unsaved changes. Quit without saving? (y/n)")
	defer r.showMessage("")
	for {
		switch ev := r.waitEvent().(type) {
		case nil:
			return true
		case *tcell.EventKey:
			if r.isCancelKey(ev) || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N')) {
				return false
			}
			if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
				return true
			}
		case *tcell.EventResize:
			r.handleResize(ev)
		}
	}
}

// showMessage replaces the bottom border prompt.
func (r *Runner) showMessage(msg string) {
	r.Prompt = msg
	r.draw(editor.DamageFrame | editor.DamageCursor)
}
