package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"example.com/codejournal/pkg/config"
	"example.com/codejournal/pkg/editor"
)

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	r.init()
	if r.Prompt != "" {
		r.Prompt = ""
		r.draw(editor.DamageFrame | editor.DamageCursor)
	}
	if r.matchCommand(ev, "quit") {
		if r.Dirty && !r.runQuitPrompt() {
			return false
		}
		return true
	}
	if r.matchCommand(ev, "save") {
		r.saveWithFeedback()
		return false
	}
	cmd, ok := commandFor(ev)
	if !ok {
		return false
	}
	r.apply(cmd)
	return false
}

// commandFor translates a key into an editor command. Keys carrying Ctrl or
// Alt that are not bound to a runner action are ignored.
func commandFor(ev *tcell.EventKey) (editor.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return editor.Move(editor.Left, 1), true
	case tcell.KeyDown:
		return editor.Move(editor.Down, 1), true
	case tcell.KeyUp:
		return editor.Move(editor.Up, 1), true
	case tcell.KeyRight:
		return editor.Move(editor.Right, 1), true
	case tcell.KeyEnter:
		return editor.Insert('\n'), true
	case tcell.KeyTab:
		return editor.Insert('\t'), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Delete(), true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return editor.Command{}, false
		}
		return editor.Insert(ev.Rune()), true
	}
	return editor.Command{}, false
}

func (r *Runner) matchCommand(ev *tcell.EventKey, name string) bool {
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	kb, ok := r.Keymap[name]
	if !ok {
		return false
	}
	return kb.Matches(ev)
}

func (r *Runner) isCancelKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC
}

// saveWithFeedback saves and reports the outcome in the bottom border.
func (r *Runner) saveWithFeedback() {
	err := r.Save()
	switch {
	case errors.Is(err, ErrNoFile):
		r.showMessage("No file name. Start the journal with a path to save.")
	case err != nil:
		r.Logger.Event("save.error", map[string]any{"file": r.FilePath, "error": err.Error()})
		r.showMessage("Save failed: " + err.Error())
	default:
		r.showMessage("Saved " + r.FilePath)
	}
}
