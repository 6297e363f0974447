package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"example.com/codejournal/pkg/config"
	"example.com/codejournal/pkg/editor"
	"example.com/codejournal/pkg/logs"
)

// DefaultPollTimeout bounds each wait for input. An expired wait is an idle
// tick and changes nothing.
const DefaultPollTimeout = 500 * time.Millisecond

// Used until the first resize reports the real terminal size.
const (
	defaultRows = 24
	defaultCols = 80
)

// ErrNoFile is returned by Save when the journal was started without a path.
var ErrNoFile = errors.New("no file to save to")

// Runner owns the terminal lifecycle and the event loop around an editor.
type Runner struct {
	Screen      tcell.Screen
	FilePath    string
	Editor      *editor.Editor
	Dirty       bool
	Logger      *logs.Logger
	Config      *config.Config
	Keymap      map[string]config.Keybinding
	Theme       config.Theme
	Prompt      string // shown in the bottom border until the next key
	PollTimeout time.Duration

	events <-chan tcell.Event
	done   chan struct{}
	ready  bool
}

// logSink forwards editor diagnostics to whatever logger the runner holds
// at the time of the event.
type logSink struct{ r *Runner }

func (s logSink) Event(event string, fields map[string]any) {
	s.r.Logger.Event(event, fields)
}

// New creates a Runner with an empty journal configured by cfg. A nil cfg
// uses the defaults.
func New(cfg *config.Config) *Runner {
	r := &Runner{Config: cfg}
	r.init()
	return r
}

// init fills in anything a zero Runner is missing.
func (r *Runner) init() {
	if r.ready {
		return
	}
	r.ready = true
	if r.Config == nil {
		r.Config = config.Default()
	}
	if r.Keymap == nil {
		r.Keymap = r.Config.Keymap
	}
	if r.Theme == (config.Theme{}) {
		r.Theme = r.Config.Theme
	}
	if r.PollTimeout <= 0 {
		r.PollTimeout = DefaultPollTimeout
	}
	if r.Editor == nil {
		r.Editor = editor.New(r.Config.NewBuffer(), screenDims(defaultCols, defaultRows), editor.Options{
			Title: r.Config.Title,
			Sink:  logSink{r},
		})
	}
}

func screenDims(w, h int) editor.Dimensions {
	return editor.Dimensions{Rows: h, Cols: w}
}

// LoadFile loads a file into the journal, replacing its contents.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.init()
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	data, err := os.ReadFile(path)
	if err != nil {
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return fmt.Errorf("opening %s: %w", path, err)
	}
	r.FilePath = path
	// Normalize CRLF to LF for internal buffer storage
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	buf := r.Config.NewBuffer()
	for _, ch := range normalized {
		buf.Insert(ch)
	}
	d := r.Editor.Reset(buf)
	r.Dirty = false
	r.Logger.Event("open.success", map[string]any{"file": path, "bytes": len(data), "runes": buf.Len()})
	r.draw(d)
	return nil
}

// Save writes the journal to FilePath and clears Dirty.
func (r *Runner) Save() error {
	r.init()
	if r.FilePath == "" {
		return ErrNoFile
	}
	data := []byte(r.Editor.Text())
	if err := os.WriteFile(r.FilePath, data, 0644); err != nil {
		return fmt.Errorf("saving %s: %w", r.FilePath, err)
	}
	r.Dirty = false
	r.Logger.Event("save", map[string]any{"file": r.FilePath, "bytes": len(data)})
	return nil
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the user requests quit.
func (r *Runner) Run() error {
	r.init()
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	r.Logger.Event("run.start", map[string]any{"file": r.FilePath})
	defer r.Logger.Event("run.end", map[string]any{"file": r.FilePath})

	r.draw(r.Editor.Resize(screenDims(r.Screen.Size())))

	r.done = make(chan struct{})
	defer close(r.done)
	r.events = r.pollEvents()
	defer func() { r.events = nil }()

	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return nil
			}
			if r.handleEvent(ev) {
				r.Logger.Event("action", map[string]any{"name": "quit"})
				return nil
			}
		case <-time.After(r.PollTimeout):
		}
	}
}

// pollEvents feeds screen events into a channel until the screen is
// finalized or Run returns.
func (r *Runner) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	s, done := r.Screen, r.done
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// waitEvent blocks for the next event, reading from the running loop's
// channel when there is one. It returns nil when no more events will come.
func (r *Runner) waitEvent() tcell.Event {
	if r.events != nil {
		ev, ok := <-r.events
		if !ok {
			return nil
		}
		return ev
	}
	if r.Screen == nil {
		return nil
	}
	return r.Screen.PollEvent()
}

// handleEvent dispatches one event and reports whether to quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.Logger.Event("key", map[string]any{
			"type":      "EventKey",
			"key":       int(ev.Key()),
			"rune":      string(ev.Rune()),
			"modifiers": int(ev.Modifiers()),
		})
		return r.handleKeyEvent(ev)
	case *tcell.EventResize:
		r.handleResize(ev)
	}
	return false
}

func (r *Runner) handleResize(ev *tcell.EventResize) {
	if r.Screen != nil {
		r.Screen.Sync()
	}
	w, h := ev.Size()
	r.apply(editor.Resize(screenDims(w, h)))
}
