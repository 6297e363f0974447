package logs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultFile is used when logging is enabled without an explicit path.
const DefaultFile = "journal.log"

// Logger writes JSON lines with a timestamp and event fields. The file is
// opened on the first event.
type Logger struct {
	mu      sync.Mutex
	path    string
	w       *bufio.Writer
	f       *os.File
	enabled bool
}

// New returns a logger appending to path. An empty path returns a disabled
// logger.
func New(path string) *Logger {
	if path == "" {
		return &Logger{}
	}
	return &Logger{path: path, enabled: true}
}

// NewFromEnv returns a logger if JOURNAL_LOG is set to a truthy value
// or if JOURNAL_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./journal.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("JOURNAL_LOG_FILE")
	enabled := false
	if v := os.Getenv("JOURNAL_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return &Logger{}
	}
	if lf == "" {
		lf = filepath.Join(".", DefaultFile)
	}
	return New(lf)
}

// Enabled reports whether events are being written.
func (l *Logger) Enabled() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// open must be called with l.mu held.
func (l *Logger) open() bool {
	if l.w != nil {
		return true
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		l.enabled = false
		return false
	}
	l.f = f
	l.w = bufio.NewWriter(f)
	return true
}

// Close flushes and closes the underlying file if it was opened.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return
	}
	_ = l.w.Flush()
	_ = l.f.Close()
	l.w, l.f = nil, nil
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, offset, row, column, line_offset, buffer_len.
func (l *Logger) Event(event string, fields map[string]any) {
	if l == nil {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || !l.open() {
		return
	}
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}

// Message records a free-text diagnostic line.
func (l *Logger) Message(msg string) {
	l.Event("message", map[string]any{"text": msg})
}
