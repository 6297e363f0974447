package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"example.com/codejournal/pkg/editor"
)

// TestRunner_LargeFilePerformance simulates rendering and key handling on a
// large journal and records the throughput to catch regressions with long
// files.
func TestRunner_LargeFilePerformance(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("This is a line in a very large file used for\tperformance testing.\n")
	}
	path := filepath.Join(t.TempDir(), "large.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := New(nil)
	r.Screen = s
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	r.apply(editor.Resize(screenDims(s.Size())))

	const frameCount = 10
	start := time.Now()
	for i := 0; i < frameCount; i++ {
		r.draw(editor.DamageAll)
	}
	dur := time.Since(start)
	fps := float64(frameCount) / dur.Seconds()
	t.Logf("draw FPS on large file: %.2f", fps)
	if fps < 20 {
		t.Fatalf("draw FPS too low: %.2f", fps)
	}

	// Typing rebuilds the line map for the whole document.
	const events = 20
	start = time.Now()
	for i := 0; i < events; i++ {
		r.handleKeyEvent(key(tcell.KeyUp))
		r.handleKeyEvent(runeKey('x'))
	}
	dur = time.Since(start)
	eps := float64(2*events) / dur.Seconds()
	t.Logf("key events per second on large file: %.2f", eps)
	if eps < 5 {
		t.Fatalf("key handling rate too low: %.2f", eps)
	}
}
