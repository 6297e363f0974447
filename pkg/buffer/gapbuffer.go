package buffer

import (
	"errors"
	"fmt"
)

// Default sizing used by New.
const (
	DefaultCapacity   = 1200
	DefaultWindowSize = 100
)

// ErrOutOfRange is returned when a logical offset is at or beyond Len().
var ErrOutOfRange = errors.New("offset out of range")

// Window is the unused run of slots inside the buffer. Inserts and deletes
// happen at Window.Index.
type Window struct {
	Index int
	Size  int
}

// GapBuffer is a gap buffer for runes. The backing slice holds size live
// runes: logical offsets [0, window.Index) sit before the window and
// [window.Index, size) sit after it, shifted by window.Size.
type GapBuffer struct {
	buf        []rune
	window     Window
	windowSize int
	size       int
}

// New creates an empty GapBuffer with the default capacity and window size.
func New() *GapBuffer {
	return NewWithWindow(DefaultCapacity, DefaultWindowSize)
}

// NewWithWindow creates an empty GapBuffer. windowSize is the size the
// window is reopened to whenever inserts drain it.
func NewWithWindow(capacity, windowSize int) *GapBuffer {
	if windowSize < 1 {
		windowSize = 1
	}
	if capacity <= windowSize {
		capacity = windowSize * 2
	}
	return &GapBuffer{
		buf:        make([]rune, capacity),
		window:     Window{Index: 0, Size: windowSize},
		windowSize: windowSize,
	}
}

// NewFromString initializes a GapBuffer with the provided text.
func NewFromString(s string) *GapBuffer {
	g := New()
	for _, r := range s {
		g.Insert(r)
	}
	return g
}

// grow doubles the backing slice. The physical layout, window included, is
// preserved.
func (g *GapBuffer) grow() {
	next := make([]rune, 2*len(g.buf))
	copy(next, g.buf)
	g.buf = next
}

// reopen restores a full window at the current edit point once inserts
// have drained it to zero.
func (g *GapBuffer) reopen() {
	if len(g.buf) <= g.size+g.windowSize {
		g.grow()
	}
	idx := g.window.Index
	copy(g.buf[idx+g.windowSize:], g.buf[idx:g.size])
	g.window.Size = g.windowSize
}

// Insert writes ch at the edit point and advances it by one.
func (g *GapBuffer) Insert(ch rune) {
	if len(g.buf) <= g.size+g.window.Size {
		g.grow()
	}
	g.buf[g.window.Index] = ch
	g.window.Index++
	g.window.Size--
	g.size++
	if g.window.Size == 0 {
		g.reopen()
	}
}

// Delete removes the rune immediately before the edit point. It is a no-op
// at the start of the buffer.
func (g *GapBuffer) Delete() {
	if g.window.Index == 0 {
		return
	}
	g.window.Index--
	g.window.Size++
	g.size--
}

// MoveWindow relocates the edit point to logical offset pos, clamped to
// [0, Len()]. The cost is proportional to the distance moved.
func (g *GapBuffer) MoveWindow(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > g.size {
		pos = g.size
	}
	idx, end := g.window.Index, g.window.Index+g.window.Size
	switch {
	case pos < idx:
		n := idx - pos
		copy(g.buf[end-n:end], g.buf[pos:idx])
	case pos > idx:
		n := pos - idx
		copy(g.buf[idx:idx+n], g.buf[end:end+n])
	}
	g.window.Index = pos
}

// Get returns the rune at logical offset i.
func (g *GapBuffer) Get(i int) (rune, error) {
	if i < 0 || i >= g.size {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, g.size)
	}
	return g.buf[g.physical(i)], nil
}

func (g *GapBuffer) physical(i int) int {
	if i >= g.window.Index {
		return i + g.window.Size
	}
	return i
}

// Len returns the logical length (excluding the window).
func (g *GapBuffer) Len() int {
	return g.size
}

// Cap returns the number of allocated slots.
func (g *GapBuffer) Cap() int {
	return len(g.buf)
}

// Window returns the current window position and size.
func (g *GapBuffer) Window() Window {
	return g.window
}

// Slice returns a copy of the runes in [start,end), clamped to the buffer.
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.size {
		end = g.size
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, g.buf[g.physical(i)])
	}
	return out
}

// String returns the buffer as a string.
func (g *GapBuffer) String() string {
	return string(g.Slice(0, g.size))
}
