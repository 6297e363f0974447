package buffer

// Reader is the read side of a text store. Offsets are logical and
// expressed in runes.
type Reader interface {
	Get(i int) (rune, error)
	Len() int
}

// TextStorage defines the storage operations used by the editor: edits
// happen at a single movable edit point.
type TextStorage interface {
	Reader
	Insert(ch rune)
	Delete()
	MoveWindow(pos int)
}

var _ TextStorage = (*GapBuffer)(nil)
