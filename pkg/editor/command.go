package editor

// Direction is a cursor movement direction.
type Direction int

const (
	Left Direction = iota
	Down
	Up
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	}
	return "unknown"
}

// Kind tags the variant held by a Command.
type Kind int

const (
	KindInsert Kind = iota
	KindDelete
	KindMove
	KindResize
)

// Command is a single input event for the editor. Only the fields for its
// Kind are meaningful.
type Command struct {
	Kind      Kind
	Char      rune       // KindInsert
	Direction Direction  // KindMove
	Magnitude int        // KindMove, treated as 1 when < 1
	Dims      Dimensions // KindResize
}

// Insert returns a command inserting ch at the cursor.
func Insert(ch rune) Command { return Command{Kind: KindInsert, Char: ch} }

// Delete returns a command removing the rune before the cursor.
func Delete() Command { return Command{Kind: KindDelete} }

// Move returns a command moving the cursor n steps in direction d.
func Move(d Direction, n int) Command {
	return Command{Kind: KindMove, Direction: d, Magnitude: n}
}

// Resize returns a command applying new outer dimensions.
func Resize(d Dimensions) Command { return Command{Kind: KindResize, Dims: d} }

// Damage tells the rendering adapter what must be repainted.
type Damage uint8

const (
	DamageCursor Damage = 1 << iota
	DamageLines
	DamageFrame

	DamageNone Damage = 0
	DamageAll         = DamageCursor | DamageLines | DamageFrame
)

// Has reports whether all flags in f are set.
func (d Damage) Has(f Damage) bool { return d&f == f }

// Dimensions is a screen rectangle.
type Dimensions struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

// Border is the margin reserved on every side of the outer rectangle for
// the frame.
const Border = 2

// Interior returns the editing rectangle inside the frame.
func (d Dimensions) Interior() Dimensions {
	in := Dimensions{
		Row:  d.Row + Border,
		Col:  d.Col + Border,
		Rows: d.Rows - 2*Border,
		Cols: d.Cols - 2*Border,
	}
	if in.Rows < 1 {
		in.Rows = 1
	}
	if in.Cols < 1 {
		in.Cols = 1
	}
	return in
}
