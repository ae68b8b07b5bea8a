package cube

// Color is a single sticker color.
type Color int

const (
	White Color = iota
	Orange
	Green
	Red
	Blue
	Yellow
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// EdgeIdentity names one of the 12 physical edge pieces by the two colors
// painted on it. The ordering below is load-bearing: the orientation and
// permutation coordinates used by the lookup tables number pieces by this
// enum's position, so it must never be reordered once tables are built.
type EdgeIdentity int

const (
	EdgeWB EdgeIdentity = iota
	EdgeWR
	EdgeWG
	EdgeWO
	EdgeBO
	EdgeBR
	EdgeGR
	EdgeGO
	EdgeYG
	EdgeYR
	EdgeYB
	EdgeYO
)

// Colors returns the two colors painted on this edge identity.
func (e EdgeIdentity) Colors() (Color, Color) {
	switch e {
	case EdgeWB:
		return White, Blue
	case EdgeWR:
		return White, Red
	case EdgeWG:
		return White, Green
	case EdgeWO:
		return White, Orange
	case EdgeBO:
		return Blue, Orange
	case EdgeBR:
		return Blue, Red
	case EdgeGR:
		return Green, Red
	case EdgeGO:
		return Green, Orange
	case EdgeYG:
		return Yellow, Green
	case EdgeYR:
		return Yellow, Red
	case EdgeYB:
		return Yellow, Blue
	case EdgeYO:
		return Yellow, Orange
	default:
		return White, White
	}
}

// EdgeSlot names one of the 12 physical edge positions on the cube. Like
// EdgeIdentity, this ordering is load-bearing for the orientation
// coordinate (the omitted, dependent slot is index 0, EdgeSlotUB).
type EdgeSlot int

const (
	EdgeSlotUB EdgeSlot = iota
	EdgeSlotUR
	EdgeSlotUF
	EdgeSlotUL
	EdgeSlotBL
	EdgeSlotBR
	EdgeSlotFR
	EdgeSlotFL
	EdgeSlotDF
	EdgeSlotDR
	EdgeSlotDB
	EdgeSlotDL
)

const numEdgeSlots = 12

// CornerIdentity names one of the 8 physical corner pieces by its three
// colors (white/yellow face first, then clockwise). Ordering is
// load-bearing, same as EdgeIdentity.
type CornerIdentity int

const (
	CornerWBO CornerIdentity = iota
	CornerWBR
	CornerWGR
	CornerWGO
	CornerYGO
	CornerYGR
	CornerYBR
	CornerYBO
)

// Colors returns the three colors painted on this corner identity, starting
// from the white/yellow sticker and proceeding clockwise.
func (c CornerIdentity) Colors() (Color, Color, Color) {
	switch c {
	case CornerWBO:
		return White, Orange, Blue
	case CornerWBR:
		return White, Blue, Red
	case CornerWGR:
		return White, Red, Green
	case CornerWGO:
		return White, Green, Orange
	case CornerYGO:
		return Yellow, Orange, Green
	case CornerYGR:
		return Yellow, Green, Red
	case CornerYBR:
		return Yellow, Red, Blue
	case CornerYBO:
		return Yellow, Blue, Orange
	default:
		return White, White, White
	}
}

// CornerSlot names one of the 8 physical corner positions. Ordering is
// load-bearing for the orientation coordinate (the omitted slot is index 0,
// CornerSlotUBL).
type CornerSlot int

const (
	CornerSlotUBL CornerSlot = iota
	CornerSlotUBR
	CornerSlotUFR
	CornerSlotUFL
	CornerSlotDFL
	CornerSlotDFR
	CornerSlotDBR
	CornerSlotDBL
)

const numCornerSlots = 8

// CornerOrientation is how far a corner has been twisted from its solved
// orientation: Zero is unstwisted, One is one clockwise twist, Two is one
// counterclockwise twist (equivalently two clockwise twists).
type CornerOrientation int

const (
	OrientZero CornerOrientation = iota
	OrientOne
	OrientTwo
)

// TwistClockwise advances the orientation by one clockwise twist.
func (o CornerOrientation) TwistClockwise() CornerOrientation {
	return (o + 1) % 3
}

// TwistCounterclockwise advances the orientation by one counterclockwise
// twist.
func (o CornerOrientation) TwistCounterclockwise() CornerOrientation {
	return (o + 2) % 3
}

// EdgeCubie is the edge piece occupying a slot: which physical piece it is,
// and whether it is flipped relative to solved.
type EdgeCubie struct {
	Identity EdgeIdentity
	Flipped  bool
}

// Flip toggles the flipped state in place.
func (e *EdgeCubie) Flip() {
	e.Flipped = !e.Flipped
}

// CornerCubie is the corner piece occupying a slot: which physical piece it
// is, and its twist relative to solved.
type CornerCubie struct {
	Identity    CornerIdentity
	Orientation CornerOrientation
}
