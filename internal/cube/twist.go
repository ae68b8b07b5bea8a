package cube

import "fmt"

// Twist is a single quarter-turn-multiple rotation of one face.
type Twist struct {
	Face      Face
	Direction Direction
}

// NewTwist builds a twist from a face and direction.
func NewTwist(face Face, dir Direction) Twist {
	return Twist{Face: face, Direction: dir}
}

func (t Twist) String() string {
	return t.Face.String() + t.Direction.String()
}

// Inverse returns the twist that undoes t.
func (t Twist) Inverse() Twist {
	return Twist{Face: t.Face, Direction: t.Direction.Inverse()}
}

// Compose combines two twists of the same face into one, returning false if
// they are on different faces. The combined direction may be Identity, which
// the caller is expected to drop.
func (t Twist) Compose(other Twist) (Twist, bool) {
	if t.Face != other.Face {
		return Twist{}, false
	}
	return Twist{Face: t.Face, Direction: t.Direction.Add(other.Direction)}, true
}

// AllTwists is the canonical 18-move set: three directions for each of the
// six faces, in U, D, F, B, L, R order.
var AllTwists = buildAllTwists()

func buildAllTwists() []Twist {
	faces := []Face{U, D, F, B, L, R}
	dirs := []Direction{Quarter, Half, InverseQuarter}
	twists := make([]Twist, 0, len(faces)*len(dirs))
	for _, f := range faces {
		for _, d := range dirs {
			twists = append(twists, Twist{Face: f, Direction: d})
		}
	}
	return twists
}

// G1Moveset is the ten moves available once the cube has been reduced into
// the G1 subgroup: full turns of U and D, half turns of everything else.
var G1Moveset = []Twist{
	{Face: U, Direction: Quarter},
	{Face: U, Direction: Half},
	{Face: U, Direction: InverseQuarter},
	{Face: D, Direction: Quarter},
	{Face: D, Direction: Half},
	{Face: D, Direction: InverseQuarter},
	{Face: F, Direction: Half},
	{Face: B, Direction: Half},
	{Face: L, Direction: Half},
	{Face: R, Direction: Half},
}

// MoveAllowed reports whether a twist on candidate may immediately follow a
// twist on prevFace, under the asymmetric adjacency rule that prevents
// exploring two twists of the same face back-to-back, or two twists of
// opposite faces in a redundant order. hasPrev is false at the start of a
// search, where every twist is allowed.
func MoveAllowed(hasPrev bool, prevFace Face, candidate Face) bool {
	if !hasPrev {
		return true
	}
	switch prevFace {
	case U, R, F:
		return candidate != prevFace
	default: // D, L, B
		return candidate != prevFace && candidate != prevFace.Opposite()
	}
}

// AllowedFrom filters moveset down to the twists legal to play immediately
// after a twist on prevFace (hasPrev false means no twist has been played
// yet, so every move is legal).
func AllowedFrom(moveset []Twist, hasPrev bool, prevFace Face) []Twist {
	out := make([]Twist, 0, len(moveset))
	for _, t := range moveset {
		if MoveAllowed(hasPrev, prevFace, t.Face) {
			out = append(out, t)
		}
	}
	return out
}

// parseTwistString parses a single twist in standard notation: a face
// letter optionally followed by a modifier, '0', '1', '2', '3', or '\''.
func parseTwistString(s string) (Twist, error) {
	if len(s) == 0 {
		return Twist{}, fmt.Errorf("cube: empty twist")
	}
	runes := []rune(s)
	face, ok := faceFromChar(runes[0])
	if !ok {
		return Twist{}, fmt.Errorf("cube: unknown face %q", string(runes[0]))
	}
	if len(runes) == 1 {
		return Twist{Face: face, Direction: Quarter}, nil
	}
	if len(runes) > 2 {
		return Twist{}, fmt.Errorf("cube: malformed twist %q", s)
	}
	dir, ok := directionFromChar(runes[1])
	if !ok {
		return Twist{}, fmt.Errorf("cube: unknown modifier %q in %q", string(runes[1]), s)
	}
	return Twist{Face: face, Direction: dir}, nil
}
