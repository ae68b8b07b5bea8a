package cube

// Face identifies one of the six faces of a 3x3x3 cube.
type Face int

const (
	U Face = iota
	D
	F
	B
	L
	R
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case L:
		return "L"
	case R:
		return "R"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case F:
		return B
	case B:
		return F
	case L:
		return R
	case R:
		return L
	default:
		return f
	}
}

// faceFromChar parses one of U, D, F, B, L, R. The bool is false for any
// other rune.
func faceFromChar(c rune) (Face, bool) {
	switch c {
	case 'U':
		return U, true
	case 'D':
		return D, true
	case 'F':
		return F, true
	case 'B':
		return B, true
	case 'L':
		return L, true
	case 'R':
		return R, true
	default:
		return 0, false
	}
}
