package cube

import (
	"fmt"
	"strings"
)

// Algorithm is an ordered sequence of twists, the unit the CLI and solver
// exchange: a scramble, a solution, or an algorithm being simplified.
type Algorithm struct {
	Twists []Twist
}

// NewAlgorithm wraps an existing twist slice.
func NewAlgorithm(twists []Twist) Algorithm {
	return Algorithm{Twists: twists}
}

// ParseAlgorithm parses whitespace-separated standard notation, e.g.
// "R U R' U'". An empty or all-whitespace string parses to an empty
// algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	fields := strings.Fields(s)
	twists := make([]Twist, 0, len(fields))
	for _, field := range fields {
		t, err := parseTwistString(field)
		if err != nil {
			return Algorithm{}, fmt.Errorf("cube: parsing algorithm %q: %w", s, err)
		}
		twists = append(twists, t)
	}
	return Algorithm{Twists: twists}, nil
}

// ParseAlgorithmN parses s and requires it to contain exactly n twists,
// mirroring the fixed-length literals used to pin down well-known
// algorithms at package init time.
func ParseAlgorithmN(s string, n int) (Algorithm, error) {
	alg, err := ParseAlgorithm(s)
	if err != nil {
		return Algorithm{}, err
	}
	if len(alg.Twists) != n {
		return Algorithm{}, fmt.Errorf("cube: algorithm %q has %d twists, want %d", s, len(alg.Twists), n)
	}
	return alg, nil
}

func (a Algorithm) String() string {
	var b strings.Builder
	for i, t := range a.Twists {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Len reports the number of twists.
func (a Algorithm) Len() int {
	return len(a.Twists)
}

// Append returns a new algorithm with other's twists appended to a's.
func (a Algorithm) Append(other Algorithm) Algorithm {
	combined := make([]Twist, 0, len(a.Twists)+len(other.Twists))
	combined = append(combined, a.Twists...)
	combined = append(combined, other.Twists...)
	return Algorithm{Twists: combined}
}

// Inverse returns the algorithm that undoes a, reversing order and
// inverting each twist.
func (a Algorithm) Inverse() Algorithm {
	inv := make([]Twist, len(a.Twists))
	for i, t := range a.Twists {
		inv[len(a.Twists)-1-i] = t.Inverse()
	}
	return Algorithm{Twists: inv}
}

// Equal reports whether a and other contain the same twists in the same
// order.
func (a Algorithm) Equal(other Algorithm) bool {
	if len(a.Twists) != len(other.Twists) {
		return false
	}
	for i := range a.Twists {
		if a.Twists[i] != other.Twists[i] {
			return false
		}
	}
	return true
}

// WellKnownAlgorithms holds a handful of fixed algorithms used as solver
// soundness fixtures: a superflip (every edge flipped, nothing else moved)
// and three common PLL permutations, each long enough to exercise many
// phase-1/phase-2 transitions.
var WellKnownAlgorithms = buildWellKnownAlgorithms()

func buildWellKnownAlgorithms() map[string]Algorithm {
	algs := map[string]struct {
		notation string
		length   int
	}{
		"superflip": {"U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2", 20},
		"j-perm":    {"R U R' F' R U R' U' R' F R2 U' R' U'", 14},
		"t-perm":    {"R U R' U' R' F R2 U' R' U' R U R' F'", 14},
		"ua-perm":   {"R U' R U R U R U' R' U' R2", 11},
	}
	out := make(map[string]Algorithm, len(algs))
	for name, spec := range algs {
		alg, err := ParseAlgorithmN(spec.notation, spec.length)
		if err != nil {
			// These are fixed literals baked into the package; a parse
			// failure here is a programming error, not user input.
			panic(fmt.Sprintf("cube: well-known algorithm %q failed to parse: %v", name, err))
		}
		out[name] = alg
	}
	return out
}
