package cube

import "testing"

func TestNewSolvedCubeIsSolved(t *testing.T) {
	c := NewSolvedCube()
	if !c.IsSolved() {
		t.Fatal("NewSolvedCube() should be solved")
	}
}

func TestApplyTwistFourTimesReturnsToSolved(t *testing.T) {
	for _, face := range []Face{U, D, F, B, L, R} {
		t.Run(face.String(), func(t *testing.T) {
			c := NewSolvedCube()
			for i := 0; i < 4; i++ {
				c.ApplyTwist(Twist{Face: face, Direction: Quarter})
			}
			if !c.IsSolved() {
				t.Errorf("four quarter turns of %v did not return to solved", face)
			}
		})
	}
}

func TestApplyTwistTwiceEqualsHalfTurn(t *testing.T) {
	for _, face := range []Face{U, D, F, B, L, R} {
		t.Run(face.String(), func(t *testing.T) {
			quarters := NewSolvedCube()
			quarters.ApplyTwist(Twist{Face: face, Direction: Quarter})
			quarters.ApplyTwist(Twist{Face: face, Direction: Quarter})

			half := NewSolvedCube()
			half.ApplyTwist(Twist{Face: face, Direction: Half})

			if quarters != half {
				t.Errorf("two quarter turns of %v did not equal one half turn", face)
			}
		})
	}
}

func TestApplyTwistInverseUndoesTwist(t *testing.T) {
	c := NewSolvedCube()
	twist := Twist{Face: F, Direction: Quarter}
	c.ApplyTwist(twist)
	c.ApplyTwist(twist.Inverse())
	if !c.IsSolved() {
		t.Fatal("twist followed by its inverse should return to solved")
	}
}

func TestApplyAlgorithmScrambleThenInverseSolves(t *testing.T) {
	scramble := RandomScramble(25)
	c := NewSolvedCube()
	c.ApplyAlgorithm(scramble)
	c.ApplyAlgorithm(scramble.Inverse())
	if !c.IsSolved() {
		t.Fatal("scramble followed by its inverse should return to solved")
	}
}

func TestOrientationCoordinateZeroWhenSolved(t *testing.T) {
	c := NewSolvedCube()
	if got := c.OrientationCoordinate(); got != 0 {
		t.Errorf("OrientationCoordinate() of solved cube = %d, want 0", got)
	}
}

func TestOrientationCoordinateRange(t *testing.T) {
	c := NewSolvedCube()
	c.ApplyAlgorithm(RandomScramble(30))
	got := c.OrientationCoordinate()
	if got < 0 || got >= orientationTableSize {
		t.Errorf("OrientationCoordinate() = %d, out of range [0, %d)", got, orientationTableSize)
	}
}

func TestCornerPermutationCoordinateZeroWhenSolved(t *testing.T) {
	c := NewSolvedCube()
	if got := c.CornerPermutationCoordinate(); got != 0 {
		t.Errorf("CornerPermutationCoordinate() of solved cube = %d, want 0", got)
	}
}

func TestEncodePermutationIsInjective(t *testing.T) {
	perms := permutationsOf([]int{0, 1, 2, 3, 4, 5, 6, 7})
	seen := map[int]bool{}
	for _, p := range perms {
		code := encodePermutation(p)
		if seen[code] {
			t.Fatalf("encodePermutation(%v) = %d collides with an earlier permutation", p, code)
		}
		seen[code] = true
	}
	if len(seen) != len(perms) {
		t.Fatalf("got %d unique codes, want %d", len(seen), len(perms))
	}
}

func permutationsOf(values []int) [][]int {
	if len(values) <= 1 {
		return [][]int{append([]int(nil), values...)}
	}
	var result [][]int
	for i := range values {
		rest := make([]int, 0, len(values)-1)
		rest = append(rest, values[:i]...)
		rest = append(rest, values[i+1:]...)
		for _, p := range permutationsOf(rest) {
			result = append(result, append([]int{values[i]}, p...))
		}
	}
	return result
}

func TestStickerColorSolvedCubeIsUniformPerFace(t *testing.T) {
	c := NewSolvedCube()
	faces := []struct {
		face renderFace
		want Color
	}{
		{faceUp, White},
		{faceDown, Yellow},
		{faceFront, Green},
		{faceBack, Blue},
		{faceLeft, Orange},
		{faceRight, Red},
	}
	for _, f := range faces {
		for sticker := 0; sticker < 9; sticker++ {
			if got := c.StickerColor(f.face, sticker); got != f.want {
				t.Errorf("solved cube StickerColor(%v, %d) = %v, want %v", f.face, sticker, got, f.want)
			}
		}
	}
}
