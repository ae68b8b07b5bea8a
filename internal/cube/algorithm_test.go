package cube

import "testing"

func TestParseAlgorithmRoundTrip(t *testing.T) {
	tests := []string{
		"R U R' U'",
		"R2 L2 F2 B2",
		"",
		"U D F B L R",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			alg, err := ParseAlgorithm(s)
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error: %v", s, err)
			}
			if got, want := alg.String(), s; got != want {
				t.Errorf("round-trip String() = %q, want %q", got, want)
			}
		})
	}
}

func TestParseAlgorithmError(t *testing.T) {
	if _, err := ParseAlgorithm("R X U"); err == nil {
		t.Fatal("expected error for unknown face letter")
	}
}

func TestParseAlgorithmN(t *testing.T) {
	if _, err := ParseAlgorithmN("R U R'", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseAlgorithmN("R U R'", 4); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestAlgorithmInverse(t *testing.T) {
	alg, err := ParseAlgorithm("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	want, err := ParseAlgorithm("U R U' R'")
	if err != nil {
		t.Fatal(err)
	}
	if got := alg.Inverse(); !got.Equal(want) {
		t.Errorf("Inverse() = %q, want %q", got.String(), want.String())
	}
}

func TestWellKnownAlgorithmsSuperflipFlipsEveryEdge(t *testing.T) {
	alg, ok := WellKnownAlgorithms["superflip"]
	if !ok {
		t.Fatal("missing superflip in WellKnownAlgorithms")
	}
	c := NewSolvedCube()
	c.ApplyAlgorithm(alg)

	for i, edge := range c.Edges {
		if !edge.Flipped {
			t.Errorf("edge slot %d not flipped after superflip", i)
		}
		if edge.Identity != solvedEdges[i].Identity {
			t.Errorf("edge slot %d identity = %v, want %v (superflip moves no pieces)", i, edge.Identity, solvedEdges[i].Identity)
		}
	}
	for i, corner := range c.Corners {
		if corner.Identity != solvedCorners[i].Identity {
			t.Errorf("corner slot %d identity = %v, want %v", i, corner.Identity, solvedCorners[i].Identity)
		}
		if corner.Orientation != OrientZero {
			t.Errorf("corner slot %d orientation = %v, want zero", i, corner.Orientation)
		}
	}

	if got, want := c.OrientationCoordinate(), 2047*pow3(7); got != want {
		t.Errorf("OrientationCoordinate() = %d, want %d", got, want)
	}
}

func TestWellKnownAlgorithmsTPermIsAnInvolution(t *testing.T) {
	alg := WellKnownAlgorithms["t-perm"]
	c := NewSolvedCube()
	c.ApplyAlgorithm(alg)
	c.ApplyAlgorithm(alg)
	if !c.IsSolved() {
		t.Error("applying t-perm twice should return to solved")
	}
}

func TestWellKnownAlgorithmsJPermIsAnInvolution(t *testing.T) {
	alg := WellKnownAlgorithms["j-perm"]
	c := NewSolvedCube()
	c.ApplyAlgorithm(alg)
	c.ApplyAlgorithm(alg)
	if !c.IsSolved() {
		t.Error("applying j-perm twice should return to solved")
	}
}
