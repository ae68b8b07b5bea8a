package cube

import (
	"path/filepath"
	"testing"
)

// tablePaths returns orientation/permutation table paths under a fresh
// temp directory so tests never read or write the default table files.
// The tables themselves are sync.Once-backed process-wide values, so only
// the first test to trigger a build decides where each table is written;
// later tests reuse it whatever paths they pass.
func tablePaths(t *testing.T) (orientation, permutation string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "corner_orientation.bin"), filepath.Join(dir, "corner_permutation.bin")
}

func TestTwoPhaseSolveSolvedCubeReturnsEmptySolution(t *testing.T) {
	if testing.Short() {
		t.Skip("building pattern tables is slow; skipping in -short mode")
	}
	orientationPath, permutationPath := tablePaths(t)
	result := TwoPhaseSolve(NewSolvedCube(), orientationPath, permutationPath)
	if result.Solution.Len() != 0 {
		t.Errorf("solving an already-solved cube returned %d moves, want 0", result.Solution.Len())
	}
}

func TestTwoPhaseSolveSolvesShortScramble(t *testing.T) {
	if testing.Short() {
		t.Skip("building pattern tables is slow; skipping in -short mode")
	}
	orientationPath, permutationPath := tablePaths(t)

	scramble := RandomScramble(6)
	c := NewSolvedCube()
	c.ApplyAlgorithm(scramble)

	result := TwoPhaseSolve(c, orientationPath, permutationPath)

	c.ApplyAlgorithm(result.Solution)
	if !c.IsSolved() {
		t.Fatalf("applying solution %q to scramble %q did not reach solved state", result.Solution.String(), scramble.String())
	}
}

func TestPhase1DescriptorChecksG1Membership(t *testing.T) {
	orientationPath, _ := tablePaths(t)
	phase := Phase1(orientationPath)
	if !phase.Check(NewSolvedCube()) {
		t.Error("Phase1 check should accept the solved cube as already in G1")
	}
	flipped := NewSolvedCube()
	flipped.Edges[EdgeSlotUF].Flip()
	if phase.Check(flipped) {
		t.Error("Phase1 check should reject a cube with a flipped edge")
	}
}

func TestPhase2DescriptorChecksFullySolved(t *testing.T) {
	_, permutationPath := tablePaths(t)
	phase := Phase2(permutationPath)
	if !phase.Check(NewSolvedCube()) {
		t.Error("Phase2 check should accept the solved cube")
	}
	c := NewSolvedCube()
	c.ApplyTwist(Twist{Face: R, Direction: Quarter})
	if phase.Check(c) {
		t.Error("Phase2 check should reject a scrambled cube")
	}
}
