package cube

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	orientationTableSize = 2187 * 2048 // 3^7 * 2^11
	permutationTableSize = 40320       // 8!
	tableUnknown         = 0xFF
)

// LookupTable is a byte-per-state admissible heuristic table: table[i] is
// the minimum number of moves to reach a goal state from the state encoded
// as i, or tableUnknown if that has not been computed (which should never
// survive a completed build).
type LookupTable struct {
	Values []byte
}

// LoadLookupTable reads a previously persisted table from path. The format
// is a raw byte stream, one entry per index, no header: the table's size is
// fixed by the coordinate space it indexes. A file shorter than wantLen is
// an error; bytes past wantLen are not read.
func LoadLookupTable(path string, wantLen int) (LookupTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return LookupTable{}, fmt.Errorf("cube: opening table %s: %w", path, err)
	}
	defer f.Close()

	values := make([]byte, wantLen)
	if _, err := io.ReadFull(f, values); err != nil {
		return LookupTable{}, fmt.Errorf("cube: reading table %s: %w", path, err)
	}
	return LookupTable{Values: values}, nil
}

// Save persists t to path as a raw byte stream.
func (t LookupTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cube: creating table %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.Write(t.Values); err != nil {
		return fmt.Errorf("cube: writing table %s: %w", path, err)
	}
	return w.Flush()
}

// BuildOrientationTable runs a breadth-first search over every reachable
// orientation coordinate using the full 18-move set (no adjacency pruning:
// every state at a given depth must be enumerated, and the adjacency rule
// only prunes redundant paths to states already visited at a shallower
// depth). The result is a complete table: every coordinate is reachable
// from solved within a bounded number of moves, so no entry is left
// unknown.
func BuildOrientationTable() LookupTable {
	values := make([]byte, orientationTableSize)
	for i := range values {
		values[i] = tableUnknown
	}

	type queued struct {
		cube  Cube
		depth byte
	}

	solved := NewSolvedCube()
	values[solved.OrientationCoordinate()] = 0

	queue := []queued{{cube: solved, depth: 1}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, t := range AllTwists {
			next := item.cube
			next.ApplyTwist(t)

			coord := next.OrientationCoordinate()
			if values[coord] == tableUnknown {
				values[coord] = item.depth
				queue = append(queue, queued{cube: next, depth: item.depth + 1})
			}
		}
	}

	return LookupTable{Values: values}
}

// BuildPermutationTable runs iterative-deepening depth-first search over
// the corner-permutation coordinate using only the 10-move G1 set (the
// moves available once a cube has been reduced into the G1 subgroup),
// respecting the same adjacency rule the solver's search uses. Each
// iteration increases the target depth by one and fills in any coordinate
// first reached at that depth, until every reachable coordinate has a
// value.
func BuildPermutationTable() LookupTable {
	values := make([]byte, permutationTableSize)
	for i := range values {
		values[i] = tableUnknown
	}

	solved := NewSolvedCube()
	depth := byte(0)
	for containsUnknown(values) {
		permutationSearch(&solved, depth, 0, false, U, values)
		depth++
	}

	return LookupTable{Values: values}
}

func containsUnknown(values []byte) bool {
	for _, v := range values {
		if v == tableUnknown {
			return true
		}
	}
	return false
}

func permutationSearch(cube *Cube, depth, moveCount byte, hasPrev bool, prevFace Face, values []byte) {
	if moveCount == depth {
		i := cube.CornerPermutationCoordinate()
		if values[i] == tableUnknown {
			values[i] = depth
		}
		return
	}
	for _, t := range AllowedFrom(G1Moveset, hasPrev, prevFace) {
		cube.ApplyTwist(t)
		permutationSearch(cube, depth, moveCount+1, true, t.Face, values)
		cube.ApplyTwist(t.Inverse())
	}
}

var (
	orientationTableOnce sync.Once
	orientationTable     LookupTable

	permutationTableOnce sync.Once
	permutationTable     LookupTable
)

// DefaultOrientationTablePath and DefaultPermutationTablePath are the
// locations the CLI's table-building flags default to.
const (
	DefaultOrientationTablePath = "tables/corner_orientation.bin"
	DefaultPermutationTablePath = "tables/corner_permutation.bin"
)

// OrientationTable returns the process-wide orientation lookup table,
// loading it from path on first use if present, or building and persisting
// it otherwise. Subsequent calls with any path return the same cached
// table: only the first caller in a process's lifetime determines where it
// is loaded from or saved to.
func OrientationTable(path string) LookupTable {
	orientationTableOnce.Do(func() {
		orientationTable = loadOrBuild(path, orientationTableSize, BuildOrientationTable)
	})
	return orientationTable
}

// PermutationTable returns the process-wide corner-permutation lookup
// table, with the same load-or-build-once semantics as OrientationTable.
func PermutationTable(path string) LookupTable {
	permutationTableOnce.Do(func() {
		permutationTable = loadOrBuild(path, permutationTableSize, BuildPermutationTable)
	})
	return permutationTable
}

func loadOrBuild(path string, size int, build func() LookupTable) LookupTable {
	if _, err := os.Stat(path); err == nil {
		if table, err := LoadLookupTable(path, size); err == nil {
			return table
		}
	}
	table := build()
	_ = table.Save(path)
	return table
}

// cornerOrientationHeuristic is an admissible lower bound on moves to reach
// zero corner twist: each quarter turn can correct at most three corners'
// worth of twist.
func cornerOrientationHeuristic(c Cube) int {
	sum := 0
	for _, corner := range c.Corners {
		sum += int(corner.Orientation)
	}
	return ceilDiv(sum, 3)
}

// edgeFlipHeuristic is the analogous bound for edge flips.
func edgeFlipHeuristic(c Cube) int {
	sum := 0
	for _, edge := range c.Edges {
		if edge.Flipped {
			sum++
		}
	}
	return ceilDiv(sum, 3)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// G1Heuristic is the admissible heuristic used for phase 1 (reducing into
// the G1 subgroup): the largest of the two cheap orientation bounds and the
// precomputed pattern-database bound, whichever is tightest for the given
// state.
func G1Heuristic(tablePath string, c Cube) int {
	table := OrientationTable(tablePath)
	patternBound := int(table.Values[c.OrientationCoordinate()])

	bound := cornerOrientationHeuristic(c)
	if v := edgeFlipHeuristic(c); v > bound {
		bound = v
	}
	if patternBound > bound {
		bound = patternBound
	}
	return bound
}

// SolvedHeuristic is the admissible heuristic used for phase 2 (solving
// within G1): the precomputed corner-permutation pattern-database bound.
func SolvedHeuristic(tablePath string, c Cube) int {
	table := PermutationTable(tablePath)
	return int(table.Values[c.CornerPermutationCoordinate()])
}

// middleLayerEdgeIdentities and middleLayerEdgeSlots back IsG1's check that
// the FR/FL/BR/BL edges hold only middle-layer pieces.
var middleLayerEdgeSlots = [4]EdgeSlot{EdgeSlotBL, EdgeSlotBR, EdgeSlotFR, EdgeSlotFL}
var middleLayerEdgeIdentities = map[EdgeIdentity]bool{
	EdgeBO: true, EdgeBR: true, EdgeGR: true, EdgeGO: true,
}

// IsG1 reports whether c is a member of the G1 subgroup: every edge
// unflipped, the four middle-layer edge slots hold only middle-layer
// pieces, and every corner has zero orientation. This is the authoritative
// phase-1 goal test; the orientation table only supplies a heuristic bound
// and must never be consulted in place of this check; a state's
// orientation coordinate can reach zero while the permutation is still
// outside G1 (e.g. a middle-layer edge sitting, unflipped, in a top or
// bottom slot), and IsG1 is the only test that also rules that out.
func IsG1(c Cube) bool {
	for i, edge := range c.Edges {
		if edge.Flipped {
			return false
		}
		if isMiddleLayerSlot(EdgeSlot(i)) && !middleLayerEdgeIdentities[edge.Identity] {
			return false
		}
	}
	for _, corner := range c.Corners {
		if corner.Orientation != OrientZero {
			return false
		}
	}
	return true
}

func isMiddleLayerSlot(slot EdgeSlot) bool {
	for _, s := range middleLayerEdgeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
