package cube

// Cube is a cubie-level model of a 3x3x3 Rubik's cube: 12 edge slots and 8
// corner slots, each holding the identity of the piece currently there plus
// its orientation relative to solved.
type Cube struct {
	Edges   [numEdgeSlots]EdgeCubie
	Corners [numCornerSlots]CornerCubie
}

// solvedEdges and solvedCorners are the pieces in their home slots, used
// both to build a fresh solved cube and to test solvedness.
var solvedEdges = [numEdgeSlots]EdgeCubie{
	{Identity: EdgeWB}, // UB
	{Identity: EdgeWR}, // UR
	{Identity: EdgeWG}, // UF
	{Identity: EdgeWO}, // UL
	{Identity: EdgeBO}, // BL
	{Identity: EdgeBR}, // BR
	{Identity: EdgeGR}, // FR
	{Identity: EdgeGO}, // FL
	{Identity: EdgeYG}, // DF
	{Identity: EdgeYR}, // DR
	{Identity: EdgeYB}, // DB
	{Identity: EdgeYO}, // DL
}

var solvedCorners = [numCornerSlots]CornerCubie{
	{Identity: CornerWBO}, // UBL
	{Identity: CornerWBR}, // UBR
	{Identity: CornerWGR}, // UFR
	{Identity: CornerWGO}, // UFL
	{Identity: CornerYGO}, // DFL
	{Identity: CornerYGR}, // DFR
	{Identity: CornerYBR}, // DBR
	{Identity: CornerYBO}, // DBL
}

// NewSolvedCube returns a cube in the solved state.
func NewSolvedCube() Cube {
	return Cube{Edges: solvedEdges, Corners: solvedCorners}
}

// IsSolved reports whether every piece is in its home slot with zero
// orientation.
func (c Cube) IsSolved() bool {
	return c.Edges == solvedEdges && c.Corners == solvedCorners
}

// ApplyTwist mutates c by playing a single twist.
func (c *Cube) ApplyTwist(t Twist) {
	if t.Direction == Identity {
		return
	}
	ring := faceRings[t.Face]

	switch t.Direction {
	case Half:
		c.swapEdges(ring.edges[0], ring.edges[2])
		c.swapEdges(ring.edges[1], ring.edges[3])
		c.swapCorners(ring.corners[0], ring.corners[2])
		c.swapCorners(ring.corners[1], ring.corners[3])
		return
	case Quarter:
		c.cycleEdgesRight(ring.edges)
		c.cycleCornersRight(ring.corners)
	case InverseQuarter:
		c.cycleEdgesLeft(ring.edges)
		c.cycleCornersLeft(ring.corners)
	}

	correction, ok := faceCorrections[t.Face]
	if !ok {
		return
	}
	if correction.flipEdges {
		for _, slot := range correction.edgeSlots {
			c.Edges[slot].Flip()
		}
	}
	for _, slot := range correction.cornerCCW {
		c.Corners[slot].Orientation = c.Corners[slot].Orientation.TwistCounterclockwise()
	}
	for _, slot := range correction.cornerCW {
		c.Corners[slot].Orientation = c.Corners[slot].Orientation.TwistClockwise()
	}
}

// ApplyAlgorithm plays every twist of alg in order.
func (c *Cube) ApplyAlgorithm(alg Algorithm) {
	for _, t := range alg.Twists {
		c.ApplyTwist(t)
	}
}

func (c *Cube) swapEdges(a, b EdgeSlot) {
	c.Edges[a], c.Edges[b] = c.Edges[b], c.Edges[a]
}

func (c *Cube) swapCorners(a, b CornerSlot) {
	c.Corners[a], c.Corners[b] = c.Corners[b], c.Corners[a]
}

// cycleEdgesRight moves the piece in slots[0] into slots[1], slots[1] into
// slots[2], slots[2] into slots[3], and slots[3] into slots[0].
func (c *Cube) cycleEdgesRight(slots [4]EdgeSlot) {
	tmp := c.Edges[slots[3]]
	c.Edges[slots[3]] = c.Edges[slots[2]]
	c.Edges[slots[2]] = c.Edges[slots[1]]
	c.Edges[slots[1]] = c.Edges[slots[0]]
	c.Edges[slots[0]] = tmp
}

// cycleEdgesLeft is the inverse of cycleEdgesRight.
func (c *Cube) cycleEdgesLeft(slots [4]EdgeSlot) {
	tmp := c.Edges[slots[0]]
	c.Edges[slots[0]] = c.Edges[slots[1]]
	c.Edges[slots[1]] = c.Edges[slots[2]]
	c.Edges[slots[2]] = c.Edges[slots[3]]
	c.Edges[slots[3]] = tmp
}

func (c *Cube) cycleCornersRight(slots [4]CornerSlot) {
	tmp := c.Corners[slots[3]]
	c.Corners[slots[3]] = c.Corners[slots[2]]
	c.Corners[slots[2]] = c.Corners[slots[1]]
	c.Corners[slots[1]] = c.Corners[slots[0]]
	c.Corners[slots[0]] = tmp
}

func (c *Cube) cycleCornersLeft(slots [4]CornerSlot) {
	tmp := c.Corners[slots[0]]
	c.Corners[slots[0]] = c.Corners[slots[1]]
	c.Corners[slots[1]] = c.Corners[slots[2]]
	c.Corners[slots[2]] = c.Corners[slots[3]]
	c.Corners[slots[3]] = tmp
}

// OrientationCoordinate encodes every piece's orientation (corner twist and
// edge flip) into a single integer in [0, 3^7*2^11). Slot 0 of each array
// is omitted from the encoding because its orientation is fully determined
// by the rest (every reachable state has a zero total corner twist and a
// zero total edge flip).
func (c Cube) OrientationCoordinate() int {
	cornerSum := 0
	power := 1
	for i := 1; i < numCornerSlots; i++ {
		cornerSum += int(c.Corners[i].Orientation) * power
		power *= 3
	}
	edgeSum := 0
	power = 1
	for i := 1; i < numEdgeSlots; i++ {
		if c.Edges[i].Flipped {
			edgeSum += power
		}
		power *= 2
	}
	return cornerSum + edgeSum*pow3(numCornerSlots-1)
}

func pow3(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}

// CornerPermutationCoordinate encodes the permutation of the 8 corners (not
// their orientation) into [0, 8!) via a Lehmer code converted through the
// factorial number system.
func (c Cube) CornerPermutationCoordinate() int {
	var identities [numCornerSlots]int
	for i, corner := range c.Corners {
		identities[i] = int(corner.Identity)
	}
	return encodePermutation(identities[:])
}

// encodePermutation computes the Lehmer code of perm (for each element,
// the count of later elements smaller than it) and converts that code,
// read as a factorial-number-system digit string, into a single integer.
// This is a bijection from permutations of n distinct values onto
// [0, n!), used to index the corner-permutation lookup table.
func encodePermutation(perm []int) int {
	n := len(perm)
	factoradic := make([]int, n)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				factoradic[i]++
			}
		}
	}
	result := 0
	factorial := 1
	for i := n - 1; i >= 1; i-- {
		factorial *= (n - i)
		result += factoradic[i-1] * factorial
	}
	return result
}
