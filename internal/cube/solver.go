package cube

import "time"

// PhaseDescriptor binds together what a single IDA* phase needs: how to
// recognize the goal, how to estimate the remaining distance to it, and
// which moves the search is allowed to play.
type PhaseDescriptor struct {
	Name      string
	Check     func(Cube) bool
	Heuristic func(Cube) int
	Moveset   []Twist
}

// Phase1 reduces an arbitrary cube into the G1 subgroup using the full
// 18-move set.
func Phase1(tablePath string) PhaseDescriptor {
	return PhaseDescriptor{
		Name:      "phase1",
		Check:     IsG1,
		Heuristic: func(c Cube) int { return G1Heuristic(tablePath, c) },
		Moveset:   AllTwists,
	}
}

// Phase2 solves a cube already in G1 using only the 10-move G1 set.
func Phase2(tablePath string) PhaseDescriptor {
	return PhaseDescriptor{
		Name:      "phase2",
		Check:     Cube.IsSolved,
		Heuristic: func(c Cube) int { return SolvedHeuristic(tablePath, c) },
		Moveset:   G1Moveset,
	}
}

// SolveResult is the outcome of a full two-phase solve.
type SolveResult struct {
	Solution Algorithm
	Duration time.Duration
}

// TwoPhaseSolve finds a solution for cube using the phase1/phase2 pattern
// described in the module's design: first reduce into G1 with the full
// move set, then solve within G1 using only the moves that keep the cube
// inside it. orientationTablePath and permutationTablePath select where
// the two pattern-database files live (or get built, if absent).
func TwoPhaseSolve(cube Cube, orientationTablePath, permutationTablePath string) SolveResult {
	start := time.Now()

	working := cube
	phase1Alg := groupSolve(&working, Phase1(orientationTablePath))
	phase2Alg := groupSolve(&working, Phase2(permutationTablePath))

	return SolveResult{
		Solution: phase1Alg.Append(phase2Alg),
		Duration: time.Since(start),
	}
}

// groupSolve runs IDA* against a single phase, mutating cube in place to
// end at the phase's goal and returning the algorithm that got it there.
func groupSolve(cube *Cube, phase PhaseDescriptor) Algorithm {
	bound := phase.Heuristic(*cube)
	var solution []Twist

	for {
		result := dfs(cube, 0, bound, false, U, phase, &solution)
		if result.found {
			reverseTwists(solution)
			return Algorithm{Twists: solution}
		}
		bound = result.excess
	}
}

type dfsResult struct {
	found  bool
	excess int
}

// dfs is a single bounded depth-first probe of IDA*: it returns found when
// the goal is reached within bound, or the smallest f-value (g + h) that
// exceeded bound along any branch, which becomes the next iteration's
// bound.
func dfs(cube *Cube, g, bound int, hasPrev bool, prevFace Face, phase PhaseDescriptor, solution *[]Twist) dfsResult {
	f := g + phase.Heuristic(*cube)
	if f > bound {
		return dfsResult{excess: f}
	}
	if phase.Check(*cube) {
		return dfsResult{found: true}
	}

	minExcess := int(^uint(0) >> 1) // max int
	for _, t := range AllowedFrom(phase.Moveset, hasPrev, prevFace) {
		cube.ApplyTwist(t)
		result := dfs(cube, g+1, bound, true, t.Face, phase, solution)
		if result.found {
			// Leave the twist applied: the cube should end at the goal
			// state so the caller (and any following phase) sees it.
			*solution = append(*solution, t)
			return result
		}
		cube.ApplyTwist(t.Inverse())
		if result.excess < minExcess {
			minExcess = result.excess
		}
	}
	return dfsResult{excess: minExcess}
}

func reverseTwists(twists []Twist) {
	for i, j := 0, len(twists)-1; i < j; i, j = i+1, j-1 {
		twists[i], twists[j] = twists[j], twists[i]
	}
}
