package cube

import "math/rand/v2"

// RandomScramble generates a random algorithm of length n twists, using the
// same adjacency rule the solver's search obeys so that no twist is
// immediately undone or made redundant by its predecessor.
func RandomScramble(n int) Algorithm {
	twists := make([]Twist, 0, n)
	hasPrev := false
	var prevFace Face
	for i := 0; i < n; i++ {
		candidates := AllowedFrom(AllTwists, hasPrev, prevFace)
		t := candidates[rand.IntN(len(candidates))]
		twists = append(twists, t)
		hasPrev = true
		prevFace = t.Face
	}
	return Algorithm{Twists: twists}
}
