package cube

// Simplify collapses an algorithm by combining adjacent twists on the same
// face and, where possible, combining a twist with one two steps back when
// the intervening twist is on the opposite face (the two commute, so they
// can be reordered next to each other). Twists that cancel out entirely are
// dropped.
func Simplify(alg Algorithm) Algorithm {
	simplified := make([]Twist, 0, len(alg.Twists))

	for _, twist := range alg.Twists {
		if twist.Direction == Identity {
			continue
		}

		pushTwist := true
		n := len(simplified)

		if n > 0 {
			last := simplified[n-1]
			lastFace := last.Face

			if combined, ok := last.Compose(twist); ok {
				if combined.Direction == Identity {
					simplified = simplified[:n-1]
				} else {
					simplified[n-1] = combined
				}
				pushTwist = false
			} else if n >= 2 {
				secondLast := simplified[n-2]
				if secondLast.Face == lastFace.Opposite() {
					if combined, ok := secondLast.Compose(twist); ok {
						if combined.Direction == Identity {
							simplified = append(simplified[:n-2], simplified[n-1])
						} else {
							simplified[n-2] = combined
						}
						pushTwist = false
					}
				}
			}
		}

		if pushTwist {
			simplified = append(simplified, twist)
		}
	}

	return Algorithm{Twists: simplified}
}
