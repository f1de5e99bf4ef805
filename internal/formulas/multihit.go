package formulas

import "math"

// Roller is the subset of the battle RNG multi-hit resolution needs.
type Roller interface {
	Roll() float64
}

// ExtraHits converts a total multi-hit rating into the number of extra
// hits for one action. MHR is percent points: 250 means 2.5 expected
// extra hits. The integer part is guaranteed; the fractional part is
// resolved by a single roll, so the expectation matches MHR/100 exactly.
// Non-positive and whole-number ratings consume no roll: the draw count
// per action depends only on the rating, never on prior roll results.
func ExtraHits(totalMHR float64, r Roller) int {
	if totalMHR <= 0 {
		return 0
	}
	x := totalMHR / 100
	n := int(math.Floor(x))
	frac := x - float64(n)
	if frac > 0 && r.Roll() < frac {
		n++
	}
	return n
}

// TotalHits is ExtraHits plus the guaranteed main hit.
func TotalHits(totalMHR float64, r Roller) int {
	return 1 + ExtraHits(totalMHR, r)
}
