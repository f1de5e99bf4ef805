package targeting

import (
	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/grid"
)

// AoETarget is one slot hit by an AoE pattern with its damage ratio.
type AoETarget struct {
	Slot  int
	Ratio float64
}

func dedupeKeepFirst(targets []AoETarget) []AoETarget {
	seen := make(map[int]bool, len(targets))
	out := targets[:0]
	for _, t := range targets {
		if seen[t.Slot] {
			continue
		}
		seen[t.Slot] = true
		out = append(out, t)
	}
	return out
}

// ExpandAoE turns a primary slot and an AoE shape into the ordered list
// of hit slots with their ratios. The primary always comes first at
// ratio 1.0; order is deterministic per shape. Slots are geometry only,
// the caller filters for living units.
//
// Line pierce is data-driven by the two ratios: the cell directly behind
// takes farRatio when set (three-cell weapons like the Gun), otherwise
// nearRatio (two-cell weapons like the Spear); the second cell behind is
// hit at nearRatio only by three-cell weapons.
func ExpandAoE(primary int, shape data.AoEShape, nearRatio, farRatio float64) []AoETarget {
	out := []AoETarget{{Slot: primary, Ratio: 1.0}}

	switch shape {
	case data.AoERowAdjacent:
		for _, s := range grid.RowNeighbors(primary) {
			out = append(out, AoETarget{Slot: s, Ratio: nearRatio})
		}
	case data.AoECross:
		for _, s := range grid.CrossNeighbors(primary) {
			out = append(out, AoETarget{Slot: s, Ratio: nearRatio})
		}
	case data.AoELine:
		behind1, ok1 := grid.BehindInLine(primary, 1)
		if ok1 {
			r := farRatio
			if r == 0 {
				r = nearRatio
			}
			out = append(out, AoETarget{Slot: behind1, Ratio: r})
		}
		if farRatio != 0 {
			if behind2, ok := grid.BehindInLine(primary, 2); ok {
				out = append(out, AoETarget{Slot: behind2, Ratio: nearRatio})
			}
		}
	}

	return dedupeKeepFirst(out)
}
