package formulas

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel reports a non-positive character level.
var ErrInvalidLevel = errors.New("formulas: invalid level")

// kBracket maps an inclusive level range onto its K constant.
type kBracket struct {
	lo, hi int
	k      float64
}

// kTable is the level-scaling constant used by mitigation, spell power
// and prototype gear. Brackets are inclusive on both ends.
var kTable = []kBracket{
	{1, 9, 4},
	{10, 19, 126},
	{20, 29, 358},
	{30, 39, 657},
	{40, 49, 1012},
	{50, 59, 1414},
	{60, 69, 1859},
	{70, 79, 2343},
	{80, 89, 2862},
	{90, 99, 3415},
	{100, 100, 4000},
}

// KForLevel returns the scaling constant K for a level. Levels past the
// top of the table clamp to the last bracket; level <= 0 is an error.
func KForLevel(level int) (float64, error) {
	if level <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	for _, b := range kTable {
		if level >= b.lo && level <= b.hi {
			return b.k, nil
		}
	}
	return kTable[len(kTable)-1].k, nil
}
