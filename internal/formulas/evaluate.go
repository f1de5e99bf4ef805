package formulas

import "math"

// NoMin and NoMax disable the respective clamp bound in Evaluate.
var (
	NoMin = math.Inf(-1)
	NoMax = math.Inf(1)
)

// Evaluate combines every modifier line matching stat into a final value:
//
//	(base + sum of base lines)
//	  * (1 + sum of inc lines / 100)
//	  * product of (1 + more/100) over more lines
//	  * product of (1 + less/100) over less lines, less normalized to <= 0
//
// Values are percent points: inc 10 means +10%. A positive less value is
// treated as its negation, so 20 and -20 both mean "20% less". Lines with
// unknown tags (including special) are skipped. The result is clamped to
// [clampMin, clampMax]; pass NoMin/NoMax to leave a bound open.
func Evaluate(stat string, base float64, mods []Modifier, clampMin, clampMax float64) float64 {
	flat := base
	incSum := 0.0
	mult := 1.0

	for _, m := range mods {
		if m.Stat != stat {
			continue
		}
		switch m.Tag {
		case TagBase:
			flat += m.Value
		case TagInc:
			incSum += m.Value
		case TagMore:
			mult *= 1 + m.Value/100
		case TagLess:
			v := m.Value
			if v > 0 {
				v = -v
			}
			mult *= 1 + v/100
		}
	}

	out := flat * (1 + incSum/100) * mult
	if out < clampMin {
		out = clampMin
	}
	if out > clampMax {
		out = clampMax
	}
	return out
}
