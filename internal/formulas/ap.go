package formulas

import "math"

// APGainBase is the flat AP every living unit earns at the start of its
// team's turn, before modifiers.
const APGainBase = 100.0

// APGain evaluates the per-turn AP gain through the modifier pipeline on
// the "ap_gain" stat, rounded to the nearest integer and never negative.
// Weapons express their speed as ap_gain lines (a Sword carries
// {ap_gain, base, -20}, an Axe {ap_gain, less, 30}, a Gun
// {ap_gain, more, 35}).
func APGain(mods []Modifier) int {
	v := Evaluate(StatAPGain, APGainBase, mods, 0, NoMax)
	return int(math.Round(v))
}
