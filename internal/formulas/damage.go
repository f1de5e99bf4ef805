package formulas

// Mitigation converts a defense value (armour or magic resist) into a
// damage reduction fraction:
//
//	defense / (defense + K)
//
// clamped to [0, 0.95]. Non-positive defense mitigates nothing.
func Mitigation(defense, k float64) float64 {
	if defense <= 0 {
		return 0
	}
	m := defense / (defense + k)
	if m < 0 {
		m = 0
	}
	if m > 0.95 {
		m = 0.95
	}
	return m
}

// ApplyMitigation reduces raw damage by the mitigation fraction.
func ApplyMitigation(raw, mitigation float64) float64 {
	out := raw * (1 - mitigation)
	if out < 0 {
		out = 0
	}
	return out
}

// CritMultiplier converts a crit-damage stat in percent points into the
// multiplier applied on a critical hit. 150 means x1.5; values below zero
// clamp to zero rather than healing the target.
func CritMultiplier(critDamagePct float64) float64 {
	m := critDamagePct / 100
	if m < 0 {
		m = 0
	}
	return m
}

// RawAttackDamage is the pre-mitigation damage of one basic-attack hit:
// attack scaled by the weapon ratio for the target's position in the AoE
// pattern, then the crit multiplier when the hit crit.
func RawAttackDamage(attack, ratio float64, crit bool, critDamagePct float64) float64 {
	raw := attack * ratio
	if crit {
		raw *= CritMultiplier(critDamagePct)
	}
	if raw < 0 {
		raw = 0
	}
	return raw
}
