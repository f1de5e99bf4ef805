// Package formulas holds the pure combat math: the generic stat-modifier
// evaluation pipeline, attribute derivation, the level-scaled K table,
// mitigation/crit/raw-damage formulas, multi-hit resolution and AP gain.
// Everything here is deterministic given its inputs; the only randomness
// is the single multi-hit roll, which takes an explicit rng.Source.
package formulas

import (
	"errors"
	"fmt"
	"math"
)

// Tag describes how a modifier line combines into a stat.
type Tag string

const (
	// TagBase adds a flat amount to the stat's base value.
	TagBase Tag = "base"
	// TagInc is "+X% increased": additive among all inc lines, in
	// percent points (10 means +10%).
	TagInc Tag = "inc"
	// TagMore is "+X% more": each line multiplies independently.
	TagMore Tag = "more"
	// TagLess is "X% less": each line multiplies independently. Values
	// are normalized to be <= 0 before use, so +20 and -20 both mean
	// "20% less".
	TagLess Tag = "less"
	// TagSpecial marks lines handled by dedicated rules (procs, custom
	// mechanics). Evaluate ignores them.
	TagSpecial Tag = "special"
)

// Stat keys used across catalogs, the stat builder and the scheduler.
const (
	StatHP           = "hp"
	StatMP           = "mp"
	StatAttack       = "attack"
	StatArmour       = "armour"
	StatMR           = "mr"
	StatMHR          = "mhr"
	StatCritChance   = "crit_chance"
	StatCritDamage   = "crit_damage"
	StatAccuracy     = "accuracy"
	StatEvasion      = "evasion"
	StatSkillEvasion = "skill_evasion"
	StatAPGain       = "ap_gain"

	StatStr = "str"
	StatDex = "dex"
	StatInt = "int"
	StatVit = "vit"
)

// ErrUnsupportedModifier reports a malformed modifier line.
var ErrUnsupportedModifier = errors.New("formulas: unsupported modifier")

// Modifier is a single stat-modifier line. Many lines from gear, weapons,
// offhands and statuses combine per stat through Evaluate.
type Modifier struct {
	Stat   string
	Tag    Tag
	Value  float64
	Source string // provenance, for logs and debugging
}

// Validate rejects modifier lines the pipeline cannot combine.
// Unknown tags are deliberately NOT an error (forward compatibility);
// they are skipped by Evaluate.
func (m Modifier) Validate() error {
	if m.Stat == "" {
		return fmt.Errorf("%w: empty stat key (source %q)", ErrUnsupportedModifier, m.Source)
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return fmt.Errorf("%w: non-finite value for %q (source %q)", ErrUnsupportedModifier, m.Stat, m.Source)
	}
	return nil
}

// ValidateAll validates every line in mods.
func ValidateAll(mods []Modifier) error {
	for _, m := range mods {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}
