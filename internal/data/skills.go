package data

import "fmt"

// ActiveSkill is a castable skill definition. Skill damage scales off the
// caster's attack through Ratio and is amplified by spell power; it is
// mitigated by the target's magic resistance, not armour.
//
// Skills begin every battle on cooldown at their full Cooldown value.
type ActiveSkill struct {
	Key  string
	Name string

	APCost   int
	MPCost   int
	Cooldown int

	AoE      AoEShape
	Location TargetLocation

	Ratio     float64 // attack multiplier of the primary hit
	SplashPct float64 // splash positions deal this fraction of the primary

	Procs []Proc
}

var activeSkills = map[string]ActiveSkill{
	"crushing_blow": {
		Key: "crushing_blow", Name: "Crushing Blow",
		APCost: 150, Cooldown: 2,
		AoE: AoESingle, Location: LocationFrontline,
		Ratio: 1.8,
		Procs: []Proc{{Name: "stun_on_hit", ChancePct: 30, Params: map[string]float64{"duration_turns": 1}}},
	},
	"piercing_lance": {
		Key: "piercing_lance", Name: "Piercing Lance",
		APCost: 130, Cooldown: 2,
		AoE: AoELine, Location: LocationFrontline,
		Ratio: 1.2, SplashPct: 0.5,
		Procs: []Proc{{Name: "bleed_on_hit", ChancePct: 50, Params: map[string]float64{"duration": 1}}},
	},
	"fireball": {
		Key: "fireball", Name: "Fireball",
		APCost: 120, MPCost: 300, Cooldown: 3,
		AoE: AoECross, Location: LocationAnywhere,
		Ratio: 1.5, SplashPct: 0.5,
		Procs: []Proc{{Name: "apply_brand_on_hit", ChancePct: 30, Params: map[string]float64{"damage_taken_more_pct": 20}}},
	},
	"frost_nova": {
		Key: "frost_nova", Name: "Frost Nova",
		APCost: 120, MPCost: 250, Cooldown: 3,
		AoE: AoERowAdjacent, Location: LocationFrontline,
		Ratio: 1.0, SplashPct: 0.75,
		Procs: []Proc{{Name: "apply_chill_on_hit", ChancePct: 100}},
	},
	"arcane_seal": {
		Key: "arcane_seal", Name: "Arcane Seal",
		APCost: 100, MPCost: 200, Cooldown: 4,
		AoE: AoESingle, Location: LocationAnywhere,
		Ratio: 0.6,
		Procs: []Proc{{Name: "apply_silence_on_hit", ChancePct: 100}},
	},
}

// SkillKeys lists the skill catalog keys in a stable order.
func SkillKeys() []string {
	return []string{"crushing_blow", "piercing_lance", "fireball", "frost_nova", "arcane_seal"}
}

// GetActiveSkill looks up an active skill by key.
func GetActiveSkill(key string) (ActiveSkill, error) {
	s, ok := activeSkills[key]
	if !ok {
		return ActiveSkill{}, fmt.Errorf("%w: skill %q", ErrUnknownKey, key)
	}
	return s, nil
}
