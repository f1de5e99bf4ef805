package data

import (
	"fmt"

	"github.com/grimward/arena9/internal/formulas"
)

// WeaponDef is a main-hand weapon definition. Ratios scale basic-attack
// damage per AoE position: MainRatio for the primary target, NearRatio
// for the first splash position, FarRatio for the second (line weapons
// only). AP behavior is expressed as ap_gain modifier lines so the AP
// formula needs no weapon-specific cases.
type WeaponDef struct {
	Key      string
	Range    WeaponRange
	AoE      AoEShape
	Location TargetLocation

	MainRatio float64
	NearRatio float64
	FarRatio  float64

	APMods []formulas.Modifier

	DefaultMods  []formulas.Modifier
	DefaultProcs []Proc

	Passives map[int]PassiveOption
}

// WeaponPackage is a weapon resolved for one build: targeting properties
// plus the merged default and chosen-passive mods/procs.
type WeaponPackage struct {
	Key           string
	PassiveChoice int // 0 when no passive picked
	PassiveName   string

	Range    WeaponRange
	AoE      AoEShape
	Location TargetLocation

	MainRatio float64
	NearRatio float64
	FarRatio  float64

	APMods []formulas.Modifier
	Mods   []formulas.Modifier
	Procs  []Proc
}

var weapons = map[string]WeaponDef{
	"Sword": {
		Key:       "Sword",
		Range:     RangeMelee,
		AoE:       AoESingle,
		Location:  LocationFrontline,
		MainRatio: 1.0,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagBase, Value: -20, Source: "Sword"},
		},
		DefaultMods: []formulas.Modifier{
			{Stat: SpecialSkillPoints, Tag: formulas.TagSpecial, Value: 30, Source: "Sword: default"},
		},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Retaliate chance 20%",
				Procs: []Proc{{Name: "retaliate_on_hit", ChancePct: 20}}},
			2: {ID: 2, Name: "All attributes +10%",
				Mods: []formulas.Modifier{
					{Stat: formulas.StatStr, Tag: formulas.TagInc, Value: 10, Source: "Sword: passive2"},
					{Stat: formulas.StatDex, Tag: formulas.TagInc, Value: 10, Source: "Sword: passive2"},
					{Stat: formulas.StatInt, Tag: formulas.TagInc, Value: 10, Source: "Sword: passive2"},
					{Stat: formulas.StatVit, Tag: formulas.TagInc, Value: 10, Source: "Sword: passive2"},
				}},
			3: {ID: 3, Name: "Attack +5% per turn, up to 40%",
				Procs: []Proc{{Name: "attack_ramp_per_turn", ChancePct: 100,
					Params: map[string]float64{"inc_per_turn_pct": 5, "cap_pct": 40}}}},
		},
	},
	"Spear": {
		Key:       "Spear",
		Range:     RangeMelee,
		AoE:       AoELine,
		Location:  LocationFrontline,
		MainRatio: 1.0,
		NearRatio: 0.5,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagBase, Value: -20, Source: "Spear"},
		},
		DefaultProcs: []Proc{{Name: "retaliate_on_hit", ChancePct: 40}},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Bleeding chance 25%",
				Procs: []Proc{{Name: "bleed_on_hit", ChancePct: 25,
					Params: map[string]float64{"duration": 1}}}},
			2: {ID: 2, Name: "Spear throw (no retaliate, aim second row)",
				Procs: []Proc{{Name: "spear_throw_mode", ChancePct: 100,
					Params: map[string]float64{"aim_row": 1}}}},
			3: {ID: 3, Name: "Final damage +20% per member advantage",
				Mods: []formulas.Modifier{
					{Stat: "fd_more_per_member_advantage_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Spear: passive3"},
				}},
		},
	},
	"Axe": {
		Key:       "Axe",
		Range:     RangeMelee,
		AoE:       AoERowAdjacent,
		Location:  LocationFrontline,
		MainRatio: 1.0,
		NearRatio: 0.5,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagLess, Value: 30, Source: "Axe"},
		},
		DefaultProcs: []Proc{{Name: "stun_on_hit", ChancePct: 20,
			Params: map[string]float64{"duration_turns": 1}}},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Damage vs non-melee +20%",
				Mods: []formulas.Modifier{
					{Stat: "dmg_more_vs_non_melee_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Axe: passive1"},
				}},
			2: {ID: 2, Name: "Final damage up to +20% at low HP",
				Mods: []formulas.Modifier{
					{Stat: "fd_ramp_when_hp_low_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Axe: passive2"},
				}},
			3: {ID: 3, Name: "Final damage +20% per member disadvantage",
				Mods: []formulas.Modifier{
					{Stat: "fd_more_per_member_disadvantage_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Axe: passive3"},
				}},
		},
	},
	"Gun": {
		Key:       "Gun",
		Range:     RangeRanged,
		AoE:       AoELine,
		Location:  LocationFrontline,
		MainRatio: 1.0,
		NearRatio: 0.5,
		FarRatio:  0.75,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagBase, Value: -10, Source: "Gun"},
		},
		DefaultProcs: []Proc{{Name: "pure_damage_on_hit", ChancePct: 20}},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Accuracy +10",
				Mods: []formulas.Modifier{
					{Stat: formulas.StatAccuracy, Tag: formulas.TagBase, Value: 10, Source: "Gun: passive1"},
				}},
			2: {ID: 2, Name: "Damage to cannon +20% more",
				Mods: []formulas.Modifier{
					{Stat: "dmg_more_vs_cannon_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Gun: passive2"},
				}},
			3: {ID: 3, Name: "Damage to caster +20% more",
				Mods: []formulas.Modifier{
					{Stat: "dmg_more_vs_caster_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Gun: passive3"},
				}},
		},
	},
	"Bow": {
		Key:       "Bow",
		Range:     RangeRanged,
		AoE:       AoESingle,
		Location:  LocationAnywhere,
		MainRatio: 1.0,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagBase, Value: -5, Source: "Bow"},
		},
		DefaultMods: []formulas.Modifier{
			{Stat: formulas.StatCritChance, Tag: formulas.TagBase, Value: 40, Source: "Bow: default"},
		},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Multi-hit rate +20 base",
				Mods: []formulas.Modifier{
					{Stat: formulas.StatMHR, Tag: formulas.TagBase, Value: 20, Source: "Bow: passive1"},
				}},
			2: {ID: 2, Name: "AP gain +10 base",
				Mods: []formulas.Modifier{
					{Stat: formulas.StatAPGain, Tag: formulas.TagBase, Value: 10, Source: "Bow: passive2"},
				}},
			3: {ID: 3, Name: "Final damage +5% per distance",
				Mods: []formulas.Modifier{
					{Stat: "fd_more_per_distance_pct", Tag: formulas.TagSpecial, Value: 5, Source: "Bow: passive3"},
				}},
		},
	},
	"Cannon": {
		Key:       "Cannon",
		Range:     RangeRanged,
		AoE:       AoECross,
		Location:  LocationAnywhere,
		MainRatio: 1.0,
		NearRatio: 0.5,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagLess, Value: 20, Source: "Cannon"},
		},
		DefaultProcs: []Proc{{Name: "ignore_guard_stance", ChancePct: 100}},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Shred = SP x 10",
				Procs: []Proc{{Name: "apply_shred_on_hit", ChancePct: 100,
					Params: map[string]float64{"multiplier": 10}}}},
			2: {ID: 2, Name: "Dull 10%",
				Procs: []Proc{{Name: "apply_dull_on_hit", ChancePct: 10}}},
			3: {ID: 3, Name: "Weaken 10%",
				Procs: []Proc{{Name: "apply_weaken_on_hit", ChancePct: 10}}},
		},
	},
	"Staff": {
		Key:       "Staff",
		Range:     RangeRanged,
		AoE:       AoECross,
		Location:  LocationFrontline,
		MainRatio: 1.0,
		NearRatio: 1.0,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagLess, Value: 20, Source: "Staff"},
		},
		DefaultMods: []formulas.Modifier{
			{Stat: SpecialSkillPoints, Tag: formulas.TagSpecial, Value: 30, Source: "Staff: default"},
		},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Attack damage +10% increased",
				Mods: []formulas.Modifier{
					{Stat: formulas.StatAttack, Tag: formulas.TagInc, Value: 10, Source: "Staff: passive1"},
				}},
			2: {ID: 2, Name: "Spell crit chance +20 base",
				Mods: []formulas.Modifier{
					{Stat: SpecialSpellCrit, Tag: formulas.TagSpecial, Value: 20, Source: "Staff: passive2"},
				}},
			3: {ID: 3, Name: "Healing crit +20%",
				Mods: []formulas.Modifier{
					{Stat: "healing_crit", Tag: formulas.TagSpecial, Value: 20, Source: "Staff: passive3"},
				}},
		},
	},
	"Wand": {
		Key:       "Wand",
		Range:     RangeRanged,
		AoE:       AoESingle,
		Location:  LocationFrontline,
		MainRatio: 1.0,
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagBase, Value: -10, Source: "Wand"},
		},
		DefaultMods: []formulas.Modifier{
			{Stat: SpecialSkillPoints, Tag: formulas.TagSpecial, Value: 30, Source: "Wand: default"},
		},
		Passives: map[int]PassiveOption{
			1: {ID: 1, Name: "Skill duration +1",
				Mods: []formulas.Modifier{
					{Stat: "skill_duration_plus", Tag: formulas.TagSpecial, Value: 1, Source: "Wand: passive1"},
				}},
			2: {ID: 2, Name: "Counterspell chance 10%",
				Procs: []Proc{{Name: "counterspell_on_enemy_cast", ChancePct: 10}}},
			3: {ID: 3, Name: "Mana cost -50%",
				Mods: []formulas.Modifier{
					{Stat: SpecialManaCostLess, Tag: formulas.TagSpecial, Value: 50, Source: "Wand: passive3"},
				}},
		},
	},
}

// WeaponKeys lists the weapon catalog keys in a stable order.
func WeaponKeys() []string {
	return []string{"Sword", "Spear", "Axe", "Gun", "Bow", "Cannon", "Staff", "Wand"}
}

// GetWeapon looks up a weapon definition by key.
func GetWeapon(key string) (WeaponDef, error) {
	w, ok := weapons[key]
	if !ok {
		return WeaponDef{}, fmt.Errorf("%w: weapon %q", ErrUnknownKey, key)
	}
	return w, nil
}

// BuildWeaponPackage resolves a weapon for one build, merging the default
// mods/procs with the chosen passive. passiveChoice 0 means no passive.
func BuildWeaponPackage(key string, passiveChoice int) (WeaponPackage, error) {
	w, err := GetWeapon(key)
	if err != nil {
		return WeaponPackage{}, err
	}

	pkg := WeaponPackage{
		Key:           w.Key,
		PassiveChoice: passiveChoice,
		Range:         w.Range,
		AoE:           w.AoE,
		Location:      w.Location,
		MainRatio:     w.MainRatio,
		NearRatio:     w.NearRatio,
		FarRatio:      w.FarRatio,
		APMods:        append([]formulas.Modifier(nil), w.APMods...),
		Mods:          append([]formulas.Modifier(nil), w.DefaultMods...),
		Procs:         append([]Proc(nil), w.DefaultProcs...),
	}

	if passiveChoice != 0 {
		p, ok := w.Passives[passiveChoice]
		if !ok {
			return WeaponPackage{}, fmt.Errorf("%w: weapon %q has no passive %d", ErrUnknownKey, key, passiveChoice)
		}
		pkg.PassiveName = p.Name
		pkg.Mods = append(pkg.Mods, p.Mods...)
		pkg.Procs = append(pkg.Procs, p.Procs...)
	}

	return pkg, nil
}
