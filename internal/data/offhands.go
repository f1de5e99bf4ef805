package data

import (
	"fmt"

	"github.com/grimward/arena9/internal/formulas"
)

// scaledMod is a modifier line whose value may be expressed as a
// percentage of the level constant K ("10%K base"). KPct 0 means the
// value is already concrete.
type scaledMod struct {
	Mod  formulas.Modifier
	KPct float64
}

func kScaled(stat string, tag formulas.Tag, kPct float64, source string) scaledMod {
	return scaledMod{
		Mod:  formulas.Modifier{Stat: stat, Tag: tag, Value: 1, Source: source},
		KPct: kPct,
	}
}

func plain(m formulas.Modifier) scaledMod {
	return scaledMod{Mod: m}
}

// offhandPassive mirrors PassiveOption but allows K-scaled mod lines.
type offhandPassive struct {
	ID    int
	Name  string
	Mods  []scaledMod
	Procs []Proc
}

// OffhandDef is an off-hand item definition. Like weapons, AP behavior
// is carried as ap_gain modifier lines.
type OffhandDef struct {
	Key string

	APMods []formulas.Modifier

	defaultMods  []scaledMod
	defaultProcs []Proc

	passives map[int]offhandPassive
}

// OffhandPackage is an offhand resolved for one build at a concrete K:
// every K-scaled line has been turned into a plain modifier.
type OffhandPackage struct {
	Key           string
	PassiveChoice int
	PassiveName   string

	APMods []formulas.Modifier
	Mods   []formulas.Modifier
	Procs  []Proc
}

var offhands = map[string]OffhandDef{
	"MaintainKit": {
		Key: "MaintainKit",
		defaultMods: []scaledMod{
			// +40% of the main weapon's base damage, not +0.40*K.
			plain(formulas.Modifier{Stat: SpecialWeaponDmgPct, Tag: formulas.TagSpecial, Value: 0.40, Source: "MaintainKit: default"}),
		},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "Accuracy +10",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: formulas.StatAccuracy, Tag: formulas.TagBase, Value: 10, Source: "MaintainKit: passive1"})}},
			2: {ID: 2, Name: "Attributes +10%K base each",
				Mods: []scaledMod{
					kScaled(formulas.StatStr, formulas.TagBase, 0.10, "MaintainKit: passive2"),
					kScaled(formulas.StatDex, formulas.TagBase, 0.10, "MaintainKit: passive2"),
					kScaled(formulas.StatInt, formulas.TagBase, 0.10, "MaintainKit: passive2"),
					kScaled(formulas.StatVit, formulas.TagBase, 0.10, "MaintainKit: passive2"),
				}},
			3: {ID: 3, Name: "Basic attack AoE penalty -10%",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: SpecialAoEPenaltyRed, Tag: formulas.TagSpecial, Value: 10, Source: "MaintainKit: passive3"})}},
		},
	},
	"Shield": {
		Key: "Shield",
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagLess, Value: 20, Source: "Shield"},
		},
		defaultMods: []scaledMod{
			plain(formulas.Modifier{Stat: SpecialBlockChance, Tag: formulas.TagSpecial, Value: 20, Source: "Shield: default"}),
		},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "Allies behind take 20% less skill damage",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: "allies_behind_skill_damage_less_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Shield: passive1"})}},
			2: {ID: 2, Name: "Behind ally block chain 50%",
				Procs: []Proc{{Name: "block_chain_behind", ChancePct: 100,
					Params: map[string]float64{"behind_block_share_pct": 50}}}},
			3: {ID: 3, Name: "Guard effectiveness +20%",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: "guard_effectiveness_pct", Tag: formulas.TagSpecial, Value: 20, Source: "Shield: passive3"})}},
		},
	},
	"Orb": {
		Key:          "Orb",
		defaultProcs: []Proc{{Name: "start_immunity", ChancePct: 100, Params: map[string]float64{"turns": 4}}},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "Energy shield = INT x 20",
				Procs: []Proc{{Name: "energy_shield", ChancePct: 100, Params: map[string]float64{"int_multiplier": 20}}}},
			2: {ID: 2, Name: "Mana shield (50% absorb, 2x mana)",
				Procs: []Proc{{Name: "mana_shield", ChancePct: 100,
					Params: map[string]float64{"absorb_pct": 50, "mana_cost_multiplier": 2}}}},
			3: {ID: 3, Name: "Skill check",
				Procs: []Proc{{Name: "orb_skill_check", ChancePct: 100}}},
		},
	},
	"Book": {
		Key: "Book",
		APMods: []formulas.Modifier{
			{Stat: formulas.StatAPGain, Tag: formulas.TagLess, Value: 10, Source: "Book"},
		},
		defaultMods: []scaledMod{
			plain(formulas.Modifier{Stat: SpecialSkillPoints, Tag: formulas.TagSpecial, Value: 30, Source: "Book: default"}),
		},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "Talent point +1",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: "talent_points", Tag: formulas.TagSpecial, Value: 1, Source: "Book: passive1"})}},
			2: {ID: 2, Name: "INT +10%",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: formulas.StatInt, Tag: formulas.TagInc, Value: 10, Source: "Book: passive2"})}},
			3: {ID: 3, Name: "Ignore neglect",
				Procs: []Proc{{Name: "ignore_neglect", ChancePct: 100}}},
		},
	},
	"Quiver": {
		Key: "Quiver",
		defaultMods: []scaledMod{
			plain(formulas.Modifier{Stat: formulas.StatAccuracy, Tag: formulas.TagBase, Value: 20, Source: "Quiver: default"}),
		},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "Critical damage +25",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: formulas.StatCritDamage, Tag: formulas.TagBase, Value: 25, Source: "Quiver: passive1"})}},
			2: {ID: 2, Name: "Apply Slow on hit",
				Procs: []Proc{{Name: "apply_slow", ChancePct: 100, Params: map[string]float64{"slow_ap_base_delta": -10}}}},
			3: {ID: 3, Name: "Split Arrow (all arrows 50% damage)",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: SpecialSplitArrow, Tag: formulas.TagSpecial, Value: 0.50, Source: "Quiver: passive3"})}},
		},
	},
	"Bullet": {
		Key: "Bullet",
		defaultMods: []scaledMod{
			plain(formulas.Modifier{Stat: formulas.StatAttack, Tag: formulas.TagInc, Value: 20, Source: "Bullet: default"}),
		},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "Critical damage +25",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: formulas.StatCritDamage, Tag: formulas.TagBase, Value: 25, Source: "Bullet: passive1"})}},
			2: {ID: 2, Name: "Enemy AP -5 per hit",
				Procs: []Proc{{Name: "drain_enemy_ap_on_hit", ChancePct: 100, Params: map[string]float64{"ap_drain_flat": 5}}}},
			3: {ID: 3, Name: "Stun chance 5%",
				Procs: []Proc{{Name: "stun_on_hit", ChancePct: 5, Params: map[string]float64{"duration_turns": 1}}}},
		},
	},
	"CannonBall": {
		Key: "CannonBall",
		defaultMods: []scaledMod{
			plain(formulas.Modifier{Stat: formulas.StatMHR, Tag: formulas.TagBase, Value: -20, Source: "CannonBall: default"}),
			plain(formulas.Modifier{Stat: formulas.StatAttack, Tag: formulas.TagInc, Value: 40, Source: "CannonBall: default"}),
		},
		passives: map[int]offhandPassive{
			1: {ID: 1, Name: "DEX -10%, STR +20%",
				Mods: []scaledMod{
					plain(formulas.Modifier{Stat: formulas.StatDex, Tag: formulas.TagInc, Value: -10, Source: "CannonBall: passive1"}),
					plain(formulas.Modifier{Stat: formulas.StatStr, Tag: formulas.TagInc, Value: 20, Source: "CannonBall: passive1"}),
				}},
			2: {ID: 2, Name: "Final damage +20% when army equal",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: "final_damage_more_when_equal_army_pct", Tag: formulas.TagSpecial, Value: 20, Source: "CannonBall: passive2"})}},
			3: {ID: 3, Name: "Basic attack AoE penalty -10%",
				Mods: []scaledMod{plain(formulas.Modifier{Stat: SpecialAoEPenaltyRed, Tag: formulas.TagSpecial, Value: 10, Source: "CannonBall: passive3"})}},
		},
	},
}

// OffhandKeys lists the offhand catalog keys in a stable order.
func OffhandKeys() []string {
	return []string{"MaintainKit", "Shield", "Orb", "Book", "Quiver", "Bullet", "CannonBall"}
}

// GetOffhand looks up an offhand definition by key.
func GetOffhand(key string) (OffhandDef, error) {
	d, ok := offhands[key]
	if !ok {
		return OffhandDef{}, fmt.Errorf("%w: offhand %q", ErrUnknownKey, key)
	}
	return d, nil
}

func resolveScaled(mods []scaledMod, k float64) []formulas.Modifier {
	out := make([]formulas.Modifier, 0, len(mods))
	for _, sm := range mods {
		m := sm.Mod
		if sm.KPct != 0 {
			m.Value = m.Value * sm.KPct * k
		}
		out = append(out, m)
	}
	return out
}

// BuildOffhandPackage resolves an offhand for one build at level constant
// k, merging defaults with the chosen passive and concretizing K-scaled
// lines. passiveChoice 0 means no passive.
func BuildOffhandPackage(key string, passiveChoice int, k float64) (OffhandPackage, error) {
	d, err := GetOffhand(key)
	if err != nil {
		return OffhandPackage{}, err
	}

	pkg := OffhandPackage{
		Key:           d.Key,
		PassiveChoice: passiveChoice,
		APMods:        append([]formulas.Modifier(nil), d.APMods...),
		Mods:          resolveScaled(d.defaultMods, k),
		Procs:         append([]Proc(nil), d.defaultProcs...),
	}

	if passiveChoice != 0 {
		p, ok := d.passives[passiveChoice]
		if !ok {
			return OffhandPackage{}, fmt.Errorf("%w: offhand %q has no passive %d", ErrUnknownKey, key, passiveChoice)
		}
		pkg.PassiveName = p.Name
		pkg.Mods = append(pkg.Mods, resolveScaled(p.Mods, k)...)
		pkg.Procs = append(pkg.Procs, p.Procs...)
	}

	return pkg, nil
}
