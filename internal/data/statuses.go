package data

import "fmt"

// StatusDef is the pure data definition of a status effect.
//
// Durations count in two-turn units: remaining duration drops by 1 on
// every second team turn, and the instance expires when it reaches zero.
type StatusDef struct {
	Key      string
	Kind     StatusKind
	Positive bool

	Stackable        bool
	MaxStacks        int
	RefreshOnReapply bool

	DefaultDuration int

	// Generic numeric parameters, e.g. {"ap_base_delta": -10} for slow.
	// Instances may override them per application.
	Params map[string]float64

	Description string
}

var statuses = map[string]StatusDef{
	"immunity": {
		Key: "immunity", Kind: KindBuff, Positive: true,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 4,
		Description: "Immune to spells and debuffs.",
	},
	"silence": {
		Key: "silence", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Description: "Cannot use active skills.",
	},
	"disarm": {
		Key: "disarm", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Description: "Cannot use basic attacks.",
	},
	"break": {
		Key: "break", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Description: "Disables passive skills and talent bonuses.",
	},
	"panic": {
		Key: "panic", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"skill_damage_less_pct": 0},
		Description: "Skill damage reduced by X% (less).",
	},
	"weaken": {
		Key: "weaken", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"attack_damage_less_pct": 0},
		Description: "Attack damage reduced by X% (less).",
	},
	"slow": {
		Key: "slow", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"ap_base_delta": 0},
		Description: "AP gain base reduced at turn start.",
	},
	"bleeding": {
		Key: "bleeding", Kind: KindDOT,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"dot_ratio_of_last_triggered_hit": 0.30},
		Description: "At turn start, take 30% of the triggering hit's damage.",
	},
	"shred": {
		Key: "shred", Kind: KindDebuff,
		Stackable: true, MaxStacks: 5, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"armour_base_delta": 0},
		Description: "Armour reduced by X (base).",
	},
	"sunder": {
		Key: "sunder", Kind: KindDebuff,
		Stackable: true, MaxStacks: 5, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"mr_base_delta": 0},
		Description: "Magic resistance reduced by X (base).",
	},
	"immobilized": {
		Key: "immobilized", Kind: KindControl,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Description: "Cannot act.",
	},
	"stun": {
		Key: "stun", Kind: KindControl,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Description: "Cannot act and gains no AP at turn start.",
	},
	"dull": {
		Key: "dull", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"accuracy_inc_pct": 0},
		Description: "Accuracy reduced by X% (increased is negative).",
	},
	"brand": {
		Key: "brand", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"damage_taken_more_pct": 0},
		Description: "Damage received increased by X% (more).",
	},
	"chill": {
		Key: "chill", Kind: KindDebuff,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"ap_base_delta": -5, "mhr_base_delta": -10},
		Description: "AP base -5 at turn start; multi-hit rate base -10.",
	},
	"deliberate": {
		Key: "deliberate", Kind: KindBuff, Positive: true,
		MaxStacks: 1, RefreshOnReapply: true, DefaultDuration: 1,
		Params:      map[string]float64{"neglect_chance_base_delta": 0},
		Description: "Neglect chance increased by X% base.",
	},
}

// StatusKeys lists the status catalog keys in a stable order.
func StatusKeys() []string {
	return []string{
		"immunity", "silence", "disarm", "break", "panic", "weaken",
		"slow", "bleeding", "shred", "sunder", "immobilized", "stun",
		"dull", "brand", "chill", "deliberate",
	}
}

// GetStatus looks up a status definition by key.
func GetStatus(key string) (StatusDef, error) {
	d, ok := statuses[key]
	if !ok {
		return StatusDef{}, fmt.Errorf("%w: status %q", ErrUnknownKey, key)
	}
	return d, nil
}
