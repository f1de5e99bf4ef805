// Package data holds the static game catalogs: weapons, offhands, status
// effects, active skills and gear construction. Catalogs are plain Go
// literals resolved at package init; they carry no behavior beyond key
// lookup and package assembly. All values are max-roll.
package data

import "github.com/grimward/arena9/internal/formulas"

// WeaponRange separates melee from ranged weapons. Some procs and
// special modifiers key off it.
type WeaponRange string

const (
	RangeMelee  WeaponRange = "melee"
	RangeRanged WeaponRange = "ranged"
)

// AoEShape names the splash pattern of a basic attack or skill.
type AoEShape string

const (
	// AoESingle hits only the primary target.
	AoESingle AoEShape = "single"
	// AoERowAdjacent adds the left/right neighbors in the target's row.
	AoERowAdjacent AoEShape = "row_adjacent"
	// AoECross adds the four orthogonal neighbors.
	AoECross AoEShape = "cross"
	// AoELine adds the slots directly behind the target in its line.
	AoELine AoEShape = "line"
)

// TargetLocation restricts which enemy slots a weapon or skill may pick
// as the primary target.
type TargetLocation string

const (
	// LocationAnywhere allows any living enemy.
	LocationAnywhere TargetLocation = "anywhere"
	// LocationFrontline allows only exposed frontline units.
	LocationFrontline TargetLocation = "frontline"
	// LocationSelf targets the acting unit.
	LocationSelf TargetLocation = "self"
)

// StatusKind is a coarse grouping of status effects.
type StatusKind string

const (
	KindBuff    StatusKind = "buff"
	KindDebuff  StatusKind = "debuff"
	KindControl StatusKind = "control"
	KindDOT     StatusKind = "dot"
	KindSpecial StatusKind = "special"
)

// Proc is a non-stat effect attached to a weapon, offhand or skill:
// on-hit statuses, conditional damage, battle-start buffs. The battle
// engine interprets procs by name; unknown names are ignored.
type Proc struct {
	Name      string
	ChancePct float64 // roll chance in percent, 100 = always
	Params    map[string]float64
}

// PassiveOption is one of the three selectable passives of a weapon or
// offhand. A build picks exactly one (or none).
type PassiveOption struct {
	ID    int
	Name  string
	Mods  []formulas.Modifier
	Procs []Proc
}

// Special modifier stat keys carried on TagSpecial lines. Evaluate skips
// them; dedicated engine rules may consume them.
const (
	SpecialSkillPoints   = "skill_points"
	SpecialSpellCrit     = "spell_crit_chance"
	SpecialWeaponDmgPct  = "weapon_damage_base_pct"
	SpecialAoEPenaltyRed = "basic_aoe_penalty_reduction_pct"
	SpecialManaCostLess  = "mana_cost_less_pct"
	SpecialBlockChance   = "block_chance"
	SpecialSplitArrow    = "split_arrow_damage_ratio"
)
