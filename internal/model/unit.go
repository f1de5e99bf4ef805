// Package model holds the battle runtime objects: units with their
// builds and computed stats, the two-sided board, and the battle state
// shared by the scheduler and engine.
package model

import (
	"fmt"

	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/formulas"
	"github.com/grimward/arena9/internal/grid"
	"github.com/grimward/arena9/internal/status"
)

// Team identifies one of the two sides.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Opponent returns the other team.
func Opponent(t Team) Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// BaseAttributes are a unit's own numbers before any gear or status:
// level, the four primary attributes and the rate defaults.
type BaseAttributes struct {
	Level int
	Str   float64
	Dex   float64
	Int   float64
	Vit   float64

	CritChance   float64 // %
	CritDamage   float64 // %
	Accuracy     float64 // %
	Evasion      float64 // %
	SkillEvasion float64 // %
}

// DefaultBase returns BaseAttributes with the standard rate defaults:
// 5% crit chance, 150% crit damage, 100 accuracy.
func DefaultBase(level int, str, dex, intl, vit float64) BaseAttributes {
	return BaseAttributes{
		Level:      level,
		Str:        str,
		Dex:        dex,
		Int:        intl,
		Vit:        vit,
		CritChance: 5,
		CritDamage: 150,
		Accuracy:   100,
	}
}

// Build defines how a unit is equipped: weapon and offhand with chosen
// passives (0 = none), gear, and known active skills.
type Build struct {
	WeaponKey      string
	WeaponPassive  int
	OffhandKey     string // empty = no offhand
	OffhandPassive int
	Gear           data.GearSet
	Skills         []string
}

// Stats is the computed stat snapshot used by combat. Rates are percent
// points.
type Stats struct {
	HPMax  float64
	MPMax  float64
	Attack float64
	Armour float64
	MR     float64

	MHR          float64
	CritChance   float64
	CritDamage   float64
	Accuracy     float64
	Evasion      float64
	SkillEvasion float64

	SpellPower float64
	APGain     float64
}

// Unit is one battle participant.
type Unit struct {
	ID   string // "A-1"
	Team Team
	Slot int

	Base  BaseAttributes
	Build Build

	Stats Stats
	K     float64

	HP float64
	MP float64
	AP float64

	Statuses  map[string]*status.Instance
	Cooldowns map[string]int

	weapon  data.WeaponPackage
	offhand *data.OffhandPackage
}

// NewUnit builds a unit from its base attributes and build, resolving
// catalog packages and computing the initial stat snapshot. Bad slots,
// bad levels and unknown catalog keys are errors.
func NewUnit(team Team, slot int, base BaseAttributes, build Build) (*Unit, error) {
	if err := grid.Require(slot); err != nil {
		return nil, err
	}
	k, err := formulas.KForLevel(base.Level)
	if err != nil {
		return nil, fmt.Errorf("unit %s-%d: %w", team, slot, err)
	}

	wpkg, err := data.BuildWeaponPackage(build.WeaponKey, build.WeaponPassive)
	if err != nil {
		return nil, fmt.Errorf("unit %s-%d: %w", team, slot, err)
	}

	var opkg *data.OffhandPackage
	if build.OffhandKey != "" {
		pkg, err := data.BuildOffhandPackage(build.OffhandKey, build.OffhandPassive, k)
		if err != nil {
			return nil, fmt.Errorf("unit %s-%d: %w", team, slot, err)
		}
		opkg = &pkg
	}

	for _, sk := range build.Skills {
		if _, err := data.GetActiveSkill(sk); err != nil {
			return nil, fmt.Errorf("unit %s-%d: %w", team, slot, err)
		}
	}

	u := &Unit{
		ID:        fmt.Sprintf("%s-%d", team, slot),
		Team:      team,
		Slot:      slot,
		Base:      base,
		Build:     build,
		K:         k,
		Statuses:  make(map[string]*status.Instance),
		Cooldowns: make(map[string]int),
		weapon:    wpkg,
		offhand:   opkg,
	}
	u.RecomputeStats()
	return u, nil
}

// Weapon returns the unit's resolved weapon package.
func (u *Unit) Weapon() data.WeaponPackage {
	return u.weapon
}

// Offhand returns the resolved offhand package, ok=false when none.
func (u *Unit) Offhand() (data.OffhandPackage, bool) {
	if u.offhand == nil {
		return data.OffhandPackage{}, false
	}
	return *u.offhand, true
}

// IsAlive reports whether the unit can still fight.
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}

// CollectMods gathers every stat-modifier line affecting this unit:
// gear, weapon and offhand, in that order.
func (u *Unit) CollectMods() []formulas.Modifier {
	var mods []formulas.Modifier
	mods = append(mods, u.Build.Gear.AllMods()...)
	mods = append(mods, u.weapon.Mods...)
	if u.offhand != nil {
		mods = append(mods, u.offhand.Mods...)
	}
	return mods
}

// APMods gathers the ap_gain lines from weapon, offhand and general mods.
func (u *Unit) APMods() []formulas.Modifier {
	var mods []formulas.Modifier
	mods = append(mods, u.weapon.APMods...)
	if u.offhand != nil {
		mods = append(mods, u.offhand.APMods...)
	}
	mods = append(mods, u.CollectMods()...)
	return mods
}

// RecomputeStats rebuilds the stat snapshot from base attributes and
// equipment through the modifier pipeline. Attributes are evaluated
// first so attribute mods feed the derivation. Idempotent: repeated
// calls with unchanged inputs produce the same snapshot. Current HP/MP
// are initialized only when non-positive, so mid-battle recomputes never
// heal.
func (u *Unit) RecomputeStats() Stats {
	mods := u.CollectMods()

	str := formulas.Evaluate(formulas.StatStr, u.Base.Str, mods, 0, formulas.NoMax)
	dex := formulas.Evaluate(formulas.StatDex, u.Base.Dex, mods, 0, formulas.NoMax)
	intl := formulas.Evaluate(formulas.StatInt, u.Base.Int, mods, 0, formulas.NoMax)
	vit := formulas.Evaluate(formulas.StatVit, u.Base.Vit, mods, 0, formulas.NoMax)

	d := formulas.DeriveAttributes(str, dex, intl, vit, u.K)

	st := Stats{
		HPMax:  formulas.Evaluate(formulas.StatHP, d.HP, mods, 1, formulas.NoMax),
		MPMax:  formulas.Evaluate(formulas.StatMP, d.MP, mods, 0, formulas.NoMax),
		Attack: formulas.Evaluate(formulas.StatAttack, d.Attack, mods, 0, formulas.NoMax),
		Armour: formulas.Evaluate(formulas.StatArmour, 0, mods, 0, formulas.NoMax),
		MR:     formulas.Evaluate(formulas.StatMR, d.MR, mods, 0, formulas.NoMax),

		MHR:          formulas.Evaluate(formulas.StatMHR, d.MultiHit, mods, 0, formulas.NoMax),
		CritChance:   formulas.Evaluate(formulas.StatCritChance, u.Base.CritChance, mods, 0, formulas.NoMax),
		CritDamage:   formulas.Evaluate(formulas.StatCritDamage, u.Base.CritDamage, mods, 0, formulas.NoMax),
		Accuracy:     formulas.Evaluate(formulas.StatAccuracy, u.Base.Accuracy, mods, 0, formulas.NoMax),
		Evasion:      formulas.Evaluate(formulas.StatEvasion, u.Base.Evasion, mods, 0, formulas.NoMax),
		SkillEvasion: formulas.Evaluate(formulas.StatSkillEvasion, u.Base.SkillEvasion, mods, 0, formulas.NoMax),

		SpellPower: d.SpellPower,
		APGain:     formulas.Evaluate(formulas.StatAPGain, formulas.APGainBase, u.APMods(), 0, formulas.NoMax),
	}
	u.Stats = st

	if u.HP <= 0 {
		u.HP = st.HPMax
	}
	if u.MP <= 0 {
		u.MP = st.MPMax
	}
	return st
}

// ApplyDamage reduces HP, flooring at zero.
func (u *Unit) ApplyDamage(amount float64) {
	if amount <= 0 {
		return
	}
	u.HP -= amount
	if u.HP < 0 {
		u.HP = 0
	}
}
