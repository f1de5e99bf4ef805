// Package config loads battle configuration from YAML files with the
// Default/Load pattern: defaults first, file values layered on top, a
// missing file silently keeps the defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GearSpec describes prototype gear as "%K base" fractions per stat.
type GearSpec struct {
	Name       string  `yaml:"name"`
	ArmourPctK float64 `yaml:"armour_pct_k"`
	MRPctK     float64 `yaml:"mr_pct_k"`
	HPPctK     float64 `yaml:"hp_pct_k"`
	MPPctK     float64 `yaml:"mp_pct_k"`
	AttackPctK float64 `yaml:"attack_pct_k"`
	APBaseFlat float64 `yaml:"ap_base_flat"`
}

// UnitSpec is one roster entry.
type UnitSpec struct {
	Slot  int     `yaml:"slot"`
	Level int     `yaml:"level"`
	Str   float64 `yaml:"str"`
	Dex   float64 `yaml:"dex"`
	Int   float64 `yaml:"int"`
	Vit   float64 `yaml:"vit"`

	Weapon         string `yaml:"weapon"`
	WeaponPassive  int    `yaml:"weapon_passive"`
	Offhand        string `yaml:"offhand"`
	OffhandPassive int    `yaml:"offhand_passive"`

	Skills []string  `yaml:"skills"`
	Gear   *GearSpec `yaml:"gear"`
}

// Battle holds everything one simulation run needs: seed, engine knobs
// and both rosters.
type Battle struct {
	Seed         int64  `yaml:"seed"`
	StartingTeam string `yaml:"starting_team"`

	MaxTeamTurns    int `yaml:"max_team_turns"`
	ActionAPCost    int `yaml:"action_ap_cost"`
	APThreshold     int `yaml:"ap_threshold"`
	NormalMaxActors int `yaml:"normal_max_actors"`

	TeamA []UnitSpec `yaml:"team_a"`
	TeamB []UnitSpec `yaml:"team_b"`
}

// DefaultBattle returns a ready-to-run configuration: seed 1, team A
// starts, standard engine knobs, and two mirrored five-unit rosters
// covering tank, pierce, splash, sniper and caster roles.
func DefaultBattle() Battle {
	roster := []UnitSpec{
		{Slot: 1, Level: 45, Str: 60, Dex: 30, Int: 10, Vit: 50,
			Weapon: "Sword", WeaponPassive: 2, Offhand: "Shield",
			Gear: &GearSpec{Name: "Prototype Plate", ArmourPctK: 1.0, HPPctK: 1.0}},
		{Slot: 2, Level: 45, Str: 55, Dex: 35, Int: 10, Vit: 40,
			Weapon: "Spear", WeaponPassive: 1, Offhand: "MaintainKit", OffhandPassive: 2,
			Skills: []string{"piercing_lance"},
			Gear:   &GearSpec{Name: "Prototype Mail", ArmourPctK: 0.75, HPPctK: 0.75}},
		{Slot: 3, Level: 45, Str: 65, Dex: 25, Int: 10, Vit: 45,
			Weapon: "Axe", WeaponPassive: 3, Offhand: "Shield",
			Skills: []string{"crushing_blow"},
			Gear:   &GearSpec{Name: "Prototype Plate", ArmourPctK: 1.0, HPPctK: 0.75}},
		{Slot: 5, Level: 45, Str: 50, Dex: 60, Int: 15, Vit: 30,
			Weapon: "Bow", WeaponPassive: 1, Offhand: "Quiver", OffhandPassive: 1,
			Gear: &GearSpec{Name: "Prototype Leathers", ArmourPctK: 0.5, HPPctK: 0.5}},
		{Slot: 8, Level: 45, Str: 30, Dex: 25, Int: 70, Vit: 30,
			Weapon: "Staff", WeaponPassive: 1, Offhand: "Orb",
			Skills: []string{"fireball", "arcane_seal"},
			Gear:   &GearSpec{Name: "Prototype Robes", MRPctK: 1.0, MPPctK: 1.0, HPPctK: 0.5}},
	}

	return Battle{
		Seed:            1,
		StartingTeam:    "A",
		MaxTeamTurns:    200,
		ActionAPCost:    100,
		APThreshold:     100,
		NormalMaxActors: 5,
		TeamA:           roster,
		TeamB:           roster,
	}
}

// LoadBattle loads battle config from a YAML file. A missing file
// returns defaults.
func LoadBattle(path string) (Battle, error) {
	cfg := DefaultBattle()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
