package battle

import (
	"fmt"

	"github.com/grimward/arena9/internal/config"
	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/formulas"
	"github.com/grimward/arena9/internal/model"
)

// ConfigFromBattle maps the YAML engine knobs onto an engine Config,
// keeping defaults for any knob the file left at zero.
func ConfigFromBattle(b config.Battle) Config {
	cfg := DefaultConfig()
	if b.MaxTeamTurns > 0 {
		cfg.MaxTeamTurns = b.MaxTeamTurns
	}
	if b.ActionAPCost > 0 {
		cfg.ActionAPCost = b.ActionAPCost
	}
	if b.APThreshold > 0 {
		cfg.APThreshold = b.APThreshold
	}
	if b.NormalMaxActors > 0 {
		cfg.NormalMaxActors = b.NormalMaxActors
	}
	return cfg
}

// StartingTeam parses the config's starting-team letter. Anything but
// "B" starts team A.
func StartingTeam(b config.Battle) model.Team {
	if b.StartingTeam == "B" {
		return model.TeamB
	}
	return model.TeamA
}

// RosterFromConfig converts both configured rosters into unit setups.
// Gear specs are resolved against each unit's own level constant.
func RosterFromConfig(b config.Battle) ([]UnitSetup, error) {
	var out []UnitSetup
	for _, spec := range b.TeamA {
		s, err := unitFromSpec(model.TeamA, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	for _, spec := range b.TeamB {
		s, err := unitFromSpec(model.TeamB, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func unitFromSpec(team model.Team, spec config.UnitSpec) (UnitSetup, error) {
	k, err := formulas.KForLevel(spec.Level)
	if err != nil {
		return UnitSetup{}, fmt.Errorf("unit %s-%d: %w", team, spec.Slot, err)
	}

	var gear data.GearSet
	if spec.Gear != nil {
		gear = data.BuildPrototypeGear(data.PrototypeGearSpec{
			Name:       spec.Gear.Name,
			ArmourPctK: spec.Gear.ArmourPctK,
			MRPctK:     spec.Gear.MRPctK,
			HPPctK:     spec.Gear.HPPctK,
			MPPctK:     spec.Gear.MPPctK,
			AttackPctK: spec.Gear.AttackPctK,
			APBaseFlat: spec.Gear.APBaseFlat,
		}, k)
	}

	return UnitSetup{
		Team: team,
		Slot: spec.Slot,
		Base: model.DefaultBase(spec.Level, spec.Str, spec.Dex, spec.Int, spec.Vit),
		Build: model.Build{
			WeaponKey:      spec.Weapon,
			WeaponPassive:  spec.WeaponPassive,
			OffhandKey:     spec.Offhand,
			OffhandPassive: spec.OffhandPassive,
			Gear:           gear,
			Skills:         spec.Skills,
		},
	}, nil
}
