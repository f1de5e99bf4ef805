package battle

import (
	"fmt"

	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/model"
	"github.com/grimward/arena9/internal/rng"
	"github.com/grimward/arena9/internal/status"
)

// UnitSetup describes one roster entry before the battle starts.
type UnitSetup struct {
	Team  model.Team
	Slot  int
	Base  model.BaseAttributes
	Build model.Build
}

// NewBattle builds a ready battle state from a roster:
//
//   - units constructed and placed (stats computed, HP/MP full)
//   - every known skill starts ON cooldown at its base value, already
//     counting down
//   - battle-start procs applied (an Orb grants immunity immediately)
func (e *Engine) NewBattle(roster []UnitSetup, src *rng.Source, starting model.Team, sink model.Sink) (*model.BattleState, error) {
	board := model.NewBoard()

	for _, spec := range roster {
		u, err := model.NewUnit(spec.Team, spec.Slot, spec.Base, spec.Build)
		if err != nil {
			return nil, err
		}
		if err := board.Place(u); err != nil {
			return nil, err
		}

		for _, key := range u.Build.Skills {
			skill, err := data.GetActiveSkill(key)
			if err != nil {
				return nil, err
			}
			u.Cooldowns[key] = skill.Cooldown
		}

		if err := e.applyBattleStartProcs(u); err != nil {
			return nil, err
		}
	}

	return model.NewBattleState(board, src, starting, sink), nil
}

func (e *Engine) applyBattleStartProcs(u *model.Unit) error {
	procs := append([]data.Proc(nil), u.Weapon().Procs...)
	if pkg, ok := u.Offhand(); ok {
		procs = append(procs, pkg.Procs...)
	}
	for _, p := range procs {
		if p.Name != "start_immunity" {
			continue
		}
		_, err := e.status.Apply(u.Statuses, "immunity", status.ApplyOptions{
			Duration: int(p.Params["turns"]),
			SourceID: u.ID,
		})
		if err != nil {
			return fmt.Errorf("battle start proc for %s: %w", u.ID, err)
		}
	}
	return nil
}
