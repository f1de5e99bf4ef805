package battle

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/grimward/arena9/internal/formulas"
	"github.com/grimward/arena9/internal/model"
	"github.com/grimward/arena9/internal/status"
)

// Outcome is the battle result.
type Outcome string

const (
	OutcomeA    Outcome = "A"
	OutcomeB    Outcome = "B"
	OutcomeDraw Outcome = "DRAW"
)

// Engine drives team turns until one side is defeated or the turn limit
// is reached. Action decisions are delegated to the Strategy.
type Engine struct {
	cfg      Config
	status   *status.Engine
	strategy Strategy
}

// NewEngine builds an engine with the given config and strategy. A nil
// strategy gets the default skill-then-attack strategy.
func NewEngine(cfg Config, strat Strategy) (*Engine, error) {
	se, err := status.NewEngine()
	if err != nil {
		return nil, err
	}
	if strat == nil {
		strat = DefaultStrategy{}
	}
	return &Engine{cfg: cfg, status: se, strategy: strat}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Status returns the shared status engine.
func (e *Engine) Status() *status.Engine {
	return e.status
}

// Run executes team turns until a team wins or MaxTeamTurns elapse.
func (e *Engine) Run(st *model.BattleState) (Outcome, error) {
	for i := 0; i < e.cfg.MaxTeamTurns; i++ {
		out, ended, err := e.StepTeamTurn(st)
		if err != nil {
			return OutcomeDraw, err
		}
		if ended {
			return out, nil
		}
	}
	st.Logf("==> Draw (max team turns %d reached)", e.cfg.MaxTeamTurns)
	return OutcomeDraw, nil
}

var turnBar = strings.Repeat("=", 42)

// StepTeamTurn executes exactly one team turn:
//
//  1. advance the team-turn counter and announce the acting team
//  2. on every second turn, tick statuses and cooldowns of ALL units
//  3. per living acting-team unit: resolve the status frame, apply DOT
//     events, then grant AP (zero while AP gain is blocked)
//  4. select actors: AP descending, slot ascending, can-act only,
//     threshold-gated except during the opener turns
//  5. run each actor's action, checking victory after every actor
//
// ended=true when a team won during this turn.
func (e *Engine) StepTeamTurn(st *model.BattleState) (Outcome, bool, error) {
	st.TeamTurn++
	team := st.TeamToAct()
	enemy := model.Opponent(team)

	st.Logf("%s", turnBar)
	st.Logf("TEAM TURN %d - Team %s starts", st.TeamTurn, team)
	st.Logf("%s", turnBar)

	if st.TeamTurn%2 == 0 {
		st.Logf("  [TICK] Two-turn rule tick: cooldowns/durations -1")
		for _, u := range st.Board.AllUnits() {
			e.status.Tick(u.Statuses)
			for k, cd := range u.Cooldowns {
				if cd > 0 {
					u.Cooldowns[k] = cd - 1
				}
			}
		}
	}

	living := st.Board.LivingUnits(team)
	frames := make(map[string]status.Frame, len(living))

	for _, u := range living {
		frame := e.status.Resolve(u.ID, u.Statuses)
		frames[u.ID] = frame

		for _, ev := range frame.Events {
			if ev.Type != "damage" {
				continue
			}
			before := u.HP
			u.ApplyDamage(ev.Amount)
			st.Logf("  DOT: %s hits %s for %.0f (HP %.0f -> %.0f)", ev.Source, u.ID, ev.Amount, before, u.HP)
			if !u.IsAlive() {
				st.Logf("    DEATH: %s eliminated", u.ID)
			}
		}
		if !u.IsAlive() {
			continue
		}

		before := int(u.AP)
		gain := 0
		if !frame.BlockAPGain {
			gain = e.apGain(u, frame)
		}
		u.AP += float64(gain)
		st.Logf("  AP gain: %s: %d -> %d (+%d)", u.ID, before, before+gain, gain)
	}

	// DOT can finish a battle before anyone acts.
	if !st.Board.HasAlive(team) {
		st.Logf("==> Team %s wins (Team %s defeated)", enemy, team)
		return Outcome(enemy), true, nil
	}

	actors := e.selectActors(st, team, frames)

	for _, actor := range actors {
		if !actor.IsAlive() {
			continue
		}
		if err := e.strategy.Act(e, st, actor, frames[actor.ID]); err != nil {
			return OutcomeDraw, false, fmt.Errorf("battle: turn %d, actor %s: %w", st.TeamTurn, actor.ID, err)
		}
		if !st.Board.HasAlive(enemy) {
			st.Logf("==> Team %s wins (Team %s defeated)", team, enemy)
			return Outcome(team), true, nil
		}
	}

	return OutcomeDraw, false, nil
}

// apGain computes one unit's AP gain for this turn: the ap_gain modifier
// pipeline over base 100, plus the status frame's flat delta, rounded
// and floored at zero.
func (e *Engine) apGain(u *model.Unit, frame status.Frame) int {
	if frame.APGainBaseDelta == 0 {
		return int(math.Round(u.Stats.APGain))
	}
	mods := append(u.APMods(), formulas.Modifier{
		Stat:   formulas.StatAPGain,
		Tag:    formulas.TagBase,
		Value:  frame.APGainBaseDelta,
		Source: "status",
	})
	return formulas.APGain(mods)
}

func (e *Engine) selectActors(st *model.BattleState, team model.Team, frames map[string]status.Frame) []*model.Unit {
	maxActors, ignoreThreshold := e.cfg.selectionParams(st.TeamTurn)

	candidates := st.Board.LivingUnits(team)
	sort.SliceStable(candidates, func(i, j int) bool {
		ai, aj := int(candidates[i].AP), int(candidates[j].AP)
		if ai != aj {
			return ai > aj
		}
		return candidates[i].Slot < candidates[j].Slot
	})

	var filtered []*model.Unit
	for _, u := range candidates {
		if !frames[u.ID].CanAct {
			continue
		}
		if !ignoreThreshold && int(u.AP) < e.cfg.APThreshold {
			continue
		}
		filtered = append(filtered, u)
	}
	if len(filtered) > maxActors {
		filtered = filtered[:maxActors]
	}

	ruleNote := fmt.Sprintf("AP>=%d", e.cfg.APThreshold)
	if ignoreThreshold {
		ruleNote = fmt.Sprintf("ignore AP>=%d (early fairness T%d)", e.cfg.APThreshold, st.TeamTurn)
	}

	list := "(none)"
	if len(filtered) > 0 {
		parts := make([]string, len(filtered))
		for i, u := range filtered {
			parts[i] = fmt.Sprintf("%s(AP=%d)", u.ID, int(u.AP))
		}
		list = strings.Join(parts, ", ")
	}
	st.Logf("  Actors selected: max=%d, rule=%s: %s", maxActors, ruleNote, list)

	return filtered
}
