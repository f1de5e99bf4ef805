package battle

import (
	"fmt"
	"log/slog"

	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/formulas"
	"github.com/grimward/arena9/internal/model"
	"github.com/grimward/arena9/internal/status"
	"github.com/grimward/arena9/internal/targeting"
)

// Strategy decides and executes one actor's action. Implementations must
// treat "no legal target" and "cannot afford" as recoverable skips, not
// errors; errors abort the battle.
type Strategy interface {
	Act(e *Engine, st *model.BattleState, actor *model.Unit, frame status.Frame) error
}

// DefaultStrategy casts the first ready, affordable active skill, falls
// back to the weapon basic attack, and skips when neither is possible.
type DefaultStrategy struct{}

func (DefaultStrategy) Act(e *Engine, st *model.BattleState, actor *model.Unit, frame status.Frame) error {
	if frame.CanUseActiveSkills {
		for _, key := range actor.Build.Skills {
			done, err := castSkill(e, st, actor, frame, key)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}

	if frame.CanBasicAttack && int(actor.AP) >= e.cfg.ActionAPCost {
		if basicAttack(e, st, actor, frame) {
			return nil
		}
	}

	st.Logf("  SKIP: %s has no available action", actor.ID)
	return nil
}

func castSkill(e *Engine, st *model.BattleState, actor *model.Unit, frame status.Frame, key string) (bool, error) {
	skill, err := data.GetActiveSkill(key)
	if err != nil {
		return false, err
	}

	if actor.Cooldowns[key] > 0 {
		return false, nil
	}
	if int(actor.AP) < skill.APCost || int(actor.MP) < skill.MPCost {
		return false, nil
	}

	spec := targeting.Spec{
		Side:          targeting.SideEnemy,
		Location:      skill.Location,
		Scope:         targeting.ScopeSingle,
		AllowRetarget: true,
	}
	pick, ok := targeting.PickPrimary(st.Board, actor.Team, spec, 0, st.RNG)
	if !ok {
		return false, nil
	}

	actor.AP -= float64(skill.APCost)
	actor.MP -= float64(skill.MPCost)
	actor.Cooldowns[key] = skill.Cooldown

	aoe := targeting.ExpandAoE(pick.Slot, skill.AoE, skill.SplashPct, 0)
	st.Logf("  CAST: %s uses %s -> %s-%d (AoE=%s targets=%v) AP-%d MP-%d CD=%d",
		actor.ID, skill.Name, pick.Team, pick.Slot, skill.AoE, aoeSlots(aoe),
		skill.APCost, skill.MPCost, skill.Cooldown)

	for _, t := range aoe {
		defender := st.Board.Get(pick.Team, t.Slot)
		if defender == nil || !defender.IsAlive() {
			continue
		}
		dframe := e.status.Resolve(defender.ID, defender.Statuses)

		raw := actor.Stats.Attack * skill.Ratio * (1 + actor.Stats.SpellPower) * t.Ratio * frame.SkillDamageMult
		mit := formulas.Mitigation(defender.Stats.MR+dframe.MRBaseDelta, defender.K)
		dmg := formulas.ApplyMitigation(raw, mit) * dframe.DamageTakenMult

		landHit(st, actor, defender, dmg)
		if err := runOnHitProcs(e, st, actor, defender, skill.Procs, dmg, raw); err != nil {
			return false, err
		}
	}
	return true, nil
}

func basicAttack(e *Engine, st *model.BattleState, actor *model.Unit, frame status.Frame) bool {
	w := actor.Weapon()
	spec := targeting.Spec{
		Side:          targeting.SideEnemy,
		Location:      w.Location,
		Scope:         targeting.ScopeSingle,
		AllowRetarget: true,
	}
	pick, ok := targeting.PickPrimary(st.Board, actor.Team, spec, 0, st.RNG)
	if !ok {
		st.Logf("  SKIP: %s basic attack: no legal target (%s)", actor.ID, pick.Reason)
		return false
	}

	actor.AP -= float64(e.cfg.ActionAPCost)
	if actor.AP < 0 {
		actor.AP = 0
	}

	hits := formulas.TotalHits(actor.Stats.MHR+frame.MHRBaseDelta, st.RNG)
	crit := st.RNG.Chance(actor.Stats.CritChance / 100)

	aoe := targeting.ExpandAoE(pick.Slot, w.AoE, w.NearRatio, w.FarRatio)
	st.Logf("  ATTACK: %s -> %s-%d (AoE=%s targets=%v) hits=%d crit=%v",
		actor.ID, pick.Team, pick.Slot, w.AoE, aoeSlots(aoe), hits, crit)

	procs := append(append([]data.Proc(nil), w.Procs...), offhandProcs(actor)...)

	for _, t := range aoe {
		defender := st.Board.Get(pick.Team, t.Slot)
		if defender == nil || !defender.IsAlive() {
			continue
		}
		dframe := e.status.Resolve(defender.ID, defender.Statuses)

		raw := formulas.RawAttackDamage(actor.Stats.Attack, w.MainRatio*t.Ratio, crit, actor.Stats.CritDamage)
		raw *= float64(hits) * frame.AttackDamageMult
		mit := formulas.Mitigation(defender.Stats.Armour+dframe.ArmourBaseDelta, defender.K)
		dmg := formulas.ApplyMitigation(raw, mit) * dframe.DamageTakenMult

		landHit(st, actor, defender, dmg)
		if err := runOnHitProcs(e, st, actor, defender, procs, dmg, raw); err != nil {
			slog.Warn("on-hit proc failed", "actor", actor.ID, "err", err)
		}
	}
	return true
}

func offhandProcs(u *model.Unit) []data.Proc {
	pkg, ok := u.Offhand()
	if !ok {
		return nil
	}
	return pkg.Procs
}

func aoeSlots(targets []targeting.AoETarget) []int {
	out := make([]int, len(targets))
	for i, t := range targets {
		out[i] = t.Slot
	}
	return out
}

func landHit(st *model.BattleState, actor, defender *model.Unit, dmg float64) {
	before := defender.HP
	defender.ApplyDamage(dmg)
	st.Logf("    HIT: %s -> %s: %.0f dmg (HP %.0f -> %.0f)", actor.ID, defender.ID, dmg, before, defender.HP)
	if !defender.IsAlive() {
		st.Logf("    DEATH: %s eliminated", defender.ID)
	}
}

// runOnHitProcs rolls and executes the on-hit procs of a weapon, offhand
// or skill against one damaged defender. hitDamage is the mitigated
// damage dealt (bleeding scales off it); raw is the pre-mitigation
// amount (pure damage tops the hit up to it). Procs without on-hit
// semantics are skipped.
func runOnHitProcs(e *Engine, st *model.BattleState, actor, defender *model.Unit, procs []data.Proc, hitDamage, raw float64) error {
	for _, p := range procs {
		if !st.RNG.Chance(p.ChancePct / 100) {
			continue
		}

		switch p.Name {
		case "stun_on_hit":
			if err := applyStatus(e, st, actor, defender, "stun", status.ApplyOptions{
				Duration: int(p.Params["duration_turns"]),
			}); err != nil {
				return err
			}
		case "bleed_on_hit":
			ratio := bleedRatio()
			if err := applyStatus(e, st, actor, defender, "bleeding", status.ApplyOptions{
				Duration: int(p.Params["duration"]),
				Params:   map[string]float64{"dot_damage": ratio * hitDamage},
			}); err != nil {
				return err
			}
		case "apply_slow":
			if err := applyStatus(e, st, actor, defender, "slow", status.ApplyOptions{
				Params: map[string]float64{"ap_base_delta": p.Params["slow_ap_base_delta"]},
			}); err != nil {
				return err
			}
		case "apply_dull_on_hit":
			if err := applyStatus(e, st, actor, defender, "dull", status.ApplyOptions{
				Params: map[string]float64{"accuracy_inc_pct": -10},
			}); err != nil {
				return err
			}
		case "apply_weaken_on_hit":
			if err := applyStatus(e, st, actor, defender, "weaken", status.ApplyOptions{
				Params: map[string]float64{"attack_damage_less_pct": 10},
			}); err != nil {
				return err
			}
		case "apply_shred_on_hit":
			amount := actor.Stats.SpellPower * p.Params["multiplier"]
			if err := applyStatus(e, st, actor, defender, "shred", status.ApplyOptions{
				Params: map[string]float64{"armour_base_delta": -amount},
			}); err != nil {
				return err
			}
		case "apply_brand_on_hit":
			if err := applyStatus(e, st, actor, defender, "brand", status.ApplyOptions{
				Params: map[string]float64{"damage_taken_more_pct": p.Params["damage_taken_more_pct"]},
			}); err != nil {
				return err
			}
		case "apply_chill_on_hit":
			if err := applyStatus(e, st, actor, defender, "chill", status.ApplyOptions{}); err != nil {
				return err
			}
		case "apply_silence_on_hit":
			if err := applyStatus(e, st, actor, defender, "silence", status.ApplyOptions{}); err != nil {
				return err
			}
		case "drain_enemy_ap_on_hit":
			drain := p.Params["ap_drain_flat"]
			before := int(defender.AP)
			defender.AP -= drain
			if defender.AP < 0 {
				defender.AP = 0
			}
			st.Logf("    PROC: %s drains %s AP %d -> %d", actor.ID, defender.ID, before, int(defender.AP))
		case "pure_damage_on_hit":
			extra := raw - hitDamage
			if extra > 0 {
				before := defender.HP
				defender.ApplyDamage(extra)
				st.Logf("    PROC: pure damage %s -> %s: +%.0f (HP %.0f -> %.0f)", actor.ID, defender.ID, extra, before, defender.HP)
				if !defender.IsAlive() {
					st.Logf("    DEATH: %s eliminated", defender.ID)
				}
			}
		default:
			// Passive/defensive procs (retaliate, shields, ramps) have
			// no on-hit execution here.
			slog.Debug("ignoring proc without on-hit handler", "proc", p.Name)
		}
	}
	return nil
}

func bleedRatio() float64 {
	def, err := data.GetStatus("bleeding")
	if err != nil {
		return 0.30
	}
	if r, ok := def.Params["dot_ratio_of_last_triggered_hit"]; ok {
		return r
	}
	return 0.30
}

func applyStatus(e *Engine, st *model.BattleState, actor, defender *model.Unit, key string, opts status.ApplyOptions) error {
	opts.SourceID = actor.ID
	applied, err := e.status.Apply(defender.Statuses, key, opts)
	if err != nil {
		return fmt.Errorf("applying %s to %s: %w", key, defender.ID, err)
	}
	if applied {
		st.Logf("    STATUS: %s +%s (%d)", defender.ID, key, defender.Statuses[key].Remaining)
	} else {
		st.Logf("    STATUS: %s %s blocked (immunity)", defender.ID, key)
	}
	return nil
}
