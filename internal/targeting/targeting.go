// Package targeting picks primary targets under location rules and
// expands AoE shapes into slot/ratio lists. Selection is geometry plus
// liveness only; damage and procs stay in the battle engine.
package targeting

import (
	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/grid"
	"github.com/grimward/arena9/internal/model"
	"github.com/grimward/arena9/internal/rng"
)

// Side says whose units an action targets. SideBoth is only meaningful
// for multi-target scopes.
type Side string

const (
	SideEnemy Side = "enemy"
	SideAlly  Side = "ally"
	SideSelf  Side = "self"
	SideBoth  Side = "both"
)

// Scope says how many targets the selector produces.
type Scope string

const (
	ScopeSingle   Scope = "single"
	ScopeTeam     Scope = "team"
	ScopeAllAlive Scope = "all_alive"
)

// Spec is the generic targeting specification shared by basic attacks,
// skills and aura applications.
type Spec struct {
	Side          Side
	Location      data.TargetLocation
	Scope         Scope
	AllowRetarget bool
}

// Board is the slice of board behavior targeting needs. *model.Board
// satisfies it.
type Board interface {
	IsAlive(team model.Team, slot int) bool
	AliveSlots(team model.Team) []int
	ExposedFrontline(team model.Team) []int
}

// Pick is a resolved primary target. Reason records which rule produced
// it, for the battle log.
type Pick struct {
	Team   model.Team
	Slot   int
	Reason string
}

func resolveTeam(attacker model.Team, side Side) model.Team {
	if side == SideEnemy {
		return model.Opponent(attacker)
	}
	return attacker
}

func candidates(b Board, team model.Team, loc data.TargetLocation) []int {
	switch loc {
	case data.LocationFrontline:
		return b.ExposedFrontline(team)
	case data.LocationSelf:
		return nil
	default:
		return b.AliveSlots(team)
	}
}

func validTarget(b Board, team model.Team, slot int, loc data.TargetLocation) bool {
	if !b.IsAlive(team, slot) {
		return false
	}
	if loc != data.LocationFrontline {
		return true
	}
	for _, s := range b.ExposedFrontline(team) {
		if s == slot {
			return true
		}
	}
	return false
}

// exposedInLine returns the exposed slot sharing preferred's vertical
// line, ok=false when the whole line is dead.
func exposedInLine(b Board, team model.Team, preferred int) (int, bool) {
	slots, err := grid.SlotsInLine(grid.LineOf(preferred))
	if err != nil {
		return 0, false
	}
	for _, s := range slots {
		if b.IsAlive(team, s) {
			return s, true
		}
	}
	return 0, false
}

// PickPrimary selects the primary target slot for a single-scope action.
//
// preferredSlot 0 means no preference. Self actions resolve to
// preferredSlot, which carries the actor's own slot. A dead or illegal
// preference retargets (when the spec allows): frontline actions try the
// exposed slot in the same line first, then fall back to a uniform RNG
// draw over the legal candidates. ok=false means no legal target exists
// (or the preference was invalid with retargeting off); the caller
// treats that as a recoverable skip, not an error.
func PickPrimary(b Board, attacker model.Team, spec Spec, preferredSlot int, src *rng.Source) (Pick, bool) {
	team := resolveTeam(attacker, spec.Side)

	if spec.Side == SideSelf || spec.Location == data.LocationSelf {
		if !b.IsAlive(attacker, preferredSlot) {
			return Pick{Team: attacker, Reason: "no_candidates"}, false
		}
		return Pick{Team: attacker, Slot: preferredSlot, Reason: "self"}, true
	}

	cands := candidates(b, team, spec.Location)
	if len(cands) == 0 {
		return Pick{Team: team, Reason: "no_candidates"}, false
	}

	if preferredSlot != 0 {
		if validTarget(b, team, preferredSlot, spec.Location) {
			return Pick{Team: team, Slot: preferredSlot, Reason: "preferred_ok"}, true
		}
		if !spec.AllowRetarget {
			return Pick{Team: team, Reason: "preferred_invalid"}, false
		}
		if spec.Location == data.LocationFrontline {
			if s, ok := exposedInLine(b, team, preferredSlot); ok && validTarget(b, team, s, spec.Location) {
				return Pick{Team: team, Slot: s, Reason: "retarget_same_line_exposed"}, true
			}
		}
		if src != nil {
			s := cands[src.ChoiceIndex(len(cands))]
			return Pick{Team: team, Slot: s, Reason: "retarget_random"}, true
		}
		return Pick{Team: team, Slot: cands[0], Reason: "retarget_first"}, true
	}

	if src != nil {
		s := cands[src.ChoiceIndex(len(cands))]
		return Pick{Team: team, Slot: s, Reason: "random"}, true
	}
	return Pick{Team: team, Slot: cands[0], Reason: "first"}, true
}

// Target is one (team, slot) pair produced by ResolveTargets.
type Target struct {
	Team model.Team
	Slot int
}

// ResolveTargets produces the target list for any scope. Single wraps
// PickPrimary; team returns every living unit of the resolved team (both
// teams for SideBoth); all_alive returns both teams, A first, slots
// ascending.
func ResolveTargets(b Board, attacker model.Team, spec Spec, preferredSlot int, src *rng.Source) []Target {
	switch spec.Scope {
	case ScopeTeam:
		teams := []model.Team{resolveTeam(attacker, spec.Side)}
		if spec.Side == SideBoth {
			teams = []model.Team{model.TeamA, model.TeamB}
		}
		var out []Target
		for _, team := range teams {
			for _, s := range b.AliveSlots(team) {
				out = append(out, Target{Team: team, Slot: s})
			}
		}
		return out
	case ScopeAllAlive:
		var out []Target
		for _, team := range []model.Team{model.TeamA, model.TeamB} {
			for _, s := range b.AliveSlots(team) {
				out = append(out, Target{Team: team, Slot: s})
			}
		}
		return out
	default:
		pick, ok := PickPrimary(b, attacker, spec, preferredSlot, src)
		if !ok || pick.Slot == 0 {
			return nil
		}
		return []Target{{Team: pick.Team, Slot: pick.Slot}}
	}
}
