// Package status is the runtime status-effect engine: applying statuses
// to a unit's instance map with stacking/refresh/immunity rules, ticking
// durations on the two-turn rule, and resolving the active set into a
// Frame of flags, multipliers and deltas the battle engine consumes.
package status

import (
	"fmt"
	"sort"

	"github.com/grimward/arena9/internal/data"
)

// Instance is one status on one unit. Params start from the catalog
// defaults and may be overridden per application (slow carries its AP
// delta, bleeding the triggering hit's damage). Seq is an engine-global
// application counter used to order unrecognized statuses.
type Instance struct {
	Key       string
	Remaining int
	Stacks    int
	Params    map[string]float64
	SourceID  string
	Seq       int
}

// Event is a side effect produced by Resolve, applied by the battle
// engine (DOT damage, log lines).
type Event struct {
	Type     string // "damage"
	TargetID string
	Amount   float64
	Source   string // status key that produced the event
}

// Frame aggregates the active statuses of one unit at the start of its
// team's turn. Zero-value fields are NOT usable defaults; build frames
// through Engine.Resolve only.
type Frame struct {
	CanAct             bool
	CanUseActiveSkills bool
	CanBasicAttack     bool
	IgnorePassives     bool
	BlockAPGain        bool

	AttackDamageMult float64 // weaken
	SkillDamageMult  float64 // panic
	DamageTakenMult  float64 // brand

	APGainBaseDelta  float64 // slow, chill
	MHRBaseDelta     float64 // chill
	AccuracyIncDelta float64 // dull
	ArmourBaseDelta  float64 // shred
	MRBaseDelta      float64 // sunder

	Events []Event
}

func neutralFrame() Frame {
	return Frame{
		CanAct:             true,
		CanUseActiveSkills: true,
		CanBasicAttack:     true,
		AttackDamageMult:   1,
		SkillDamageMult:    1,
		DamageTakenMult:    1,
	}
}

// resolveOrder fixes the order statuses contribute to a frame: control
// first, then action locks, then multipliers, then stat deltas, DOT last.
var resolveOrder = []string{
	"stun",
	"immobilized",
	"silence",
	"disarm",
	"break",
	"panic",
	"weaken",
	"brand",
	"dull",
	"slow",
	"chill",
	"shred",
	"sunder",
	"bleeding",
}

// Engine holds the resolved status catalog and the application counter.
// One Engine serves one battle.
type Engine struct {
	defs    map[string]data.StatusDef
	nextSeq int
}

// NewEngine resolves the full status catalog up front so an unknown key
// fails at construction, not mid-battle.
func NewEngine() (*Engine, error) {
	defs := make(map[string]data.StatusDef)
	for _, key := range data.StatusKeys() {
		d, err := data.GetStatus(key)
		if err != nil {
			return nil, fmt.Errorf("status: resolving catalog: %w", err)
		}
		defs[key] = d
	}
	return &Engine{defs: defs}, nil
}

// ApplyOptions tune one application. Zero values mean "use catalog
// defaults": Duration 0 takes the status's default duration, Stacks 0
// adds one stack.
type ApplyOptions struct {
	Duration int
	Stacks   int
	Params   map[string]float64
	SourceID string
}

// Has reports whether the unit currently carries an active status.
func Has(m map[string]*Instance, key string) bool {
	inst, ok := m[key]
	return ok && inst.Remaining > 0
}

// Apply puts a status onto a unit's instance map.
//
// Returns applied=false without mutating anything when the unit is
// immune and the status is not positive. Reapplication of a stackable
// status adds stacks up to the cap; refresh takes the longer of the
// current and new durations, never their sum. An unknown key is an error.
func (e *Engine) Apply(m map[string]*Instance, key string, opts ApplyOptions) (bool, error) {
	def, ok := e.defs[key]
	if !ok {
		return false, fmt.Errorf("%w: status %q", data.ErrUnknownKey, key)
	}

	if Has(m, "immunity") && !def.Positive {
		return false, nil
	}

	dur := opts.Duration
	if dur == 0 {
		dur = def.DefaultDuration
	}
	if dur < 0 {
		dur = 0
	}
	stacksAdd := opts.Stacks
	if stacksAdd == 0 {
		stacksAdd = 1
	}

	existing, ok := m[key]
	if !ok || existing.Remaining <= 0 {
		params := make(map[string]float64, len(def.Params)+len(opts.Params))
		for k, v := range def.Params {
			params[k] = v
		}
		for k, v := range opts.Params {
			params[k] = v
		}
		stacks := 1
		if def.Stackable {
			stacks = clampStacks(stacksAdd, def.MaxStacks)
		}
		e.nextSeq++
		m[key] = &Instance{
			Key:       key,
			Remaining: dur,
			Stacks:    stacks,
			Params:    params,
			SourceID:  opts.SourceID,
			Seq:       e.nextSeq,
		}
		return true, nil
	}

	if def.Stackable {
		existing.Stacks = clampStacks(existing.Stacks+stacksAdd, def.MaxStacks)
	}
	if def.RefreshOnReapply && dur > existing.Remaining {
		existing.Remaining = dur
	}
	for k, v := range opts.Params {
		existing.Params[k] = v
	}
	if opts.SourceID != "" {
		existing.SourceID = opts.SourceID
	}
	return true, nil
}

func clampStacks(n, max int) int {
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// Tick decrements every instance's remaining duration by one and removes
// the expired ones, returning their keys sorted for stable logs. Called
// on the two-turn rule for every unit of both teams.
func (e *Engine) Tick(m map[string]*Instance) []string {
	var expired []string
	for key, inst := range m {
		if inst.Remaining > 0 {
			inst.Remaining--
		}
		if inst.Remaining <= 0 {
			expired = append(expired, key)
		}
	}
	for _, key := range expired {
		delete(m, key)
	}
	sort.Strings(expired)
	return expired
}

// Resolve folds the unit's active statuses into a Frame, walking the
// fixed resolve order first and any remaining statuses in application
// order. CanAct=false forces both action flags off.
func (e *Engine) Resolve(unitID string, m map[string]*Instance) Frame {
	frame := neutralFrame()

	seen := make(map[string]bool, len(m))
	for _, key := range resolveOrder {
		if inst, ok := m[key]; ok && inst.Remaining > 0 {
			e.contribute(&frame, unitID, inst)
			seen[key] = true
		}
	}

	var rest []*Instance
	for key, inst := range m {
		if !seen[key] && inst.Remaining > 0 {
			rest = append(rest, inst)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Seq < rest[j].Seq })
	for _, inst := range rest {
		e.contribute(&frame, unitID, inst)
	}

	if !frame.CanAct {
		frame.CanBasicAttack = false
		frame.CanUseActiveSkills = false
	}
	return frame
}

func (e *Engine) contribute(frame *Frame, unitID string, inst *Instance) {
	switch inst.Key {
	case "stun":
		frame.CanAct = false
		frame.BlockAPGain = true
	case "immobilized":
		frame.CanAct = false
	case "silence":
		frame.CanUseActiveSkills = false
	case "disarm":
		frame.CanBasicAttack = false
	case "break":
		frame.IgnorePassives = true
	case "panic":
		frame.SkillDamageMult *= lessMult(inst.Params["skill_damage_less_pct"])
	case "weaken":
		frame.AttackDamageMult *= lessMult(inst.Params["attack_damage_less_pct"])
	case "brand":
		frame.DamageTakenMult *= moreMult(inst.Params["damage_taken_more_pct"])
	case "dull":
		frame.AccuracyIncDelta += inst.Params["accuracy_inc_pct"]
	case "slow":
		frame.APGainBaseDelta += inst.Params["ap_base_delta"]
	case "chill":
		frame.APGainBaseDelta += inst.Params["ap_base_delta"]
		frame.MHRBaseDelta += inst.Params["mhr_base_delta"]
	case "shred":
		frame.ArmourBaseDelta += inst.Params["armour_base_delta"] * float64(inst.Stacks)
	case "sunder":
		frame.MRBaseDelta += inst.Params["mr_base_delta"] * float64(inst.Stacks)
	case "bleeding":
		if dmg := inst.Params["dot_damage"]; dmg > 0 {
			frame.Events = append(frame.Events, Event{
				Type:     "damage",
				TargetID: unitID,
				Amount:   dmg,
				Source:   "bleeding",
			})
		}
	default:
		// Recognized by the catalog but without frame semantics yet
		// (immunity, deliberate): presence checks handle them.
	}
}

func lessMult(pctLess float64) float64 {
	if pctLess < 0 {
		pctLess = 0
	}
	m := 1 - pctLess/100
	if m < 0 {
		m = 0
	}
	return m
}

func moreMult(pctMore float64) float64 {
	m := 1 + pctMore/100
	if m < 0 {
		m = 0
	}
	return m
}
