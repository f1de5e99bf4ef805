// Package battle runs the simulation: the team-turn scheduler with its
// early-turn fairness and two-turn tick, the engine loop, and the
// default action strategy executing weapon attacks and skill casts.
package battle

// Config are the engine-level knobs. Combat math lives in formulas and
// the catalogs; nothing here changes a damage number.
type Config struct {
	MaxTeamTurns    int
	ActionAPCost    int
	APThreshold     int
	NormalMaxActors int
}

// DefaultConfig returns the standard ruleset: 200 team turns, actions
// cost 100 AP, normal turns allow up to 5 actors at AP >= 100.
func DefaultConfig() Config {
	return Config{
		MaxTeamTurns:    200,
		ActionAPCost:    100,
		APThreshold:     100,
		NormalMaxActors: 5,
	}
}

// openerCap maps the first four global team turns onto their actor caps.
// During these turns the AP threshold is ignored so both teams ramp up
// fairly; from turn five the normal cap and threshold apply.
var openerCap = map[int]int{1: 2, 2: 3, 3: 4, 4: 5}

// selectionParams returns the actor cap and whether the AP threshold is
// ignored for a given global team turn.
func (c Config) selectionParams(teamTurn int) (maxActors int, ignoreThreshold bool) {
	if cap, ok := openerCap[teamTurn]; ok {
		return cap, true
	}
	return c.NormalMaxActors, false
}
