package battle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimward/arena9/internal/model"
	"github.com/grimward/arena9/internal/rng"
	"github.com/grimward/arena9/internal/status"
)

// noopStrategy never acts; it keeps scheduler tests free of combat noise.
type noopStrategy struct{}

func (noopStrategy) Act(*Engine, *model.BattleState, *model.Unit, status.Frame) error {
	return nil
}

func newTestEngine(t *testing.T, cfg Config, strat Strategy) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, strat)
	require.NoError(t, err)
	return e
}

func swordSetup(team model.Team, slot int) UnitSetup {
	return UnitSetup{
		Team: team,
		Slot: slot,
		Base: model.DefaultBase(45, 60, 30, 10, 50),
		Build: model.Build{
			WeaponKey:  "Sword",
			OffhandKey: "Shield",
		},
	}
}

func logText(sink *model.MemorySink) string {
	return strings.Join(sink.Lines, "\n")
}

func TestSelectionParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		turn       int
		wantMax    int
		wantIgnore bool
	}{
		{1, 2, true},
		{2, 3, true},
		{3, 4, true},
		{4, 5, true},
		{5, 5, false},
		{17, 5, false},
	}
	for _, tt := range tests {
		gotMax, gotIgnore := cfg.selectionParams(tt.turn)
		assert.Equal(t, tt.wantMax, gotMax, "turn %d max", tt.turn)
		assert.Equal(t, tt.wantIgnore, gotIgnore, "turn %d ignore", tt.turn)
	}
}

func TestOpenerIgnoresAPThreshold(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})
	sink := &model.MemorySink{}

	// Sword+Shield gains 64 AP per turn, well under the 100 threshold.
	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamA, 2),
		swordSetup(model.TeamA, 3),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	_, ended, err := e.StepTeamTurn(st)
	require.NoError(t, err)
	require.False(t, ended)

	assert.Contains(t, logText(sink),
		"Actors selected: max=2, rule=ignore AP>=100 (early fairness T1): A-1(AP=64), A-2(AP=64)")
}

func TestOpenerActorCountsAcrossFourTurns(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})
	sink := &model.MemorySink{}

	// Six units a side, all below the AP threshold the whole opener, so
	// only the per-turn caps bound the counts.
	var roster []UnitSetup
	for slot := 1; slot <= 6; slot++ {
		roster = append(roster, swordSetup(model.TeamA, slot), swordSetup(model.TeamB, slot))
	}
	st, err := e.NewBattle(roster, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	for turn := 1; turn <= 4; turn++ {
		_, ended, err := e.StepTeamTurn(st)
		require.NoError(t, err)
		require.False(t, ended)
	}

	var counts []int
	for _, line := range sink.Lines {
		if strings.Contains(line, "Actors selected") {
			counts = append(counts, strings.Count(line, "(AP="))
		}
	}
	assert.Equal(t, []int{2, 3, 4, 5}, counts)
}

func TestThresholdGatesFromTurnFive(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})
	sink := &model.MemorySink{}

	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	st.TeamTurn = 4
	_, ended, err := e.StepTeamTurn(st)
	require.NoError(t, err)
	require.False(t, ended)

	// One gain of 64 AP stays below the threshold, so nobody acts.
	assert.Contains(t, logText(sink), "Actors selected: max=5, rule=AP>=100: (none)")
}

func TestCooldownStartsHotAndTicksEveryOtherTurn(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})

	caster := UnitSetup{
		Team: model.TeamA,
		Slot: 8,
		Base: model.DefaultBase(45, 30, 25, 70, 30),
		Build: model.Build{
			WeaponKey: "Staff",
			Skills:    []string{"fireball"},
		},
	}
	st, err := e.NewBattle([]UnitSetup{caster, swordSetup(model.TeamB, 1)},
		rng.New(7), model.TeamA, nil)
	require.NoError(t, err)

	u := st.Board.Get(model.TeamA, 8)
	require.NotNil(t, u)
	require.Equal(t, 3, u.Cooldowns["fireball"], "skills start on cooldown")

	want := []int{3, 2, 2, 1, 1, 0}
	for turn, w := range want {
		_, _, err := e.StepTeamTurn(st)
		require.NoError(t, err)
		assert.Equal(t, w, u.Cooldowns["fireball"], "cooldown after turn %d", turn+1)
	}
}

func TestTwoTurnTickExpiresStatuses(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})

	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, nil)
	require.NoError(t, err)

	u := st.Board.Get(model.TeamA, 1)
	applied, err := e.Status().Apply(u.Statuses, "slow", status.ApplyOptions{
		Duration: 2,
		Params:   map[string]float64{"ap_base_delta": -10},
	})
	require.NoError(t, err)
	require.True(t, applied)

	_, _, err = e.StepTeamTurn(st) // turn 1, no tick
	require.NoError(t, err)
	assert.Equal(t, 2, u.Statuses["slow"].Remaining)

	_, _, err = e.StepTeamTurn(st) // turn 2, tick
	require.NoError(t, err)
	assert.Equal(t, 1, u.Statuses["slow"].Remaining)

	_, _, err = e.StepTeamTurn(st) // turn 3, no tick
	require.NoError(t, err)
	_, _, err = e.StepTeamTurn(st) // turn 4, tick: expires
	require.NoError(t, err)
	assert.False(t, status.Has(u.Statuses, "slow"))
}

func TestSlowReducesAPGain(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})
	sink := &model.MemorySink{}

	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	u := st.Board.Get(model.TeamA, 1)
	_, err = e.Status().Apply(u.Statuses, "slow", status.ApplyOptions{
		Duration: 4,
		Params:   map[string]float64{"ap_base_delta": -10},
	})
	require.NoError(t, err)

	_, _, err = e.StepTeamTurn(st)
	require.NoError(t, err)

	// (100 - 20 - 10) * 0.8 = 56 instead of the unslowed 64.
	assert.Contains(t, logText(sink), "AP gain: A-1: 0 -> 56 (+56)")
}

func TestStunBlocksAPGainAndActing(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})
	sink := &model.MemorySink{}

	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	u := st.Board.Get(model.TeamA, 1)
	_, err = e.Status().Apply(u.Statuses, "stun", status.ApplyOptions{Duration: 2})
	require.NoError(t, err)

	_, ended, err := e.StepTeamTurn(st)
	require.NoError(t, err)
	require.False(t, ended)

	assert.Equal(t, 0, int(u.AP))
	text := logText(sink)
	assert.Contains(t, text, "AP gain: A-1: 0 -> 0 (+0)")
	assert.Contains(t, text, "Actors selected: max=2, rule=ignore AP>=100 (early fairness T1): (none)")
}

func TestOrbGrantsImmunityAtBattleStart(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})

	caster := UnitSetup{
		Team: model.TeamA,
		Slot: 8,
		Base: model.DefaultBase(45, 30, 25, 70, 30),
		Build: model.Build{
			WeaponKey:  "Staff",
			OffhandKey: "Orb",
		},
	}
	st, err := e.NewBattle([]UnitSetup{caster, swordSetup(model.TeamB, 1)},
		rng.New(7), model.TeamA, nil)
	require.NoError(t, err)

	u := st.Board.Get(model.TeamA, 8)
	require.True(t, status.Has(u.Statuses, "immunity"))
	assert.Equal(t, 4, u.Statuses["immunity"].Remaining)

	applied, err := e.Status().Apply(u.Statuses, "stun", status.ApplyOptions{Duration: 2})
	require.NoError(t, err)
	assert.False(t, applied, "immunity blocks non-positive statuses")
}

func TestDOTCanWipeActingTeam(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), noopStrategy{})
	sink := &model.MemorySink{}

	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	u := st.Board.Get(model.TeamA, 1)
	_, err = e.Status().Apply(u.Statuses, "bleeding", status.ApplyOptions{
		Duration: 2,
		Params:   map[string]float64{"dot_damage": u.HP * 10},
	})
	require.NoError(t, err)

	out, ended, err := e.StepTeamTurn(st)
	require.NoError(t, err)
	require.True(t, ended)
	assert.Equal(t, OutcomeB, out)
	assert.Contains(t, logText(sink), "==> Team B wins (Team A defeated)")
}

func TestRunDrawsAtMaxTeamTurns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTeamTurns = 4
	e := newTestEngine(t, cfg, noopStrategy{})
	sink := &model.MemorySink{}

	st, err := e.NewBattle([]UnitSetup{
		swordSetup(model.TeamA, 1),
		swordSetup(model.TeamB, 1),
	}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	out, err := e.Run(st)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDraw, out)
	assert.Contains(t, logText(sink), "==> Draw (max team turns 4 reached)")
}

func TestRunBasicAttackVictory(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), nil)

	strong := swordSetup(model.TeamA, 1)
	weak := UnitSetup{
		Team:  model.TeamB,
		Slot:  1,
		Base:  model.DefaultBase(1, 1, 1, 1, 1),
		Build: model.Build{WeaponKey: "Sword"},
	}
	sink := &model.MemorySink{}
	st, err := e.NewBattle([]UnitSetup{strong, weak}, rng.New(7), model.TeamA, sink)
	require.NoError(t, err)

	out, err := e.Run(st)
	require.NoError(t, err)
	assert.Equal(t, OutcomeA, out)
	text := logText(sink)
	assert.Contains(t, text, "DEATH: B-1 eliminated")
	assert.Contains(t, text, "==> Team A wins (Team B defeated)")
}
