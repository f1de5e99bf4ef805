package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimward/arena9/internal/data"
	"github.com/grimward/arena9/internal/formulas"
	"github.com/grimward/arena9/internal/grid"
)

func testUnit(t *testing.T, team Team, slot int) *Unit {
	t.Helper()
	u, err := NewUnit(team, slot, DefaultBase(45, 40, 60, 20, 30), Build{
		WeaponKey:     "Sword",
		WeaponPassive: 2,
		OffhandKey:    "Shield",
	})
	require.NoError(t, err)
	return u
}

func TestNewUnitValidation(t *testing.T) {
	base := DefaultBase(45, 40, 60, 20, 30)

	_, err := NewUnit(TeamA, 0, base, Build{WeaponKey: "Sword"})
	assert.ErrorIs(t, err, grid.ErrInvalidSlot)

	_, err = NewUnit(TeamA, 1, DefaultBase(0, 40, 60, 20, 30), Build{WeaponKey: "Sword"})
	assert.ErrorIs(t, err, formulas.ErrInvalidLevel)

	_, err = NewUnit(TeamA, 1, base, Build{WeaponKey: "Scythe"})
	assert.ErrorIs(t, err, data.ErrUnknownKey)

	_, err = NewUnit(TeamA, 1, base, Build{WeaponKey: "Sword", Skills: []string{"meteor"}})
	assert.ErrorIs(t, err, data.ErrUnknownKey)
}

func TestRecomputeStatsIdempotent(t *testing.T) {
	u := testUnit(t, TeamA, 1)
	first := u.Stats
	second := u.RecomputeStats()
	third := u.RecomputeStats()
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
}

func TestRecomputeStatsDoesNotHealMidBattle(t *testing.T) {
	u := testUnit(t, TeamA, 1)
	require.Equal(t, u.Stats.HPMax, u.HP, "fresh unit starts at full HP")

	u.ApplyDamage(u.HP / 2)
	damaged := u.HP
	u.RecomputeStats()
	assert.Equal(t, damaged, u.HP, "recompute must not restore HP")
}

func TestAttributeModsFeedDerivation(t *testing.T) {
	// Sword passive 2 grants +10% to all attributes; VIT 30 -> 33 -> HP 1650.
	withPassive := testUnit(t, TeamA, 1)
	plain, err := NewUnit(TeamB, 1, DefaultBase(45, 40, 60, 20, 30), Build{
		WeaponKey:  "Sword",
		OffhandKey: "Shield",
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, plain.Stats.HPMax)
	assert.Equal(t, 1650.0, withPassive.Stats.HPMax)
}

func TestUnitAPGainUsesWeaponLines(t *testing.T) {
	u := testUnit(t, TeamA, 1)
	// Sword -20 base, Shield 20% less: (100-20)*0.8 = 64
	assert.InDelta(t, 64, u.Stats.APGain, 1e-9)
}

func TestApplyDamageFloorsAtZero(t *testing.T) {
	u := testUnit(t, TeamA, 1)
	u.ApplyDamage(u.HP + 5000)
	assert.Equal(t, 0.0, u.HP)
	assert.False(t, u.IsAlive())
}
