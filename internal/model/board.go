package model

import (
	"fmt"

	"github.com/grimward/arena9/internal/grid"
)

// Board stores the two formations, one unit per (team, slot).
type Board struct {
	teamA map[int]*Unit
	teamB map[int]*Unit
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		teamA: make(map[int]*Unit),
		teamB: make(map[int]*Unit),
	}
}

func (b *Board) side(team Team) map[int]*Unit {
	if team == TeamA {
		return b.teamA
	}
	return b.teamB
}

// Place puts a unit onto its team's grid. The slot must be valid and
// unoccupied.
func (b *Board) Place(u *Unit) error {
	if err := grid.Require(u.Slot); err != nil {
		return err
	}
	side := b.side(u.Team)
	if _, taken := side[u.Slot]; taken {
		return fmt.Errorf("%w: slot %d of team %s already occupied", grid.ErrInvalidSlot, u.Slot, u.Team)
	}
	side[u.Slot] = u
	return nil
}

// Get returns the unit at (team, slot), nil when empty.
func (b *Board) Get(team Team, slot int) *Unit {
	return b.side(team)[slot]
}

// IsAlive reports whether (team, slot) holds a living unit.
func (b *Board) IsAlive(team Team, slot int) bool {
	u := b.Get(team, slot)
	return u != nil && u.IsAlive()
}

// AliveSlots returns the slots of living units in ascending order.
func (b *Board) AliveSlots(team Team) []int {
	var out []int
	for s := grid.MinSlot; s <= grid.MaxSlot; s++ {
		if b.IsAlive(team, s) {
			out = append(out, s)
		}
	}
	return out
}

// LivingUnits returns the living units of a team in slot order.
func (b *Board) LivingUnits(team Team) []*Unit {
	var out []*Unit
	for s := grid.MinSlot; s <= grid.MaxSlot; s++ {
		if u := b.Get(team, s); u != nil && u.IsAlive() {
			out = append(out, u)
		}
	}
	return out
}

// AllUnits returns every placed unit, team A first, slot order within
// each team. Dead units are included.
func (b *Board) AllUnits() []*Unit {
	var out []*Unit
	for _, team := range []Team{TeamA, TeamB} {
		side := b.side(team)
		for s := grid.MinSlot; s <= grid.MaxSlot; s++ {
			if u, ok := side[s]; ok {
				out = append(out, u)
			}
		}
	}
	return out
}

// HasAlive reports whether the team still has a living unit.
func (b *Board) HasAlive(team Team) bool {
	return len(b.AliveSlots(team)) > 0
}

// ExposedFrontline returns, per vertical line, the foremost living slot.
// A deeper unit becomes exposed as soon as everything in front of it in
// its line is gone, regardless of the other lines.
func (b *Board) ExposedFrontline(team Team) []int {
	var exposed []int
	for line := 0; line < grid.Cols; line++ {
		slots, _ := grid.SlotsInLine(line)
		for _, s := range slots {
			if b.IsAlive(team, s) {
				exposed = append(exposed, s)
				break
			}
		}
	}
	return exposed
}
