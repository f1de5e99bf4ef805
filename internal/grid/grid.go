// Package grid maps battle slots 1..9 onto the 3x3 formation grid and
// answers the geometry queries targeting and AoE expansion depend on.
//
// Rows are horizontal, numbered front to back:
//
//	row 0 (front): 1 2 3
//	row 1 (mid):   4 5 6
//	row 2 (back):  7 8 9
//
// Lines are vertical (columns): {1,4,7}, {2,5,8}, {3,6,9}.
// The mapping is identical for both teams; sides are handled by
// targeting rules, not by slot numbering.
package grid

import (
	"errors"
	"fmt"
)

const (
	Rows = 3
	Cols = 3

	MinSlot = 1
	MaxSlot = 9
)

// ErrInvalidSlot reports a slot outside 1..9 or a malformed position.
var ErrInvalidSlot = errors.New("grid: invalid slot")

// Valid reports whether slot is a legal grid slot.
func Valid(slot int) bool {
	return slot >= MinSlot && slot <= MaxSlot
}

// Require returns ErrInvalidSlot (wrapped with the offending value) when
// slot is out of range.
func Require(slot int) error {
	if !Valid(slot) {
		return fmt.Errorf("%w: %d (must be 1..9)", ErrInvalidSlot, slot)
	}
	return nil
}

// RowOf returns the row index 0..2 of a valid slot.
func RowOf(slot int) int {
	return (slot - 1) / Cols
}

// ColOf returns the column index 0..2 of a valid slot.
func ColOf(slot int) int {
	return (slot - 1) % Cols
}

// LineOf returns the vertical line index of a valid slot.
// In this grid a line is exactly a column.
func LineOf(slot int) int {
	return ColOf(slot)
}

// SlotAt converts a (row, col) position back into a slot.
func SlotAt(row, col int) (int, error) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, fmt.Errorf("%w: position (%d,%d)", ErrInvalidSlot, row, col)
	}
	return row*Cols + col + 1, nil
}

// SlotsInRow returns the three slots of a row, front-to-back ordering of
// rows and left-to-right within the row.
func SlotsInRow(row int) ([]int, error) {
	if row < 0 || row >= Rows {
		return nil, fmt.Errorf("%w: row %d", ErrInvalidSlot, row)
	}
	base := row * Cols
	return []int{base + 1, base + 2, base + 3}, nil
}

// SlotsInLine returns the slots of a vertical line ordered front row first.
func SlotsInLine(line int) ([]int, error) {
	if line < 0 || line >= Cols {
		return nil, fmt.Errorf("%w: line %d", ErrInvalidSlot, line)
	}
	return []int{line + 1, line + 4, line + 7}, nil
}

// LeftOf returns the slot directly left of slot in the same row.
// ok is false at the row edge.
func LeftOf(slot int) (int, bool) {
	if ColOf(slot) == 0 {
		return 0, false
	}
	return slot - 1, true
}

// RightOf returns the slot directly right of slot in the same row.
func RightOf(slot int) (int, bool) {
	if ColOf(slot) == Cols-1 {
		return 0, false
	}
	return slot + 1, true
}

// UpOf returns the slot one row closer to the front in the same line.
func UpOf(slot int) (int, bool) {
	if RowOf(slot) == 0 {
		return 0, false
	}
	return slot - Cols, true
}

// DownOf returns the slot one row deeper in the same line.
func DownOf(slot int) (int, bool) {
	if RowOf(slot) == Rows-1 {
		return 0, false
	}
	return slot + Cols, true
}

// RowNeighbors returns the left/right neighbors of slot in its row.
func RowNeighbors(slot int) []int {
	out := make([]int, 0, 2)
	if s, ok := LeftOf(slot); ok {
		out = append(out, s)
	}
	if s, ok := RightOf(slot); ok {
		out = append(out, s)
	}
	return out
}

// CrossNeighbors returns the up/down/left/right neighbors of slot,
// excluding the center, in a stable order.
func CrossNeighbors(slot int) []int {
	out := make([]int, 0, 4)
	if s, ok := UpOf(slot); ok {
		out = append(out, s)
	}
	if s, ok := DownOf(slot); ok {
		out = append(out, s)
	}
	if s, ok := LeftOf(slot); ok {
		out = append(out, s)
	}
	if s, ok := RightOf(slot); ok {
		out = append(out, s)
	}
	return out
}

// BehindInLine returns the slot steps rows behind slot in the same line
// (1 -> 4 -> 7). ok is false when the position falls off the grid.
func BehindInLine(slot, steps int) (int, bool) {
	if steps <= 0 {
		return slot, true
	}
	row := RowOf(slot) + steps
	if row >= Rows {
		return 0, false
	}
	return row*Cols + ColOf(slot) + 1, true
}
