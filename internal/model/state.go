package model

import (
	"fmt"

	"github.com/grimward/arena9/internal/rng"
)

// BattleState is everything mutable about one running battle: the board,
// the shared RNG, the team-turn counter and the log sink.
type BattleState struct {
	Board *Board
	RNG   *rng.Source

	// TeamTurn counts completed+current team turns, starting at 1 for
	// the first team's first turn. It drives the two-turn tick.
	TeamTurn     int
	StartingTeam Team

	sink Sink
}

// NewBattleState wires a board, RNG and sink into a fresh state. A nil
// sink discards the battle log.
func NewBattleState(board *Board, src *rng.Source, starting Team, sink Sink) *BattleState {
	return &BattleState{
		Board:        board,
		RNG:          src,
		StartingTeam: starting,
		sink:         sink,
	}
}

// Logf appends one formatted line to the battle log.
func (s *BattleState) Logf(format string, args ...any) {
	if s.sink == nil {
		return
	}
	s.sink.Line(fmt.Sprintf(format, args...))
}

// TeamToAct returns whose team turn it currently is, from strict
// alternation off the starting team.
func (s *BattleState) TeamToAct() Team {
	if s.TeamTurn%2 == 1 {
		return s.StartingTeam
	}
	return Opponent(s.StartingTeam)
}
