// Package movegen builds on pkg/shogi/board's attack primitives to generate
// pseudo-legal and legal shogi moves, including drops and their associated
// restrictions, and to answer checkmate/stalemate queries.
//
// It imports board one-directionally: board never imports movegen. That
// keeps Board.IsKingInCheck (used by search and eval alike) free of a
// dependency on full move enumeration.
package movegen

import "github.com/komainu-shogi/shogicore/pkg/shogi/board"

// Position bundles the three pieces of state a move generator needs: the
// board itself, both hands, and whose turn it is. Board deliberately has no
// hand field of its own (make_move never touches it -- see board.go); this
// is where the full game-state contract the rest of the engine consumes
// lives.
type Position struct {
	Board *board.Board
	Hands [board.NumColors]board.Hand
	Turn  board.Color
}

// Clone returns a deep-enough copy of p suitable for speculative move
// application: a fresh Board clone plus copied (value-semantics) hands.
func (p Position) Clone() Position {
	return Position{
		Board: p.Board.Clone(),
		Hands: p.Hands,
		Turn:  p.Turn,
	}
}
