package tablebase

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
)

// KingRookVsKing solves King+Rook vs King: a textbook forced mate, and the
// simplest of the three signatures since the Rook alone can confine the
// lone King to an ever-shrinking rectangle.
type KingRookVsKing struct{}

// NewKingRookVsKing builds a KingRookVsKing solver.
func NewKingRookVsKing() *KingRookVsKing { return &KingRookVsKing{} }

// CanSolve reports whether pos is exactly King+Rook vs King, in either
// color assignment.
func (s *KingRookVsKing) CanSolve(pos movegen.Position) bool {
	_, _, ok := matchSignature(pos, board.Rook)
	return ok
}

// Solve classifies pos and proposes a move toward mate.
func (s *KingRookVsKing) Solve(ctx context.Context, pos movegen.Position) (Result, bool) {
	attacker, defender, ok := matchSignature(pos, board.Rook)
	if !ok {
		return Result{}, false
	}
	return solve(ctx, pos, attacker, defender)
}

// Priority returns this solver's precedence in the Aggregator.
func (s *KingRookVsKing) Priority() int { return 80 }

// Name identifies this solver.
func (s *KingRookVsKing) Name() string { return "KingRookVsKing" }
