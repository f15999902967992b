package tablebase

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
)

// KingGoldVsKing solves King+Gold vs King. A lone Gold cannot confine a king
// the way a Rook does, but paired with its own King it can still drive the
// defender to the edge and mate there (§4.6).
type KingGoldVsKing struct{}

// NewKingGoldVsKing builds a KingGoldVsKing solver.
func NewKingGoldVsKing() *KingGoldVsKing { return &KingGoldVsKing{} }

// CanSolve reports whether pos is exactly King+Gold vs King, in either
// color assignment.
func (s *KingGoldVsKing) CanSolve(pos movegen.Position) bool {
	_, _, ok := matchSignature(pos, board.Gold)
	return ok
}

// Solve classifies pos and proposes a move toward mate.
func (s *KingGoldVsKing) Solve(ctx context.Context, pos movegen.Position) (Result, bool) {
	attacker, defender, ok := matchSignature(pos, board.Gold)
	if !ok {
		return Result{}, false
	}
	return solve(ctx, pos, attacker, defender)
}

// Priority returns this solver's precedence in the Aggregator.
func (s *KingGoldVsKing) Priority() int { return 85 }

// Name identifies this solver.
func (s *KingGoldVsKing) Name() string { return "KingGoldVsKing" }
