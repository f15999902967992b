package tablebase

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
)

// KingSilverVsKing solves King+Silver vs King. The Silver's asymmetric step
// pattern (diagonal in both directions, straight only forward) makes this
// the hardest of the three signatures to force a mate with (§4.6). The
// shared search in solve reports a draw only when every line it explores
// ends in stalemate; a position it cannot resolve within its budget falls
// back to the heuristic, which reports a win for the side with the Silver.
type KingSilverVsKing struct{}

// NewKingSilverVsKing builds a KingSilverVsKing solver.
func NewKingSilverVsKing() *KingSilverVsKing { return &KingSilverVsKing{} }

// CanSolve reports whether pos is exactly King+Silver vs King, in either
// color assignment.
func (s *KingSilverVsKing) CanSolve(pos movegen.Position) bool {
	_, _, ok := matchSignature(pos, board.Silver)
	return ok
}

// Solve classifies pos and proposes a move toward mate (or the best
// available defense, if none is forced).
func (s *KingSilverVsKing) Solve(ctx context.Context, pos movegen.Position) (Result, bool) {
	attacker, defender, ok := matchSignature(pos, board.Silver)
	if !ok {
		return Result{}, false
	}
	return solve(ctx, pos, attacker, defender)
}

// Priority returns this solver's precedence in the Aggregator.
func (s *KingSilverVsKing) Priority() int { return 90 }

// Name identifies this solver.
func (s *KingSilverVsKing) Name() string { return "KingSilverVsKing" }
