// Package tablebase implements small, hand-written endgame solvers for
// reduced-material positions where full search is both unnecessary and
// unreliable (§4.6): King+Rook vs King, King+Gold vs King, and King+Silver
// vs King. Each solver recognizes its material signature, proposes a best
// move, and estimates distance-to-mate via a bounded search with a heuristic
// fallback.
package tablebase

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
)

// Outcome is the game-theoretic result of a solved position, from the side
// to move's perspective.
type Outcome int

const (
	Unknown Outcome = iota
	Win
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Result is a solver's verdict on a position: the outcome, a best move
// toward it (zero Move if none applies, e.g. already mated), and the
// distance to mate in plies if the solver computed or estimated one.
type Result struct {
	Outcome Outcome
	Move    board.Move
	HasMove bool
	DTM     int
}

// Solver is the tablebase-style endgame solver contract (§4.6). CanSolve is
// a cheap material-signature check; Solve does the actual work and is only
// called when CanSolve has already returned true.
type Solver interface {
	CanSolve(pos movegen.Position) bool
	Solve(ctx context.Context, pos movegen.Position) (Result, bool)
	Priority() int
	Name() string
}

// maxSearchDepth bounds the iterative-deepening DTM search in solve; past
// it, every solver below falls back to a heuristic estimate.
const maxSearchDepth = 25

// onlyHasKing reports whether color c has no pieces other than its King on
// the board and nothing in hand -- the "vs King" side of every signature
// this package solves.
func onlyHasKing(b *board.Board, hands [board.NumColors]board.Hand, c board.Color) bool {
	if !hands[c].IsEmpty() {
		return false
	}
	for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
		if p == board.King {
			continue
		}
		if !b.Piece(c, p).IsEmpty() {
			return false
		}
	}
	return true
}

// hasExactlyMaterial reports whether color c's board material is precisely
// one King plus one of each piece type named in pieces (no more, no fewer,
// nothing else), and an empty hand.
func hasExactlyMaterial(b *board.Board, hands [board.NumColors]board.Hand, c board.Color, pieces ...board.PieceType) bool {
	if !hands[c].IsEmpty() {
		return false
	}
	want := map[board.PieceType]int{board.King: 1}
	for _, p := range pieces {
		want[p]++
	}
	for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
		if b.Piece(c, p).PopCount() != want[p] {
			return false
		}
	}
	return true
}

// matchSignature reports whether either color has exactly King+piece while
// its opponent has only a King, returning (that color, the opponent, true)
// on the first match. Shared by every single-extra-piece solver in this
// package.
func matchSignature(pos movegen.Position, piece board.PieceType) (board.Color, board.Color, bool) {
	for _, c := range []board.Color{board.Black, board.White} {
		opp := c.Opponent()
		if onlyHasKing(pos.Board, pos.Hands, opp) &&
			hasExactlyMaterial(pos.Board, pos.Hands, c, piece) {
			return c, opp, true
		}
	}
	return 0, 0, false
}

// manhattan is the board-distance metric every solver's heuristics share.
func manhattan(a, b board.Square) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col() - b.Col()
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Aggregator tries a fixed set of solvers in descending priority order and
// returns the first one both willing and able to solve the position.
type Aggregator struct {
	solvers []Solver
}

// NewAggregator builds an Aggregator over the given solvers, sorted by
// descending Priority().
func NewAggregator(solvers ...Solver) *Aggregator {
	sorted := make([]Solver, len(solvers))
	copy(sorted, solvers)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Priority() < sorted[j].Priority(); j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return &Aggregator{solvers: sorted}
}

// NewDefault builds an Aggregator with every solver this package provides.
func NewDefault() *Aggregator {
	return NewAggregator(NewKingRookVsKing(), NewKingGoldVsKing(), NewKingSilverVsKing())
}

// Solve tries each registered solver in priority order and returns the
// first solved Result along with the name of the solver that produced it.
func (a *Aggregator) Solve(ctx context.Context, pos movegen.Position) (Result, string, bool) {
	for _, s := range a.solvers {
		if !s.CanSolve(pos) {
			continue
		}
		if res, ok := s.Solve(ctx, pos); ok {
			return res, s.Name(), true
		}
	}
	return Result{}, "", false
}
