package movegen

import "github.com/komainu-shogi/shogicore/pkg/shogi/board"

// LegalMoves returns every move -- board move or drop -- available to the
// side to move that does not leave its own king in check afterward. This is
// the full legal move set referenced by §4.3: pseudo-legal generation plus
// the check filter plus the drop-specific restrictions.
func LegalMoves(pos Position) []board.Move {
	candidates := PseudoLegalBoardMoves(pos.Board, pos.Turn)
	candidates = append(candidates, PseudoLegalDrops(pos)...)

	var legal []board.Move
	for _, mv := range candidates {
		if isLegal(pos, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// isLegal applies mv to a clone of pos's board and reports whether the
// mover's own king is safe afterward.
func isLegal(pos Position, mv board.Move) bool {
	clone := pos.Board.Clone()
	clone.MakeMove(mv)
	return !clone.IsKingInCheck(mv.Color)
}

// IsCheckmate reports whether the side to move is in check with no legal
// move available.
func IsCheckmate(pos Position) bool {
	return pos.Board.IsKingInCheck(pos.Turn) && len(LegalMoves(pos)) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move available (the shogi no-legal-move-without-check case; unlike
// chess this is vanishingly rare since pieces may nearly always be dropped,
// but the predicate is still well defined).
func IsStalemate(pos Position) bool {
	return !pos.Board.IsKingInCheck(pos.Turn) && len(LegalMoves(pos)) == 0
}
