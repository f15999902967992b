// Package fen decodes and encodes the shogi board notation used throughout
// this module: a board layout field, a side-to-move field, a captured-pieces
// (hand) field, and a move counter, separated by spaces -- structurally the
// same four-field shape as the teacher engine's chess FEN, adapted to a 9x9
// board, drops, and promotion.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// Initial is the FEN-like string for the standard shogi starting position,
// both hands empty, Black to move.
const Initial = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// letterToPiece is the inverse of (PieceType).Letter: uppercase ASCII base
// letter to unpromoted piece type.
var letterToPiece = map[byte]board.PieceType{
	'P': board.Pawn,
	'L': board.Lance,
	'N': board.Knight,
	'S': board.Silver,
	'G': board.Gold,
	'B': board.Bishop,
	'R': board.Rook,
	'K': board.King,
}

// Decode parses a FEN-like string into a board, both players' hands, the
// side to move, and the move number.
func Decode(s string) (*board.Board, [board.NumColors]board.Hand, board.Color, int, error) {
	var hands [board.NumColors]board.Hand

	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 4 {
		return nil, hands, 0, 0, fmt.Errorf("fen: expected 2-4 fields, got %d: %q", len(fields), s)
	}

	b, err := parseBoard(fields[0])
	if err != nil {
		return nil, hands, 0, 0, fmt.Errorf("fen: board: %w", err)
	}

	turn, err := parseColor(fields[1])
	if err != nil {
		return nil, hands, 0, 0, fmt.Errorf("fen: turn: %w", err)
	}

	if len(fields) >= 3 {
		hands, err = parseHands(fields[2])
		if err != nil {
			return nil, hands, 0, 0, fmt.Errorf("fen: hands: %w", err)
		}
	}

	moveNum := 1
	if len(fields) == 4 {
		moveNum, err = strconv.Atoi(fields[3])
		if err != nil {
			return nil, hands, 0, 0, fmt.Errorf("fen: move number: %w", err)
		}
	}

	return b, hands, turn, moveNum, nil
}

func parseBoard(s string) (*board.Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != int(board.NumRanks) {
		return nil, fmt.Errorf("expected %d ranks, got %d", board.NumRanks, len(rows))
	}

	b := board.Empty()
	for row, rank := range rows {
		col := 0
		promoted := false
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			switch {
			case ch == '+':
				promoted = true
			case ch >= '1' && ch <= '9':
				col += int(ch - '0')
				promoted = false
			default:
				c := board.Black
				base := ch
				if ch >= 'a' && ch <= 'z' {
					c = board.White
					base = ch - ('a' - 'A')
				}
				p, ok := letterToPiece[base]
				if !ok {
					return nil, fmt.Errorf("rank %d: bad piece letter %q", row, ch)
				}
				if promoted {
					promo, ok := p.Promote()
					if !ok {
						return nil, fmt.Errorf("rank %d: %v cannot promote", row, p)
					}
					p = promo
				}
				if col >= int(board.NumFiles) {
					return nil, fmt.Errorf("rank %d: overflowed %d files", row, board.NumFiles)
				}
				b.PlacePiece(c, p, board.NewSquare(row, col))
				col++
				promoted = false
			}
		}
		if col != int(board.NumFiles) {
			return nil, fmt.Errorf("rank %d: expected %d files, got %d", row, board.NumFiles, col)
		}
	}
	return b, nil
}

func parseColor(s string) (board.Color, error) {
	switch s {
	case "b":
		return board.Black, nil
	case "w":
		return board.White, nil
	default:
		return 0, fmt.Errorf("bad side to move %q", s)
	}
}

// parseHands parses a captured-pieces field like "2Pb" (Black holds 2 pawns,
// White holds 1 bishop) or "-" for empty hands. A bare letter means a count
// of 1; a leading number sets the count of the piece letter that follows.
func parseHands(s string) ([board.NumColors]board.Hand, error) {
	var hands [board.NumColors]board.Hand
	if s == "-" {
		return hands, nil
	}

	count := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			continue
		}
		c := board.Black
		base := ch
		if ch >= 'a' && ch <= 'z' {
			c = board.White
			base = ch - ('a' - 'A')
		}
		p, ok := letterToPiece[base]
		if !ok || !p.IsBasic() {
			return hands, fmt.Errorf("bad hand piece letter %q", ch)
		}
		if count == 0 {
			count = 1
		}
		for n := 0; n < count; n++ {
			hands[c] = hands[c].Add(p)
		}
		count = 0
	}
	return hands, nil
}

// Encode renders a board, both hands, the side to move, and the move number
// back into FEN-like notation.
func Encode(b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveNum int) string {
	var sb strings.Builder

	for row := 0; row < int(board.NumRanks); row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for col := 0; col < int(board.NumFiles); col++ {
			sq := board.NewSquare(row, col)
			c, p, ok := b.Square(sq)
			if !ok {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteString(printPiece(c, p))
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(printColor(turn))
	sb.WriteByte(' ')
	sb.WriteString(printHands(hands))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(moveNum))

	return sb.String()
}

func printPiece(c board.Color, p board.PieceType) string {
	l, promoted := p.Letter()
	if c == board.White {
		l = l + ('a' - 'A')
	}
	if promoted {
		return "+" + string(l)
	}
	return string(l)
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func printHands(hands [board.NumColors]board.Hand) string {
	var sb strings.Builder
	for _, c := range []board.Color{board.Black, board.White} {
		for _, p := range board.BasicPieceTypes {
			n := hands[c].Count(p)
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteString(printPiece(c, p))
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
