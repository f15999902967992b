// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board/fen"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth       = flag.Int("depth", 4, "Search depth")
	position    = flag.String("fen", "", "Start position (default to standard)")
	divide      = flag.Bool("divide", false, "Divide counts by initial move")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *showVersion {
		println(fmt.Sprintf("perft %v", version))
		return
	}

	if *position == "" {
		*position = fen.Initial
	}

	b, hands, turn, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}
	pos := movegen.Position{Board: b, Hands: hands, Turn: turn}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func search(pos movegen.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range movegen.LegalMoves(pos) {
		next := apply(pos, m)
		count := search(next, depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}

// apply plays m on a cloned position, updating the mover's hand for a
// capture (added to the mover's hand, unpromoted) or a drop (removed from
// the mover's hand).
func apply(pos movegen.Position, m board.Move) movegen.Position {
	next := pos.Clone()
	captured, hadCapture := next.Board.MakeMove(m)
	if hadCapture {
		next.Hands[m.Color] = next.Hands[m.Color].Add(captured)
	}
	if m.IsDrop {
		next.Hands[m.Color], _ = next.Hands[m.Color].Remove(m.PieceType)
	}
	next.Turn = m.Color.Opponent()
	return next
}
