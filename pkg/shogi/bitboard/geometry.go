package bitboard

// Geometry computes rank/file/diagonal memberships for the canonical square
// index sq = row*NumFiles + col, rows and cols both 0..8.

// RankOf returns the rank (row) of sq.
func RankOf(sq int) int {
	return sq / NumFiles
}

// FileOf returns the file (col) of sq.
func FileOf(sq int) int {
	return sq % NumFiles
}

// DiagonalOf returns the r-c diagonal index of sq, in 0..NumDiagonals-1.
func DiagonalOf(sq int) int {
	return RankOf(sq) - FileOf(sq) + (NumFiles - 1)
}

// RankMask returns the bitboard of every square on rank r.
func RankMask(r int) Bitboard {
	var bb Bitboard
	for c := 0; c < NumFiles; c++ {
		bb = bb.Set(r*NumFiles + c)
	}
	return bb
}

// FileMask returns the bitboard of every square on file f.
func FileMask(f int) Bitboard {
	var bb Bitboard
	for r := 0; r < NumRanks; r++ {
		bb = bb.Set(r*NumFiles + f)
	}
	return bb
}

// DiagonalMask returns the bitboard of every square on diagonal d (0..NumDiagonals-1).
func DiagonalMask(d int) Bitboard {
	var bb Bitboard
	for sq := 0; sq < NumSquares; sq++ {
		if DiagonalOf(sq) == d {
			bb = bb.Set(sq)
		}
	}
	return bb
}

// SameRank reports whether a and b lie on the same rank.
func SameRank(a, b int) bool {
	return RankOf(a) == RankOf(b)
}

// SameFile reports whether a and b lie on the same file.
func SameFile(a, b int) bool {
	return FileOf(a) == FileOf(b)
}

// SameDiagonal reports whether a and b lie on the same r-c diagonal.
func SameDiagonal(a, b int) bool {
	return DiagonalOf(a) == DiagonalOf(b)
}

// Geometry summarizes the distribution of set bits across ranks, files, and
// diagonals.
type Geometry struct {
	RankCounts     [NumRanks]int
	FileCounts     [NumFiles]int
	DiagonalCounts [NumDiagonals]int
	Total          int
}

// AnalyzeGeometry computes rank/file/diagonal occupancy counts for b.
func AnalyzeGeometry(b Bitboard) Geometry {
	var g Geometry
	it := Bits(b)
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		g.RankCounts[RankOf(sq)]++
		g.FileCounts[FileOf(sq)]++
		g.DiagonalCounts[DiagonalOf(sq)]++
		g.Total++
	}
	return g
}
