package bitboard

import (
	"math/bits"

	"github.com/seekerror/stdlib/pkg/lang"
)

// PopCount returns the number of set bits in b, using the implementation
// selected by the process's PlatformCapabilities.
func (b Bitboard) PopCount() int {
	switch DetectPlatformCapabilities().Popcount {
	case Hardware:
		return PopCountHardware(b)
	case BitParallel:
		return PopCountSWAR(b)
	default:
		return PopCountSoftware(b)
	}
}

// PopCountSoftware counts set bits with a portable bit-by-bit loop.
func PopCountSoftware(b Bitboard) int {
	count := 0
	for _, word := range [2]uint64{b.Lo, b.Hi} {
		for word != 0 {
			count += int(word & 1)
			word >>= 1
		}
	}
	return count
}

// PopCountSWAR counts set bits with the classic SIMD-within-a-register
// shift/mask/multiply technique, fully portable across architectures.
func PopCountSWAR(b Bitboard) int {
	return swar64(b.Lo) + swar64(b.Hi)
}

func swar64(x uint64) int {
	const (
		m1 = 0x5555555555555555
		m2 = 0x3333333333333333
		m4 = 0x0f0f0f0f0f0f0f0f
		h1 = 0x0101010101010101
	)
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h1) >> 56)
}

// PopCountHardware counts set bits via math/bits, which the compiler lowers
// to the native POPCNT instruction on platforms that support it.
func PopCountHardware(b Bitboard) int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// LSB returns the index of the least-significant set bit, or None if b is
// empty.
func LSB(b Bitboard) lang.Optional[int] {
	switch DetectPlatformCapabilities().BitScan {
	case Software, BitParallel:
		return lsbDeBruijn(b)
	default:
		return lsbHardware(b)
	}
}

// MSB returns the index of the most-significant set bit, or None if b is
// empty.
func MSB(b Bitboard) lang.Optional[int] {
	switch DetectPlatformCapabilities().BitScan {
	case Software, BitParallel:
		return msbDeBruijn(b)
	default:
		return msbHardware(b)
	}
}

func lsbHardware(b Bitboard) lang.Optional[int] {
	if b.Lo != 0 {
		return lang.Some(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return lang.Some(64 + bits.TrailingZeros64(b.Hi))
	}
	return lang.Optional[int]{}
}

func msbHardware(b Bitboard) lang.Optional[int] {
	if b.Hi != 0 {
		return lang.Some(64 + 63 - bits.LeadingZeros64(b.Hi))
	}
	if b.Lo != 0 {
		return lang.Some(63 - bits.LeadingZeros64(b.Lo))
	}
	return lang.Optional[int]{}
}

// deBruijn64 and deBruijnTable implement the classic portable De Bruijn
// multiplication trick for locating the lowest set bit of a 64-bit word
// without relying on any CPU intrinsic.
const deBruijn64 = 0x03f79d71b4cb0a89

var deBruijnTable = [64]int{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}

func lsbWord(word uint64) int {
	return deBruijnTable[((word&-word)*deBruijn64)>>58]
}

func lsbDeBruijn(b Bitboard) lang.Optional[int] {
	if b.Lo != 0 {
		return lang.Some(lsbWord(b.Lo))
	}
	if b.Hi != 0 {
		return lang.Some(64 + lsbWord(b.Hi))
	}
	return lang.Optional[int]{}
}

// msbDeBruijn locates the highest set bit portably by folding the word down
// to a single trailing run of 1s and reusing the LSB De Bruijn table.
func msbDeBruijn(b Bitboard) lang.Optional[int] {
	if b.Hi != 0 {
		return lang.Some(64 + msbWord(b.Hi))
	}
	if b.Lo != 0 {
		return lang.Some(msbWord(b.Lo))
	}
	return lang.Optional[int]{}
}

func msbWord(word uint64) int {
	word |= word >> 1
	word |= word >> 2
	word |= word >> 4
	word |= word >> 8
	word |= word >> 16
	word |= word >> 32
	return lsbWord(word - (word >> 1))
}

// IsolateLSB returns a bitboard containing only the least-significant set
// bit of b.
func IsolateLSB(b Bitboard) Bitboard {
	if b.Lo != 0 {
		return Bitboard{Lo: b.Lo & -b.Lo}
	}
	return Bitboard{Hi: b.Hi & -b.Hi}
}

// ClearLSB returns b with its least-significant set bit removed.
func ClearLSB(b Bitboard) Bitboard {
	if b.Lo != 0 {
		return Bitboard{Lo: b.Lo & (b.Lo - 1), Hi: b.Hi}
	}
	return Bitboard{Hi: b.Hi & (b.Hi - 1)}
}

// IsolateMSB returns a bitboard containing only the most-significant set bit
// of b.
func IsolateMSB(b Bitboard) Bitboard {
	if sq, ok := MSB(b).V(); ok {
		return Mask(sq)
	}
	return Empty
}

// ClearMSB returns b with its most-significant set bit removed.
func ClearMSB(b Bitboard) Bitboard {
	if sq, ok := MSB(b).V(); ok {
		return b.Clear(sq)
	}
	return b
}

// Iterator yields the set bits of a bitboard in strictly ascending order. It
// is single-pass and not restartable, matching the "lazy, finite sequence"
// contract over set bits.
type Iterator struct {
	rem Bitboard
}

// Bits returns an Iterator over the set squares of b, ascending.
func Bits(b Bitboard) *Iterator {
	return &Iterator{rem: b}
}

// Next returns the next set square and true, or (0, false) once exhausted.
func (it *Iterator) Next() (int, bool) {
	sq, ok := LSB(it.rem).V()
	if !ok {
		return 0, false
	}
	it.rem = it.rem.Clear(sq)
	return sq, true
}
