package bitboard_test

import (
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/stretchr/testify/assert"
)

func TestMaskAndIsSet(t *testing.T) {
	bb := bitboard.Mask(0)
	assert.True(t, bb.IsSet(0))
	assert.False(t, bb.IsSet(1))

	bb = bitboard.Mask(80)
	assert.True(t, bb.IsSet(80))
	assert.False(t, bb.IsSet(63))

	bb = bitboard.Mask(64)
	assert.True(t, bb.IsSet(64))
	assert.Equal(t, uint64(0), bb.Lo)
	assert.Equal(t, uint64(1), bb.Hi)
}

func TestSetClear(t *testing.T) {
	bb := bitboard.Empty.Set(5).Set(70)
	assert.True(t, bb.IsSet(5))
	assert.True(t, bb.IsSet(70))

	bb = bb.Clear(5)
	assert.False(t, bb.IsSet(5))
	assert.True(t, bb.IsSet(70))
}

func TestSetOperations(t *testing.T) {
	a := bitboard.Empty.Set(1).Set(2).Set(70)
	b := bitboard.Empty.Set(2).Set(3).Set(70)

	assert.True(t, a.Or(b).Equals(bitboard.Empty.Set(1).Set(2).Set(3).Set(70)))
	assert.True(t, a.And(b).Equals(bitboard.Empty.Set(2).Set(70)))
	assert.True(t, a.AndNot(b).Equals(bitboard.Empty.Set(1)))
	assert.True(t, a.Xor(b).Equals(bitboard.Empty.Set(1).Set(3)))
	assert.True(t, bitboard.Empty.Set(2).IsSubset(a))
	assert.False(t, a.IsSubset(bitboard.Empty.Set(2)))
}

func TestEmpty(t *testing.T) {
	assert.True(t, bitboard.Empty.IsEmpty())
	assert.False(t, bitboard.Empty.Set(40).IsEmpty())
}

func TestNot(t *testing.T) {
	full := bitboard.Empty.Not()
	assert.Equal(t, bitboard.NumSquares, full.PopCount())
}
