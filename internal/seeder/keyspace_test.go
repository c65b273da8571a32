package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantDraw(v int) func(int, int) int {
	return func(int, int) int { return v }
}

func TestKeySpaceFallsBackToProbe(t *testing.T) {
	k := NewKeySpace(10, 14, 3, constantDraw(12))

	var got []int64
	for i := 0; i < 5; i++ {
		v, err := k.Next("Id")
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.ElementsMatch(t, []int64{10, 11, 12, 13, 14}, got)
	assert.Equal(t, int64(12), got[0])
	assert.Equal(t, 5, k.Used("Id"))

	_, err := k.Next("Id")
	assert.ErrorIs(t, err, ErrKeySpaceExhausted)
}

func TestKeySpaceTracksColumnsSeparately(t *testing.T) {
	k := NewKeySpace(1, 1, 4, constantDraw(1))

	a, err := k.Next("A")
	require.NoError(t, err)
	b, err := k.Next("B")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = k.Next("A")
	assert.ErrorIs(t, err, ErrKeySpaceExhausted)
}

func TestKeySpaceSize(t *testing.T) {
	assert.Equal(t, int64(900000), NewKeySpace(100000, 999999, 64, constantDraw(100000)).Size())
}
