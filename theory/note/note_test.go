package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClass(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		want int
	}{
		{"C", 0},
		{"c", 0},
		{"C#", 1},
		{"Db", 1},
		{"db", 1},
		{"E♭", 3},
		{"F♯", 6},
		{"B", 11},
		{"Cb", 11},
		{"B#", 0},
		{" g ", 7},
	}
	for _, c := range cases {
		got, err := ParseClass(c.name)
		assert.NoError(err, c.name)
		assert.Equal(c.want, got, c.name)
	}
}

func TestParseClassRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []string{"", "H", "C%", "1", "c##x"} {
		_, err := ParseClass(bad)
		assert.ErrorIs(err, ErrUnknownNote, bad)
	}
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("C", Name(0))
	assert.Equal("C#", Name(1))
	assert.Equal("Db", FlatName(1))
	assert.Equal("B", Name(-1))
	assert.Equal("C", Name(12))
	assert.Equal("C4", NameWithOctave(60))
	assert.Equal("A0", NameWithOctave(21))
}

func TestClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Class(60))
	assert.Equal(7, Class(67))
	assert.Equal(11, Class(-1))
}

func TestEnharmonicSwap(t *testing.T) {
	assert := assert.New(t)

	swapped, ok := EnharmonicSwap("C#")
	assert.True(ok)
	assert.Equal("Db", swapped)

	swapped, ok = EnharmonicSwap("Bb")
	assert.True(ok)
	assert.Equal("A#", swapped)

	_, ok = EnharmonicSwap("C")
	assert.False(ok)
}

func TestEnharmonicPairsAgree(t *testing.T) {
	assert := assert.New(t)

	for _, pair := range EnharmonicPairs() {
		sharp, err := ParseClass(pair[0])
		assert.NoError(err)
		flat, err := ParseClass(pair[1])
		assert.NoError(err)
		assert.Equal(sharp, flat, "%v", pair)
	}
}
