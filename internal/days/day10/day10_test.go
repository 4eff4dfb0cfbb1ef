package day10

import (
	"testing"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

func TestParts(t *testing.T) {
	got, err := Part1(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 36, got)

	got, err = Part2(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 81, got)
}

func TestImpassable(t *testing.T) {
	input := `...0...
...1...
...2...
6543456
7.....7
8.....8
9.....9
`
	got, err := Part1(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Part2(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestRating(t *testing.T) {
	input := `.....0.
..4321.
..5..2.
..6543.
..7..4.
..8765.
..9....
`
	got, err := Part2(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("01x\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
