package day01

import (
	"testing"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestPart1(t *testing.T) {
	got, err := Part1(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 31, got)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("3 4 5\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Part2("a b\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
