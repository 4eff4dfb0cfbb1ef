package day06

import (
	"testing"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestParts(t *testing.T) {
	got, err := Part1(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	got, err = Part2(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestTurnsUntilFree(t *testing.T) {
	// справа и сверху стены: страж разворачивается дважды и уходит вниз
	input := ".#.\n.^#\n...\n"
	got, err := Part1(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestLoopingGuard(t *testing.T) {
	input := ".#..\n...#\n^...\n..#.\n"
	_, err := Part1(input, nil)
	assert.NoError(t, err)

	boxed := ".#..\n.^.#\n#...\n..#.\n"
	_, err = Part1(boxed, nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestMalformed(t *testing.T) {
	_, err := Part1("..\n..\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Part1("^x\n..\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Part1("^..\n..\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
