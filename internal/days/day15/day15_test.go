package day15

import (
	"testing"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const small = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

const wideExample = `#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
`

func TestPart1(t *testing.T) {
	got, err := Part1(small, nil)
	require.NoError(t, err)
	assert.Equal(t, 2028, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(wideExample, nil)
	require.NoError(t, err)
	assert.Equal(t, 618, got)
}

func TestWidenedLayout(t *testing.T) {
	w, err := parse(wideExample, true)
	require.NoError(t, err)
	assert.Equal(t, 14, w.cells.Width())
	assert.Equal(t, vec.New(10, 3), w.robot)
	assert.Equal(t, BoxLeft, w.cells.ValueForChecked(vec.New(6, 3)))
	assert.Equal(t, BoxRight, w.cells.ValueForChecked(vec.New(7, 3)))
	assert.Len(t, w.moves, 11)
}

func TestChainPush(t *testing.T) {
	w, err := parse("#######\n#@OO..#\n#######\n\n>\n", false)
	require.NoError(t, err)

	assert.True(t, w.Step(vec.Right))
	assert.Equal(t, vec.New(2, 1), w.robot)
	assert.True(t, w.Step(vec.Right))
	// ящики уперлись в стену
	assert.False(t, w.Step(vec.Right))
	assert.Equal(t, vec.New(3, 1), w.robot)
	assert.Equal(t, Box, w.cells.ValueForChecked(vec.New(4, 1)))
	assert.Equal(t, Box, w.cells.ValueForChecked(vec.New(5, 1)))
}

func TestWideBoxesMoveTogether(t *testing.T) {
	// робот толкает нижний левый ящик, тот цепляет верхний половиной;
	// нижний правый ящик остаётся на месте
	layout := `##########
##......##
##..[]..##
##.[][].##
##..@...##
##########

^
`
	w, err := parse(layout, false)
	require.NoError(t, err)
	require.True(t, w.Step(vec.Up))
	assert.Equal(t, vec.New(4, 3), w.robot)
	assert.Equal(t, BoxLeft, w.cells.ValueForChecked(vec.New(3, 2)))
	assert.Equal(t, BoxRight, w.cells.ValueForChecked(vec.New(4, 2)))
	assert.Equal(t, Empty, w.cells.ValueForChecked(vec.New(5, 2)))
	assert.Equal(t, BoxLeft, w.cells.ValueForChecked(vec.New(4, 1)))
	assert.Equal(t, Empty, w.cells.ValueForChecked(vec.New(3, 3)))
	assert.Equal(t, BoxLeft, w.cells.ValueForChecked(vec.New(5, 3)))

	// следующий шаг упирается в стену через верхний ящик: ничего не двигается
	assert.False(t, w.Step(vec.Up))
	assert.Equal(t, vec.New(4, 3), w.robot)
	assert.Equal(t, BoxLeft, w.cells.ValueForChecked(vec.New(4, 1)))
}

func TestMalformed(t *testing.T) {
	_, err := Part1("#@#\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Part1("#@.#\n\n>x\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Part1("#..#\n\n>\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
