package day12

import (
	"testing"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const small = `AAAA
BBCD
BBCC
EEEC
`

const large = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`

func TestSmall(t *testing.T) {
	g, err := Parse(small)
	require.NoError(t, err)
	assert.Len(t, g.Regions(), 5)

	got, err := Part1(small, nil)
	require.NoError(t, err)
	assert.Equal(t, 140, got)

	got, err = Part2(small, nil)
	require.NoError(t, err)
	assert.Equal(t, 80, got)
}

func TestLarge(t *testing.T) {
	got, err := Part1(large, nil)
	require.NoError(t, err)
	assert.Equal(t, 1930, got)

	got, err = Part2(large, nil)
	require.NoError(t, err)
	assert.Equal(t, 1206, got)
}

func TestEnclosedRegions(t *testing.T) {
	input := `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO
`
	got, err := Part1(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 772, got)

	input = `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE
`
	got, err = Part2(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 236, got)

	input = `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA
`
	got, err = Part2(input, nil)
	require.NoError(t, err)
	assert.Equal(t, 368, got)
}

func TestRegionMetrics(t *testing.T) {
	g, err := Parse(small)
	require.NoError(t, err)

	r := g.Regions()[0]
	assert.Equal(t, 'A', r.Plant)
	assert.Equal(t, 4, r.Area())
	assert.Equal(t, 10, g.Perimeter(r))
	assert.Equal(t, 4, g.Sides(r))

	// C: область из четырёх клеток ступенькой
	var c Region
	for _, r := range g.Regions() {
		if r.Plant == 'C' {
			c = r
		}
	}
	assert.Equal(t, 4, c.Area())
	assert.Equal(t, 10, g.Perimeter(c))
	assert.Equal(t, 8, g.Sides(c))
}

func TestMalformed(t *testing.T) {
	_, err := Part1("AA\nA\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
