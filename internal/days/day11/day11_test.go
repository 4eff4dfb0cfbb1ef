package day11

import (
	"testing"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	got, err := Part1("125 17\n", nil)
	require.NoError(t, err)
	assert.Equal(t, 55312, got)

	got, err = Part1("125 17\n", puzzle.Params{"blinks": 6})
	require.NoError(t, err)
	assert.Equal(t, 22, got)
}

func TestPart2Grows(t *testing.T) {
	short, err := Part1("125 17", nil)
	require.NoError(t, err)
	long, err := Part2("125 17", nil)
	require.NoError(t, err)
	assert.Greater(t, long, short)
}

func TestChange(t *testing.T) {
	assert.Equal(t, []int{1}, change(0))
	assert.Equal(t, []int{1, 0}, change(10))
	assert.Equal(t, []int{99, 0}, change(9900))
	assert.Equal(t, []int{2024}, change(1))
	assert.Equal(t, []int{253000}, change(125))
}

func TestBlinkSequence(t *testing.T) {
	s, err := parse("0 1 10 99 999")
	require.NoError(t, err)
	// 1 2024 1 0 9 9 2021976
	assert.Equal(t, Stones{1: 2, 2024: 1, 0: 1, 9: 2, 2021976: 1}, s.Blink())
	assert.Equal(t, 7, s.Blink().Count())
}

func TestMalformed(t *testing.T) {
	_, err := Part1("1 x", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = Part1("", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = Part1("-3", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
