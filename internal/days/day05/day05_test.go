package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/aoc2024/internal/puzzle"
)

const example = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestParts(t *testing.T) {
	got, err := Part1(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 143, got)

	got, err = Part2(example, nil)
	require.NoError(t, err)
	assert.Equal(t, 123, got)
}

func TestParse(t *testing.T) {
	q, err := parse(example)
	require.NoError(t, err)
	assert.Len(t, q.rules, 21)
	assert.Len(t, q.updates, 6)

	for _, input := range []string{"1|x\n", "1|2\n\n,\n"} {
		_, err = parse(input)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}

	_, err = Part1("1|2\n\n,\n", nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
