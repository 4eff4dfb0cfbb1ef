package day01

import (
	"sort"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/util"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   1,
		Title: "Historian Hysteria",
		Part1: Part1,
		Part2: Part2,
	})
}

// parse читает две колонки чисел
func parse(input string) (left, right []int, err error) {
	for i, line := range puzzle.Lines(input) {
		n, err := puzzle.Ints(line)
		if err != nil {
			return nil, nil, err
		}
		if len(n) != 2 {
			return nil, nil, puzzle.Malformed("line %d: want 2 numbers, got %d", i+1, len(n))
		}
		left = append(left, n[0])
		right = append(right, n[1])
	}
	return left, right, nil
}

// Part1 сумма расстояний между отсортированными колонками
func Part1(input string, _ puzzle.Params) (int, error) {
	left, right, err := parse(input)
	if err != nil {
		return 0, err
	}

	sort.Ints(left)
	sort.Ints(right)

	total := 0
	for i := range left {
		total += util.AbsDiff(left[i], right[i])
	}
	return total, nil
}

// Part2 сумма left[i] * (сколько раз left[i] встречается справа)
func Part2(input string, _ puzzle.Params) (int, error) {
	left, right, err := parse(input)
	if err != nil {
		return 0, err
	}

	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}

	score := 0
	for _, l := range left {
		score += l * counts[l]
	}
	return score, nil
}
