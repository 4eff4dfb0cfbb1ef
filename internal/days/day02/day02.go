package day02

import (
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/util"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   2,
		Title: "Red-Nosed Reports",
		Part1: Part1,
		Part2: Part2,
	})
}

func parse(input string) ([][]int, error) {
	var reports [][]int
	for i, line := range puzzle.Lines(input) {
		levels, err := puzzle.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(levels) == 0 {
			return nil, puzzle.Malformed("line %d: empty report", i+1)
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

// safe уровни строго монотонны, соседние отличаются на 1..3
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	sign := util.Sign(levels[1] - levels[0])
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if util.Sign(d) != sign || util.Abs(d) < 1 || util.Abs(d) > 3 {
			return false
		}
	}
	return true
}

// safeDampened отчёт безопасен после удаления не более одного уровня
func safeDampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels)-1)
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if safe(buf) {
			return true
		}
	}
	return false
}

func count(input string, check func([]int) bool) (int, error) {
	reports, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range reports {
		if check(r) {
			n++
		}
	}
	return n, nil
}

// Part1 количество безопасных отчётов
func Part1(input string, _ puzzle.Params) (int, error) {
	return count(input, safe)
}

// Part2 количество безопасных отчётов с допуском одного плохого уровня
func Part2(input string, _ puzzle.Params) (int, error) {
	return count(input, safeDampened)
}
