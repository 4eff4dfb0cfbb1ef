package day05

import (
	"slices"
	"strconv"
	"strings"

	"github.com/annel0/aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   5,
		Title: "Print Queue",
		Part1: Part1,
		Part2: Part2,
	})
}

type rule struct{ before, after int }

// Queue правила порядка страниц и обновления
type Queue struct {
	rules   map[rule]struct{}
	updates [][]int
}

func parse(input string) (*Queue, error) {
	q := &Queue{rules: make(map[rule]struct{})}

	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.Contains(line, "|"):
			a, b, _ := strings.Cut(line, "|")
			before, err1 := strconv.Atoi(a)
			after, err2 := strconv.Atoi(b)
			if err1 != nil || err2 != nil {
				return nil, puzzle.Malformed("line %d: rule %q", i+1, line)
			}
			q.rules[rule{before, after}] = struct{}{}
		default:
			pages, err := puzzle.Ints(line)
			if err != nil {
				return nil, err
			}
			if len(pages) == 0 {
				return nil, puzzle.Malformed("line %d: empty update", i+1)
			}
			q.updates = append(q.updates, pages)
		}
	}
	return q, nil
}

// compare упорядочивает страницы по правилам
func (q *Queue) compare(a, b int) int {
	if _, ok := q.rules[rule{a, b}]; ok {
		return -1
	}
	if _, ok := q.rules[rule{b, a}]; ok {
		return 1
	}
	return 0
}

func (q *Queue) ordered(pages []int) bool {
	return slices.IsSortedFunc(pages, q.compare)
}

// Part1 сумма средних страниц правильно упорядоченных обновлений
func Part1(input string, _ puzzle.Params) (int, error) {
	q, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pages := range q.updates {
		if q.ordered(pages) {
			total += pages[len(pages)/2]
		}
	}
	return total, nil
}

// Part2 сумма средних страниц после исправления порядка неправильных обновлений
func Part2(input string, _ puzzle.Params) (int, error) {
	q, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pages := range q.updates {
		if q.ordered(pages) {
			continue
		}
		fixed := slices.Clone(pages)
		slices.SortFunc(fixed, q.compare)
		total += fixed[len(fixed)/2]
	}
	return total, nil
}
