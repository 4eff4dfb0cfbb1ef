package day11

import (
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/util"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   11,
		Title: "Plutonian Pebbles",
		Part1: Part1,
		Part2: Part2,
	})
}

// Stones количество камней для каждого числа. Порядок камней на ответ не влияет.
type Stones map[int]int

func parse(input string) (Stones, error) {
	values, err := puzzle.Ints(input)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, puzzle.Malformed("no stones")
	}
	s := make(Stones, len(values))
	for _, v := range values {
		if v < 0 {
			return nil, puzzle.Malformed("negative stone %d", v)
		}
		s[v]++
	}
	return s, nil
}

// change правило превращения одного камня
func change(v int) []int {
	if v == 0 {
		return []int{1}
	}
	if d := util.Digits(v); d%2 == 0 {
		p := util.Pow10[int](d / 2)
		return []int{v / p, v % p}
	}
	return []int{v * 2024}
}

// Blink один шаг для всех камней сразу
func (s Stones) Blink() Stones {
	next := make(Stones, len(s)*2)
	for v, n := range s {
		for _, nv := range change(v) {
			next[nv] += n
		}
	}
	return next
}

// Count общее количество камней
func (s Stones) Count() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

func blinks(input string, times int) (int, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	for i := 0; i < times; i++ {
		s = s.Blink()
	}
	return s.Count(), nil
}

// Part1 камней после 25 морганий (параметр blinks переопределяет)
func Part1(input string, p puzzle.Params) (int, error) {
	return blinks(input, p.Int("blinks", 25))
}

// Part2 камней после 75 морганий
func Part2(input string, p puzzle.Params) (int, error) {
	return blinks(input, p.Int("blinks", 75))
}
