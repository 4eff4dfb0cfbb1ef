package day04

import (
	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   4,
		Title: "Ceres Search",
		Part1: Part1,
		Part2: Part2,
	})
}

// все восемь направлений, включая диагонали
var directions = []vec.Vec2{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1},
}

func parse(input string) (*grid.Grid[rune], error) {
	g, err := grid.Runes(input)
	if err != nil {
		return nil, puzzle.Malformed("%v", err)
	}
	return g, nil
}

// is проверяет символ с учётом границ: вне карты совпадения нет
func is(g *grid.Grid[rune], pos vec.Vec2, c rune) bool {
	v, ok := g.ValueFor(pos)
	return ok && v == c
}

// word слово начинается в pos и идёт по направлению dir
func word(g *grid.Grid[rune], pos, dir vec.Vec2, w string) bool {
	for _, c := range w {
		if !is(g, pos, c) {
			return false
		}
		pos = pos.Add(dir)
	}
	return true
}

// Part1 количество вхождений XMAS во всех направлениях
func Part1(input string, _ puzzle.Params) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for pos, c := range g.All() {
		if c != 'X' {
			continue
		}
		for _, dir := range directions {
			if word(g, pos, dir, "XMAS") {
				total++
			}
		}
	}
	return total, nil
}

// diagonal MAS в любую сторону через центр pos
func diagonal(g *grid.Grid[rune], pos, dir vec.Vec2) bool {
	a, b := pos.Sub(dir), pos.Add(dir)
	return (is(g, a, 'M') && is(g, b, 'S')) || (is(g, a, 'S') && is(g, b, 'M'))
}

// Part2 количество крестов из двух MAS с общей A
func Part2(input string, _ puzzle.Params) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for pos, c := range g.All() {
		if c == 'A' && diagonal(g, pos, vec.New(1, 1)) && diagonal(g, pos, vec.New(1, -1)) {
			total++
		}
	}
	return total, nil
}
