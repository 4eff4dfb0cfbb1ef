package day08

import (
	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   8,
		Title: "Resonant Collinearity",
		Part1: Part1,
		Part2: Part2,
	})
}

// City размеры карты и антенны, сгруппированные по частоте
type City struct {
	area     *grid.Grid[bool]
	antennas map[rune][]vec.Vec2
}

func parse(input string) (*City, error) {
	c := &City{antennas: make(map[rune][]vec.Vec2)}

	area, err := grid.Parse(input, func(pos vec.Vec2, r rune) (bool, error) {
		if r != '.' && r != '#' {
			c.antennas[r] = append(c.antennas[r], pos)
		}
		return false, nil
	})
	if err != nil {
		return nil, puzzle.AsMalformed(err)
	}
	c.area = area
	return c, nil
}

// pairs вызывает fn для каждой упорядоченной пары антенн одной частоты
func (c *City) pairs(fn func(a, b vec.Vec2)) {
	for _, list := range c.antennas {
		for i, a := range list {
			for j, b := range list {
				if i != j {
					fn(a, b)
				}
			}
		}
	}
}

// Part1 антиузлы на удвоенном расстоянии от одной из антенн пары
func Part1(input string, _ puzzle.Params) (int, error) {
	c, err := parse(input)
	if err != nil {
		return 0, err
	}

	c.pairs(func(a, b vec.Vec2) {
		c.area.SetValueFor(a.Add(a.Sub(b)), true)
	})
	return c.area.Count(func(v bool) bool { return v }), nil
}

// Part2 антиузлы в каждой точке прямой через пару, включая сами антенны
func Part2(input string, _ puzzle.Params) (int, error) {
	c, err := parse(input)
	if err != nil {
		return 0, err
	}

	c.pairs(func(a, b vec.Vec2) {
		step := a.Sub(b)
		pos := a
		for c.area.SetValueFor(pos, true) {
			pos = pos.Add(step)
		}
	})
	return c.area.Count(func(v bool) bool { return v }), nil
}
