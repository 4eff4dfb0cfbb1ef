package day10

import (
	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   10,
		Title: "Hoof It",
		Part1: Part1,
		Part2: Part2,
	})
}

// impassable клетка '.' в небольших примерах
const impassable = -1

func parse(input string) (*grid.Grid[int], error) {
	g, err := grid.Parse(input, func(_ vec.Vec2, c rune) (int, error) {
		switch {
		case c == '.':
			return impassable, nil
		case c >= '0' && c <= '9':
			return int(c - '0'), nil
		}
		return 0, puzzle.Malformed("unexpected %q", c)
	})
	return g, puzzle.AsMalformed(err)
}

// trails обходит все пути от start с подъёмом ровно на 1 за шаг.
// onPeak вызывается для каждой вершины высоты 9 столько раз, сколько путей к ней ведёт.
func trails(g *grid.Grid[int], start vec.Vec2, onPeak func(pos vec.Vec2)) {
	stack := []vec.Vec2{start}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		h := g.ValueForChecked(pos)
		if h == 9 {
			onPeak(pos)
			continue
		}
		for _, next := range pos.Neighbors4() {
			if nh, ok := g.ValueFor(next); ok && nh == h+1 {
				stack = append(stack, next)
			}
		}
	}
}

func sum(input string, score func(g *grid.Grid[int], head vec.Vec2) int) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for pos, h := range g.All() {
		if h == 0 {
			total += score(g, pos)
		}
	}
	return total, nil
}

// Part1 сумма количеств различных вершин, достижимых от каждой стартовой точки
func Part1(input string, _ puzzle.Params) (int, error) {
	return sum(input, func(g *grid.Grid[int], head vec.Vec2) int {
		peaks := make(map[vec.Vec2]struct{})
		trails(g, head, func(pos vec.Vec2) { peaks[pos] = struct{}{} })
		return len(peaks)
	})
}

// Part2 сумма количеств различных маршрутов от каждой стартовой точки
func Part2(input string, _ puzzle.Params) (int, error) {
	return sum(input, func(g *grid.Grid[int], head vec.Vec2) int {
		n := 0
		trails(g, head, func(vec.Vec2) { n++ })
		return n
	})
}
