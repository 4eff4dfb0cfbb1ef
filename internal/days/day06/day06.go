package day06

import (
	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   6,
		Title: "Guard Gallivant",
		Part1: Part1,
		Part2: Part2,
	})
}

// Field тип клетки лаборатории
type Field uint8

const (
	Empty Field = iota
	Wall
)

func (f Field) String() string {
	if f == Wall {
		return "#"
	}
	return "."
}

// Lab карта и стартовая позиция стража (всегда смотрит вверх)
type Lab struct {
	grid  *grid.Grid[Field]
	start vec.Vec2
}

func parse(input string) (*Lab, error) {
	lab := &Lab{}
	found := false

	g, err := grid.Parse(input, func(pos vec.Vec2, c rune) (Field, error) {
		switch c {
		case '#':
			return Wall, nil
		case '.':
			return Empty, nil
		case '^':
			lab.start = pos
			found = true
			return Empty, nil
		}
		return Empty, puzzle.Malformed("unexpected %q", c)
	})
	if err != nil {
		return nil, puzzle.AsMalformed(err)
	}
	if !found {
		return nil, puzzle.Malformed("no guard")
	}
	lab.grid = g
	return lab, nil
}

// walk ведёт стража до выхода с карты. visit вызывается для каждой
// позиции вместе с направлением. Возвращает true, если страж зациклился.
func (l *Lab) walk(visit func(pos vec.Vec2, dir vec.Direction)) bool {
	// (позиция, направление) уже пройденные после поворота
	seen := make([]bool, l.grid.Len()*4)

	pos, dir := l.start, vec.Up
	for {
		if visit != nil {
			visit(pos, dir)
		}
		next := pos.Add(dir.Vec2())
		f, inside := l.grid.ValueFor(next)
		if !inside {
			return false
		}
		if f == Wall {
			index, _ := l.grid.IndexFor(pos)
			state := index*4 + int(dir)
			if seen[state] {
				return true
			}
			seen[state] = true
			dir = dir.TurnRight()
			continue
		}
		pos = next
	}
}

// path все различные клетки маршрута в порядке первого посещения
func (l *Lab) path() []vec.Vec2 {
	visited := make([]bool, l.grid.Len())
	var order []vec.Vec2
	l.walk(func(pos vec.Vec2, _ vec.Direction) {
		index, _ := l.grid.IndexFor(pos)
		if !visited[index] {
			visited[index] = true
			order = append(order, pos)
		}
	})
	return order
}

// Part1 количество различных клеток, которые посетит страж
func Part1(input string, _ puzzle.Params) (int, error) {
	lab, err := parse(input)
	if err != nil {
		return 0, err
	}
	if lab.walk(nil) {
		return 0, puzzle.Malformed("guard never leaves the lab")
	}
	return len(lab.path()), nil
}

// Part2 количество клеток, препятствие в которых зацикливает стража.
// Препятствие имеет смысл только на исходном маршруте, кроме старта.
func Part2(input string, _ puzzle.Params) (int, error) {
	lab, err := parse(input)
	if err != nil {
		return 0, err
	}

	loops := 0
	for _, pos := range lab.path() {
		if pos == lab.start {
			continue
		}
		lab.grid.SetValueFor(pos, Wall)
		if lab.walk(nil) {
			loops++
		}
		lab.grid.SetValueFor(pos, Empty)
	}
	return loops, nil
}
