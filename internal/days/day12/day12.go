package day12

import (
	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   12,
		Title: "Garden Groups",
		Part1: Part1,
		Part2: Part2,
	})
}

// Region участок одного растения
type Region struct {
	Plant rune
	Cells []vec.Vec2
}

// Area площадь участка
func (r Region) Area() int { return len(r.Cells) }

// Garden карта растений и её разбиение на связные участки
type Garden struct {
	plants  *grid.Grid[rune]
	regions []Region
}

// Parse разбирает карту сада
func Parse(input string) (*Garden, error) {
	plants, err := grid.Runes(input)
	if err != nil {
		return nil, puzzle.AsMalformed(err)
	}
	g := &Garden{plants: plants}
	for _, cells := range grid.Regions(plants) {
		g.regions = append(g.regions, Region{
			Plant: plants.ValueForChecked(cells[0]),
			Cells: cells,
		})
	}
	return g, nil
}

// Regions все участки в порядке построчного обхода
func (g *Garden) Regions() []Region { return g.regions }

// same соседняя клетка того же растения (вне карты растения нет)
func (g *Garden) same(plant rune, pos vec.Vec2) bool {
	v, ok := g.plants.ValueFor(pos)
	return ok && v == plant
}

// Perimeter количество сторон клеток, граничащих с другим растением или краем
func (g *Garden) Perimeter(r Region) int {
	total := 0
	for _, pos := range r.Cells {
		for _, next := range pos.Neighbors4() {
			if !g.same(r.Plant, next) {
				total++
			}
		}
	}
	return total
}

// Sides количество прямых отрезков забора. У многоугольника на сетке
// сторон столько же, сколько углов, поэтому считаются углы каждой клетки.
func (g *Garden) Sides(r Region) int {
	corners := 0
	for _, pos := range r.Cells {
		for _, d := range vec.Directions {
			a, b := d.Vec2(), d.TurnRight().Vec2()
			sideA := g.same(r.Plant, pos.Add(a))
			sideB := g.same(r.Plant, pos.Add(b))
			diagonal := g.same(r.Plant, pos.Add(a).Add(b))

			switch {
			case !sideA && !sideB:
				// внешний угол
				corners++
			case sideA && sideB && !diagonal:
				// внутренний угол
				corners++
			}
		}
	}
	return corners
}

func price(input string, fence func(g *Garden, r Region) int) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range g.regions {
		total += r.Area() * fence(g, r)
	}
	return total, nil
}

// Part1 сумма площадь × периметр
func Part1(input string, _ puzzle.Params) (int, error) {
	return price(input, (*Garden).Perimeter)
}

// Part2 сумма площадь × число сторон
func Part2(input string, _ puzzle.Params) (int, error) {
	return price(input, (*Garden).Sides)
}
