package grid

import "github.com/annel0/aoc2024/internal/vec"

// FloodFill собирает связную (по четырём сторонам) область вокруг start,
// в которую входят ячейки, для которых same(значение start, значение ячейки) == true.
// Обход на явном стеке, глубина не зависит от размера карты.
func (g *Grid[T]) FloodFill(start vec.Vec2, same func(a, b T) bool) []vec.Vec2 {
	origin, ok := g.ValueFor(start)
	if !ok {
		return nil
	}

	visited := make([]bool, len(g.data))
	startIndex, _ := g.IndexFor(start)
	visited[startIndex] = true

	region := []vec.Vec2{start}
	stack := []vec.Vec2{start}

	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range pos.Neighbors4() {
			index, ok := g.IndexFor(next)
			if !ok || visited[index] || !same(origin, g.data[index]) {
				continue
			}
			visited[index] = true
			region = append(region, next)
			stack = append(stack, next)
		}
	}

	return region
}

// Regions разбивает всю карту на связные области одинаковых ячеек.
// Области возвращаются в порядке первой ячейки при построчном обходе.
func Regions[T comparable](g *Grid[T]) [][]vec.Vec2 {
	assigned := make([]bool, len(g.data))
	var regions [][]vec.Vec2

	for i := range g.data {
		if assigned[i] {
			continue
		}
		region := g.FloodFill(g.PosFor(i), func(a, b T) bool { return a == b })
		for _, pos := range region {
			index, _ := g.IndexFor(pos)
			assigned[index] = true
		}
		regions = append(regions, region)
	}

	return regions
}
