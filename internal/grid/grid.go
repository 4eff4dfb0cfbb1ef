// Package grid содержит плотную прямоугольную карту ячеек, адресуемую vec.Vec2.
//
// Буфер хранится построчно: index = y*width + x, и его длина всегда равна
// width*height. Ячейки только перезаписываются, размер карты не меняется.
package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/annel0/aoc2024/internal/vec"
)

// Grid плотная карта ячеек типа T
type Grid[T any] struct {
	width  int
	height int
	data   []T
}

// New создаёт карту из готового буфера.
// Длина data должна быть равна width*height, это ответственность вызывающего.
func New[T any](width, height int, data []T) *Grid[T] {
	return &Grid[T]{
		width:  width,
		height: height,
		data:   data,
	}
}

// Filled создаёт карту, заполненную значением v
func Filled[T any](width, height int, v T) *Grid[T] {
	data := make([]T, width*height)
	for i := range data {
		data[i] = v
	}
	return New(width, height, data)
}

// Width ширина карты
func (g *Grid[T]) Width() int { return g.width }

// Height высота карты
func (g *Grid[T]) Height() int { return g.height }

// Len количество ячеек
func (g *Grid[T]) Len() int { return len(g.data) }

// IndexFor возвращает индекс в буфере, если позиция внутри карты.
// Единственное место, где проверяются границы.
func (g *Grid[T]) IndexFor(pos vec.Vec2) (int, bool) {
	if pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height {
		return pos.Y*g.width + pos.X, true
	}
	return 0, false
}

// PosFor обратное преобразование индекса в позицию
func (g *Grid[T]) PosFor(index int) vec.Vec2 {
	return vec.Vec2{X: index % g.width, Y: index / g.width}
}

// Contains true, если позиция внутри карты
func (g *Grid[T]) Contains(pos vec.Vec2) bool {
	_, ok := g.IndexFor(pos)
	return ok
}

// ValueFor читает ячейку с проверкой границ
func (g *Grid[T]) ValueFor(pos vec.Vec2) (T, bool) {
	if index, ok := g.IndexFor(pos); ok {
		return g.data[index], true
	}
	var zero T
	return zero, false
}

// ValueForChecked читает ячейку, позиция должна быть заранее проверена через Contains.
// Выход за границы - ошибка программиста и приводит к панике.
func (g *Grid[T]) ValueForChecked(pos vec.Vec2) T {
	if index, ok := g.IndexFor(pos); ok {
		return g.data[index]
	}
	panic(fmt.Sprintf("grid: position %v outside %dx%d, check position first via Contains", pos, g.width, g.height))
}

// SetValueFor записывает ячейку. Возвращает false, если позиция вне карты
// и запись не выполнена.
func (g *Grid[T]) SetValueFor(pos vec.Vec2, value T) bool {
	if index, ok := g.IndexFor(pos); ok {
		g.data[index] = value
		return true
	}
	return false
}

// Clone возвращает независимую копию карты
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return New(g.width, g.height, data)
}

// All перебирает ячейки построчно сверху вниз, слева направо
func (g *Grid[T]) All() iter.Seq2[vec.Vec2, T] {
	return func(yield func(vec.Vec2, T) bool) {
		for i, v := range g.data {
			if !yield(g.PosFor(i), v) {
				return
			}
		}
	}
}

// Find возвращает первую позицию, удовлетворяющую условию
func (g *Grid[T]) Find(match func(T) bool) (vec.Vec2, bool) {
	for i, v := range g.data {
		if match(v) {
			return g.PosFor(i), true
		}
	}
	return vec.Vec2{}, false
}

// Count количество ячеек, удовлетворяющих условию
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if match(v) {
			n++
		}
	}
	return n
}

// String печатает заголовок и карту построчно, без разделителей между ячейками
func (g *Grid[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grid { w: %d h: %d }\n", g.width, g.height)
	for i, item := range g.data {
		switch v := any(item).(type) {
		case rune:
			b.WriteRune(v)
		case byte:
			b.WriteByte(v)
		default:
			fmt.Fprintf(&b, "%v", v)
		}
		if g.width > 0 && (i+1)%g.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
