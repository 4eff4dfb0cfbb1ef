package vec

import (
	"fmt"
	"math"
)

// Vec2 представляет 2D координаты. Ось Y направлена вниз (экранная система).
// Значимый тип: копируется и сравнивается по значению, годится как ключ map.
type Vec2 struct {
	X, Y int
}

// Zero нулевой вектор
var Zero = Vec2{}

// New создаёт вектор из двух компонент
func New(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Broadcast возвращает (v, v), чтобы умножать вектор на скаляр покомпонентно
func Broadcast(v int) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul покомпонентное произведение
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Div покомпонентное целочисленное деление.
// Нулевая компонента делителя приводит к панике (ошибка программиста).
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{X: v.X / other.X, Y: v.Y / other.Y}
}

// Scale умножает вектор на скаляр
func (v Vec2) Scale(k int) Vec2 {
	return v.Mul(Broadcast(k))
}

// RotateRight поворачивает вектор на 90° по часовой стрелке (Y вниз)
func (v Vec2) RotateRight() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// RotateLeft поворачивает вектор на 90° против часовой стрелки (Y вниз)
func (v Vec2) RotateLeft() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Neighbors4 возвращает четырёх соседей по сторонам в порядке Directions
func (v Vec2) Neighbors4() [4]Vec2 {
	var out [4]Vec2
	for i, d := range Directions {
		out[i] = v.Add(d.Vec2())
	}
	return out
}

// Manhattan возвращает манхэттенское расстояние до другой точки
func (v Vec2) Manhattan(other Vec2) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// String выводит вектор в виде "(x y)" для отладки
func (v Vec2) String() string {
	return fmt.Sprintf("(%d %d)", v.X, v.Y)
}
