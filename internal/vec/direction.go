package vec

import "fmt"

// Direction одно из четырёх сторон света на экранной сетке
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions все направления в фиксированном порядке обхода
var Directions = [4]Direction{Right, Down, Left, Up}

// Vec2 возвращает единичный вектор направления
func (d Direction) Vec2() Vec2 {
	switch d {
	case Left:
		return Vec2{X: -1, Y: 0}
	case Right:
		return Vec2{X: 1, Y: 0}
	case Up:
		return Vec2{X: 0, Y: -1}
	case Down:
		return Vec2{X: 0, Y: 1}
	}
	panic(fmt.Sprintf("vec: invalid direction %d", d))
}

// TurnRight поворот на 90° по часовой стрелке
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// TurnLeft поворот на 90° против часовой стрелки
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// Opposite противоположное направление
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Horizontal true для Left и Right
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// String возвращает символ стрелки, как во входных данных
func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return "?"
}

// ParseDirection разбирает символ '<', '>', '^' или 'v'
func ParseDirection(c rune) (Direction, bool) {
	switch c {
	case '<':
		return Left, true
	case '>':
		return Right, true
	case '^':
		return Up, true
	case 'v':
		return Down, true
	}
	return 0, false
}
