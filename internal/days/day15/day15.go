package day15

import (
	"strings"

	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   15,
		Title: "Warehouse Woes",
		Part1: Part1,
		Part2: Part2,
	})
}

// Cell содержимое клетки склада
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Box
	BoxLeft
	BoxRight
)

func (c Cell) String() string {
	return [...]string{".", "#", "O", "[", "]"}[c]
}

// Warehouse склад, положение робота и его программа
type Warehouse struct {
	cells *grid.Grid[Cell]
	robot vec.Vec2
	moves []vec.Direction
}

// widen удваивает ширину карты для второй части
var widen = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

func parse(input string, wide bool) (*Warehouse, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, puzzle.Malformed("want map and moves, got %d blocks", len(blocks))
	}

	layout := strings.Join(blocks[0], "\n")
	if wide {
		layout = widen.Replace(layout)
	}

	w := &Warehouse{}
	robots := 0
	cells, err := grid.Parse(layout, func(pos vec.Vec2, c rune) (Cell, error) {
		switch c {
		case '.':
			return Empty, nil
		case '#':
			return Wall, nil
		case 'O':
			return Box, nil
		case '[':
			return BoxLeft, nil
		case ']':
			return BoxRight, nil
		case '@':
			w.robot = pos
			robots++
			return Empty, nil
		}
		return Empty, puzzle.Malformed("unexpected %q", c)
	})
	if err != nil {
		return nil, puzzle.AsMalformed(err)
	}
	if robots != 1 {
		return nil, puzzle.Malformed("want one robot, got %d", robots)
	}
	w.cells = cells

	for _, line := range blocks[1] {
		for _, c := range strings.TrimSpace(line) {
			d, ok := vec.ParseDirection(c)
			if !ok {
				return nil, puzzle.Malformed("unexpected move %q", c)
			}
			w.moves = append(w.moves, d)
		}
	}
	return w, nil
}

// Step пытается сдвинуть робота. Все ящики, которые он толкает
// (в том числе широкие, цепляющие соседние ящики), двигаются вместе
// или не двигаются вовсе, если хотя бы один упирается в стену.
func (w *Warehouse) Step(d vec.Direction) bool {
	dv := d.Vec2()
	target := w.robot.Add(dv)

	queue := []vec.Vec2{target}
	seen := make(map[vec.Vec2]struct{})
	var pushed []vec.Vec2

	for i := 0; i < len(queue); i++ {
		pos := queue[i]
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}

		c, inside := w.cells.ValueFor(pos)
		if !inside || c == Wall {
			return false
		}
		switch c {
		case Box:
			pushed = append(pushed, pos)
			queue = append(queue, pos.Add(dv))
		case BoxLeft:
			pushed = append(pushed, pos)
			queue = append(queue, pos.Add(dv), pos.Add(vec.Right.Vec2()))
		case BoxRight:
			pushed = append(pushed, pos)
			queue = append(queue, pos.Add(dv), pos.Add(vec.Left.Vec2()))
		}
	}

	values := make([]Cell, len(pushed))
	for i, pos := range pushed {
		values[i] = w.cells.ValueForChecked(pos)
		w.cells.SetValueFor(pos, Empty)
	}
	for i, pos := range pushed {
		w.cells.SetValueFor(pos.Add(dv), values[i])
	}
	w.robot = target
	return true
}

// Run выполняет всю программу робота
func (w *Warehouse) Run() {
	for _, d := range w.moves {
		w.Step(d)
	}
}

// GPS сумма 100·y + x по левым краям всех ящиков
func (w *Warehouse) GPS() int {
	total := 0
	for pos, c := range w.cells.All() {
		if c == Box || c == BoxLeft {
			total += 100*pos.Y + pos.X
		}
	}
	return total
}

func simulate(input string, wide bool) (int, error) {
	w, err := parse(input, wide)
	if err != nil {
		return 0, err
	}
	w.Run()
	return w.GPS(), nil
}

// Part1 сумма GPS-координат ящиков после всех ходов
func Part1(input string, _ puzzle.Params) (int, error) {
	return simulate(input, false)
}

// Part2 то же на складе двойной ширины
func Part2(input string, _ puzzle.Params) (int, error) {
	return simulate(input, true)
}
