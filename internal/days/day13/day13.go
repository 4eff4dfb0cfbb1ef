package day13

import (
	"regexp"
	"strconv"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   13,
		Title: "Claw Contraption",
		Part1: Part1,
		Part2: Part2,
	})
}

const (
	costA = 3
	costB = 1

	pressLimit  = 100
	prizeOffset = 10000000000000
)

var numberRe = regexp.MustCompile(`-?\d+`)

// Machine смещения кнопок A и B и координаты приза
type Machine struct {
	A, B, Prize vec.Vec2
}

func parse(input string) ([]Machine, error) {
	var out []Machine
	for i, block := range puzzle.Blocks(input) {
		if len(block) != 3 {
			return nil, puzzle.Malformed("machine %d: want 3 lines, got %d", i+1, len(block))
		}
		var vs [3]vec.Vec2
		for j, line := range block {
			nums := numberRe.FindAllString(line, -1)
			if len(nums) != 2 {
				return nil, puzzle.Malformed("machine %d: line %q", i+1, line)
			}
			x, errX := strconv.Atoi(nums[0])
			y, errY := strconv.Atoi(nums[1])
			if errX != nil || errY != nil {
				return nil, puzzle.Malformed("machine %d: number out of range in %q", i+1, line)
			}
			vs[j] = vec.New(x, y)
		}
		out = append(out, Machine{A: vs[0], B: vs[1], Prize: vs[2]})
	}
	return out, nil
}

// Presses решает систему a·A + b·B = Prize по правилу Крамера.
// Решение должно быть целым и неотрицательным. Вырожденные автоматы
// (кнопки сонаправлены) считаются нерешаемыми.
func (m Machine) Presses() (a, b int, ok bool) {
	det := m.A.X*m.B.Y - m.A.Y*m.B.X
	if det == 0 {
		return 0, 0, false
	}
	an := m.Prize.X*m.B.Y - m.Prize.Y*m.B.X
	bn := m.A.X*m.Prize.Y - m.A.Y*m.Prize.X
	if an%det != 0 || bn%det != 0 {
		return 0, 0, false
	}
	a, b = an/det, bn/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}
	return a, b, true
}

func tokens(input string, offset, limit int) (int, error) {
	machines, err := parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range machines {
		m.Prize = m.Prize.Add(vec.Broadcast(offset))
		a, b, ok := m.Presses()
		if !ok || (limit > 0 && (a > limit || b > limit)) {
			continue
		}
		total += a*costA + b*costB
	}
	return total, nil
}

// Part1 минимум жетонов на все достижимые призы, не больше 100 нажатий на кнопку
func Part1(input string, _ puzzle.Params) (int, error) {
	return tokens(input, 0, pressLimit)
}

// Part2 призы сдвинуты на 10000000000000 по обеим осям, ограничения нет
func Part2(input string, _ puzzle.Params) (int, error) {
	return tokens(input, prizeOffset, 0)
}
