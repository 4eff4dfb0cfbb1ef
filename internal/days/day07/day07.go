package day07

import (
	"strconv"
	"strings"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/util"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   7,
		Title: "Bridge Repair",
		Part1: Part1,
		Part2: Part2,
	})
}

// Equation результат и операнды одной строки калибровки
type Equation struct {
	Result   int
	Operands []int
}

func parse(input string) ([]Equation, error) {
	var out []Equation
	for i, line := range puzzle.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.Malformed("line %d: missing ':'", i+1)
		}
		result, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, puzzle.Malformed("line %d: result %q", i+1, head)
		}
		operands, err := puzzle.Ints(tail)
		if err != nil {
			return nil, err
		}
		if len(operands) == 0 {
			return nil, puzzle.Malformed("line %d: no operands", i+1)
		}
		out = append(out, Equation{Result: result, Operands: operands})
	}
	return out, nil
}

// solvable разворачивает операции с конца: последний операнд должен
// вычитаться, делить нацело или быть суффиксом десятичной записи цели.
// Операторы применяются строго слева направо.
func solvable(target int, operands []int, concat bool) bool {
	last := len(operands) - 1
	if last == 0 {
		return target == operands[0]
	}
	v, rest := operands[last], operands[:last]

	if v != 0 && target%v == 0 && solvable(target/v, rest, concat) {
		return true
	}
	if target >= v && solvable(target-v, rest, concat) {
		return true
	}
	if concat && target > v {
		p := util.Pow10[int](util.Digits(v))
		if target%p == v && solvable(target/p, rest, concat) {
			return true
		}
	}
	return false
}

func total(input string, concat bool) (int, error) {
	equations, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, eq := range equations {
		if solvable(eq.Result, eq.Operands, concat) {
			sum += eq.Result
		}
	}
	return sum, nil
}

// Part1 сумма результатов, достижимых через + и *
func Part1(input string, _ puzzle.Params) (int, error) {
	return total(input, false)
}

// Part2 то же, с оператором склейки ||
func Part2(input string, _ puzzle.Params) (int, error) {
	return total(input, true)
}
