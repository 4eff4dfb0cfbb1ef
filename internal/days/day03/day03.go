package day03

import (
	"regexp"
	"strconv"

	"github.com/annel0/aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   3,
		Title: "Mull It Over",
		Part1: Part1,
		Part2: Part2,
	})
}

var instruction = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// run суммирует произведения mul(a,b); при conditional учитывает do()/don't()
func run(input string, conditional bool) (int, error) {
	enabled := true
	total := 0

	for _, m := range instruction.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if conditional && !enabled {
				continue
			}
			a, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, puzzle.Malformed("operand %q", m[1])
			}
			b, err := strconv.Atoi(m[2])
			if err != nil {
				return 0, puzzle.Malformed("operand %q", m[2])
			}
			total += a * b
		}
	}
	return total, nil
}

// Part1 сумма всех корректных mul
func Part1(input string, _ puzzle.Params) (int, error) {
	return run(input, false)
}

// Part2 сумма mul, включённых инструкциями do()/don't()
func Part2(input string, _ puzzle.Params) (int, error) {
	return run(input, true)
}
