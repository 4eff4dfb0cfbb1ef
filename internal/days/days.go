// Package days подключает решения всех дней. Импорт пакета ради побочного
// эффекта регистрирует каждый день в puzzle.
package days

import (
	// Регистрируем все дни при импорте пакета
	_ "github.com/annel0/aoc2024/internal/days/day01"
	_ "github.com/annel0/aoc2024/internal/days/day02"
	_ "github.com/annel0/aoc2024/internal/days/day03"
	_ "github.com/annel0/aoc2024/internal/days/day04"
	_ "github.com/annel0/aoc2024/internal/days/day05"
	_ "github.com/annel0/aoc2024/internal/days/day06"
	_ "github.com/annel0/aoc2024/internal/days/day07"
	_ "github.com/annel0/aoc2024/internal/days/day08"
	_ "github.com/annel0/aoc2024/internal/days/day09"
	_ "github.com/annel0/aoc2024/internal/days/day10"
	_ "github.com/annel0/aoc2024/internal/days/day11"
	_ "github.com/annel0/aoc2024/internal/days/day12"
	_ "github.com/annel0/aoc2024/internal/days/day13"
	_ "github.com/annel0/aoc2024/internal/days/day14"
	_ "github.com/annel0/aoc2024/internal/days/day15"
	_ "github.com/annel0/aoc2024/internal/days/day16"
)

// Count количество подключённых дней
const Count = 16
