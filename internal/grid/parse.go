package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/annel0/aoc2024/internal/vec"
)

// ErrRagged строки текста имеют разную длину
var ErrRagged = errors.New("grid: rows have different widths")

// ErrEmpty во входном тексте нет ни одной строки
var ErrEmpty = errors.New("grid: empty input")

// ForEachField вызывает fn для каждого символа текстовой карты в порядке
// сверху вниз, слева направо. Тип ячейки выбирает вызывающий.
func ForEachField(text string, fn func(pos vec.Vec2, c rune)) {
	for y, line := range lines(text) {
		x := 0
		for _, c := range line {
			fn(vec.Vec2{X: x, Y: y}, c)
			x++
		}
	}
}

// Parse строит карту из текста, переводя каждый символ в ячейку через convert.
// Ошибка convert прерывает разбор.
func Parse[T any](text string, convert func(pos vec.Vec2, c rune) (T, error)) (*Grid[T], error) {
	rows := lines(text)
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	width := len([]rune(rows[0]))
	data := make([]T, 0, width*len(rows))

	for y, line := range rows {
		x := 0
		for _, c := range line {
			cell, err := convert(vec.Vec2{X: x, Y: y}, c)
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", vec.Vec2{X: x, Y: y}, err)
			}
			data = append(data, cell)
			x++
		}
		if x != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, x, width)
		}
	}

	return New(width, len(rows), data), nil
}

// Runes карта символов без преобразования
func Runes(text string) (*Grid[rune], error) {
	return Parse(text, func(_ vec.Vec2, c rune) (rune, error) { return c, nil })
}

// lines делит текст на строки, отбрасывая \r и завершающий перевод строки
func lines(text string) []string {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	out := strings.Split(text, "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
