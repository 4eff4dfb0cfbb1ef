package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrUnknownDay для дня не зарегистрировано решение
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrUnknownPart допустимы только части 1 и 2
	ErrUnknownPart = errors.New("puzzle: unknown part")
	// ErrMalformedInput входной текст не соответствует формату задачи
	ErrMalformedInput = errors.New("puzzle: malformed input")
)

// Params целочисленные параметры дня из конфигурации (например, размеры поля)
type Params map[string]int

// Int возвращает параметр или значение по умолчанию
func (p Params) Int(key string, def int) int {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Part решает одну часть задачи
type Part func(input string, p Params) (int, error)

// Solution решение одного дня
type Solution struct {
	Day   int
	Title string
	Part1 Part
	Part2 Part
}

// Part возвращает функцию решения по номеру части
func (s Solution) Part(n int) (Part, error) {
	switch n {
	case 1:
		return s.Part1, nil
	case 2:
		return s.Part2, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPart, n)
}

var registry = make(map[int]Solution)

// Register добавляет решение в регистр. Вызывается из init() пакета дня.
func Register(s Solution) {
	if s.Part1 == nil || s.Part2 == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without both parts", s.Day))
	}
	if _, exists := registry[s.Day]; exists {
		panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day))
	}
	registry[s.Day] = s
}

// Get возвращает решение для указанного дня
func Get(day int) (Solution, error) {
	s, exists := registry[day]
	if !exists {
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// All возвращает все решения, упорядоченные по дню
func All() []Solution {
	out := make([]Solution, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Malformed оборачивает описание ошибки разбора в ErrMalformedInput
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// AsMalformed помечает ошибку разбора как ErrMalformedInput, если она ещё не помечена
func AsMalformed(err error) error {
	if err == nil || errors.Is(err, ErrMalformedInput) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrMalformedInput, err)
}

// ParamsFromStrings переводит map[string]string (например, из query) в Params
func ParamsFromStrings(in map[string]string) (Params, error) {
	out := make(Params, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}
