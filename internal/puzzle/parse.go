package puzzle

import (
	"strconv"
	"strings"
)

// Lines делит текст на строки без завершающей пустой строки, \r отбрасывается
func Lines(input string) []string {
	input = strings.TrimRight(input, "\r\n")
	if input == "" {
		return nil
	}
	out := strings.Split(input, "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}

// Blocks делит текст на блоки, разделённые пустой строкой
func Blocks(input string) [][]string {
	var blocks [][]string
	var current []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, l)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// Ints разбирает числа, разделённые пробелами или запятыми
func Ints(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, Malformed("number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
