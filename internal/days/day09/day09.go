package day09

import (
	"strings"

	"github.com/annel0/aoc2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   9,
		Title: "Disk Fragmenter",
		Part1: Part1,
		Part2: Part2,
	})
}

const free = -1

// span непрерывный участок диска
type span struct {
	start, length int
}

// Disk файлы (индекс = идентификатор) и свободные участки между ними
type Disk struct {
	files []span
	gaps  []span
	size  int
}

func parse(input string) (*Disk, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, puzzle.Malformed("empty disk map")
	}

	d := &Disk{}
	for i, c := range input {
		if c < '0' || c > '9' {
			return nil, puzzle.Malformed("position %d: %q is not a digit", i, c)
		}
		s := span{start: d.size, length: int(c - '0')}
		if i%2 == 0 {
			d.files = append(d.files, s)
		} else if s.length > 0 {
			d.gaps = append(d.gaps, s)
		}
		d.size += s.length
	}
	return d, nil
}

// blocks раскладка диска по блокам: идентификатор файла или free
func (d *Disk) blocks() []int {
	out := make([]int, d.size)
	for i := range out {
		out[i] = free
	}
	for id, f := range d.files {
		for i := f.start; i < f.start+f.length; i++ {
			out[i] = id
		}
	}
	return out
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != free {
			sum += i * id
		}
	}
	return sum
}

// Part1 блоки по одному переносятся с конца диска в самую левую свободную ячейку
func Part1(input string, _ puzzle.Params) (int, error) {
	d, err := parse(input)
	if err != nil {
		return 0, err
	}

	blocks := d.blocks()
	left, right := 0, len(blocks)-1
	for {
		for left < right && blocks[left] != free {
			left++
		}
		for left < right && blocks[right] == free {
			right--
		}
		if left >= right {
			break
		}
		blocks[left], blocks[right] = blocks[right], free
	}
	return checksum(blocks), nil
}

// Part2 файлы целиком, по убыванию идентификатора и по одной попытке на файл,
// переносятся в самый левый свободный участок достаточного размера
func Part2(input string, _ puzzle.Params) (int, error) {
	d, err := parse(input)
	if err != nil {
		return 0, err
	}

	for id := len(d.files) - 1; id >= 0; id-- {
		f := &d.files[id]
		for g := range d.gaps {
			gap := &d.gaps[g]
			if gap.start >= f.start {
				break
			}
			if gap.length < f.length {
				continue
			}
			f.start = gap.start
			gap.start += f.length
			gap.length -= f.length
			break
		}
	}
	return checksum(d.blocks()), nil
}
