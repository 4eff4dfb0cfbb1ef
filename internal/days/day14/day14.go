package day14

import (
	"regexp"
	"strconv"

	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/util"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   14,
		Title: "Restroom Redoubt",
		Part1: Part1,
		Part2: Part2,
	})
}

// размеры помещения и время по умолчанию
const (
	defaultWidth   = 101
	defaultHeight  = 103
	defaultSeconds = 100
)

var robotRe = regexp.MustCompile(`^p=(-?\d+),(-?\d+)\s+v=(-?\d+),(-?\d+)$`)

// Robot начальная позиция и скорость за секунду
type Robot struct {
	Pos, Vel vec.Vec2
}

// Room помещение, на краях которого роботы телепортируются на противоположную сторону
type Room struct {
	Size vec.Vec2
}

// At позиция робота через t секунд
func (r Room) At(robot Robot, t int) vec.Vec2 {
	p := robot.Pos.Add(robot.Vel.Mul(vec.Broadcast(t)))
	return vec.New(util.Mod(p.X, r.Size.X), util.Mod(p.Y, r.Size.Y))
}

// quadrant номер четверти 0..3 или -1 для средних линий
func (r Room) quadrant(pos vec.Vec2) int {
	midX, midY := r.Size.X/2, r.Size.Y/2
	if pos.X == midX || pos.Y == midY {
		return -1
	}
	q := 0
	if pos.X > midX {
		q++
	}
	if pos.Y > midY {
		q += 2
	}
	return q
}

func parse(input string, p puzzle.Params) (Room, []Robot, error) {
	room := Room{Size: vec.New(p.Int("width", defaultWidth), p.Int("height", defaultHeight))}
	if room.Size.X <= 0 || room.Size.Y <= 0 {
		return room, nil, puzzle.Malformed("room size %v", room.Size)
	}

	var robots []Robot
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			continue
		}
		m := robotRe.FindStringSubmatch(line)
		if m == nil {
			return room, nil, puzzle.Malformed("line %d: %q", i+1, line)
		}
		n := make([]int, 4)
		for j := range n {
			v, err := strconv.Atoi(m[j+1])
			if err != nil {
				return room, nil, puzzle.Malformed("line %d: number %q", i+1, m[j+1])
			}
			n[j] = v
		}
		robots = append(robots, Robot{Pos: vec.New(n[0], n[1]), Vel: vec.New(n[2], n[3])})
	}
	return room, robots, nil
}

// Part1 произведение количеств роботов в четвертях через заданное время
func Part1(input string, p puzzle.Params) (int, error) {
	room, robots, err := parse(input, p)
	if err != nil {
		return 0, err
	}

	t := p.Int("seconds", defaultSeconds)
	var counts [4]int
	for _, robot := range robots {
		if q := room.quadrant(room.At(robot, t)); q >= 0 {
			counts[q]++
		}
	}
	return counts[0] * counts[1] * counts[2] * counts[3], nil
}

// Part2 первая секунда, когда все роботы стоят на разных клетках.
// Позиции повторяются с периодом width·height, дальше искать бессмысленно.
func Part2(input string, p puzzle.Params) (int, error) {
	room, robots, err := parse(input, p)
	if err != nil {
		return 0, err
	}

	period := room.Size.X * room.Size.Y
	occupied := make(map[vec.Vec2]struct{}, len(robots))
	for t := 1; t <= period; t++ {
		clear(occupied)
		distinct := true
		for _, robot := range robots {
			pos := room.At(robot, t)
			if _, taken := occupied[pos]; taken {
				distinct = false
				break
			}
			occupied[pos] = struct{}{}
		}
		if distinct {
			return t, nil
		}
	}
	return 0, puzzle.Malformed("robots never spread out")
}
