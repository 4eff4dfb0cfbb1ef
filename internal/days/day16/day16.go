package day16

import (
	"container/heap"
	"math"

	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/vec"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   16,
		Title: "Reindeer Maze",
		Part1: Part1,
		Part2: Part2,
	})
}

const (
	stepCost = 1
	turnCost = 1000

	unreachable = math.MaxInt
)

// Maze лабиринт, старт (олень смотрит на восток) и финиш
type Maze struct {
	walls      *grid.Grid[bool]
	start, end vec.Vec2
}

func parse(input string) (*Maze, error) {
	m := &Maze{}
	var starts, ends int

	walls, err := grid.Parse(input, func(pos vec.Vec2, c rune) (bool, error) {
		switch c {
		case '#':
			return true, nil
		case '.':
			return false, nil
		case 'S':
			m.start = pos
			starts++
			return false, nil
		case 'E':
			m.end = pos
			ends++
			return false, nil
		}
		return false, puzzle.Malformed("unexpected %q", c)
	})
	if err != nil {
		return nil, puzzle.AsMalformed(err)
	}
	if starts != 1 || ends != 1 {
		return nil, puzzle.Malformed("want one S and one E, got %d and %d", starts, ends)
	}
	m.walls = walls
	return m, nil
}

// state клетка и направление взгляда, упакованные в один индекс
type state int

func (m *Maze) state(pos vec.Vec2, d vec.Direction) state {
	index, _ := m.walls.IndexFor(pos)
	return state(index*4 + int(d))
}

func (m *Maze) decode(s state) (vec.Vec2, vec.Direction) {
	return m.walls.PosFor(int(s) / 4), vec.Direction(int(s) % 4)
}

func (m *Maze) open(pos vec.Vec2) bool {
	wall, ok := m.walls.ValueFor(pos)
	return ok && !wall
}

type item struct {
	s    state
	cost int
}

// queue очередь с приоритетом по минимальной стоимости
type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }
func (q *queue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// dijkstra кратчайшие стоимости до всех состояний. При reverse шаги
// делаются назад, что даёт стоимость от состояния до одного из источников.
func (m *Maze) dijkstra(sources []state, reverse bool) []int {
	dist := make([]int, m.walls.Len()*4)
	for i := range dist {
		dist[i] = unreachable
	}

	q := &queue{}
	for _, s := range sources {
		dist[s] = 0
		heap.Push(q, item{s: s, cost: 0})
	}

	relax := func(s state, cost int) {
		if cost < dist[s] {
			dist[s] = cost
			heap.Push(q, item{s: s, cost: cost})
		}
	}

	for q.Len() > 0 {
		cur := heap.Pop(q).(item)
		if cur.cost > dist[cur.s] {
			continue
		}
		pos, d := m.decode(cur.s)

		step := d.Vec2()
		if reverse {
			step = step.Scale(-1)
		}
		if next := pos.Add(step); m.open(next) {
			relax(m.state(next, d), cur.cost+stepCost)
		}
		relax(m.state(pos, d.TurnLeft()), cur.cost+turnCost)
		relax(m.state(pos, d.TurnRight()), cur.cost+turnCost)
	}
	return dist
}

// best минимальная стоимость прибытия на финиш в любом направлении
func (m *Maze) best(forward []int) int {
	best := unreachable
	for _, d := range vec.Directions {
		best = min(best, forward[m.state(m.end, d)])
	}
	return best
}

// Part1 наименьшая стоимость пути от S до E
func Part1(input string, _ puzzle.Params) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	best := m.best(m.dijkstra([]state{m.state(m.start, vec.Right)}, false))
	if best == unreachable {
		return 0, puzzle.Malformed("end is unreachable")
	}
	return best, nil
}

// Part2 количество клеток, лежащих хотя бы на одном из оптимальных путей
func Part2(input string, _ puzzle.Params) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}

	forward := m.dijkstra([]state{m.state(m.start, vec.Right)}, false)
	best := m.best(forward)
	if best == unreachable {
		return 0, puzzle.Malformed("end is unreachable")
	}

	ends := make([]state, 0, len(vec.Directions))
	for _, d := range vec.Directions {
		ends = append(ends, m.state(m.end, d))
	}
	backward := m.dijkstra(ends, true)

	onPath := make([]bool, m.walls.Len())
	for s := range forward {
		f, b := forward[s], backward[s]
		if f == unreachable || b == unreachable || f+b != best {
			continue
		}
		onPath[s/4] = true
	}

	tiles := 0
	for _, ok := range onPath {
		if ok {
			tiles++
		}
	}
	return tiles, nil
}
