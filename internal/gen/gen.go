// Package gen генерирует синтетические входы в формате головоломок.
package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/annel0/aoc2024/internal/grid"
	"github.com/annel0/aoc2024/internal/util"
	"github.com/annel0/aoc2024/internal/vec"
)

// ErrBadSize неверные размеры или число видов
var ErrBadSize = errors.New("gen: bad size")

// Options параметры генерации
type Options struct {
	Width  int
	Height int
	Seed   int64
	// Scale шаг по координатам шума, чем меньше, тем крупнее пятна
	Scale float64
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, o.Width, o.Height)
	}
	return nil
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 0.1
	}
	return o.Scale
}

// field заполняет сетку значениями шума, переведёнными в уровни 0..levels-1
func field(o Options, levels int) *grid.Grid[int] {
	noise := util.NewNoise(o.Seed)
	g := grid.Filled(o.Width, o.Height, 0)
	s := o.scale()
	for y := range o.Height {
		for x := range o.Width {
			v := noise.At(float64(x)*s, float64(y)*s)
			g.SetValueFor(vec.New(x, y), min(int(v*float64(levels)), levels-1))
		}
	}
	return g
}

// Garden карта сада (формат дня 12) из plants видов растений 'A'..
func Garden(o Options, plants int) (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}
	if plants < 1 || plants > 26 {
		return "", fmt.Errorf("%w: plants %d", ErrBadSize, plants)
	}
	return render(field(o, plants), func(level int) rune { return rune('A' + level) }), nil
}

// Heightmap карта высот 0..9 (формат дня 10)
func Heightmap(o Options) (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}
	return render(field(o, 10), func(level int) rune { return rune('0' + level) }), nil
}

func render(g *grid.Grid[int], cell func(int) rune) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for pos, v := range g.All() {
		b.WriteRune(cell(v))
		if pos.X == g.Width()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
