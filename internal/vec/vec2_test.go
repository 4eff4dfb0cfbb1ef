package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var samples = []Vec2{
	{0, 0}, {1, 2}, {-3, 7}, {12, -5}, {-8, -9}, {100, 1},
}

func TestVec2Arithmetic(t *testing.T) {
	for _, a := range samples {
		assert.Equal(t, a, a.Add(Zero), "нулевой вектор должен быть нейтральным")
		for _, b := range samples {
			assert.Equal(t, a.Add(b), b.Add(a), "сложение коммутативно: %v %v", a, b)
			assert.Equal(t, a, a.Add(b).Sub(b), "вычитание обратно сложению: %v %v", a, b)
			if b.X != 0 && b.Y != 0 {
				assert.Equal(t, a, a.Mul(b).Div(b), "деление обратно умножению: %v %v", a, b)
			}
		}
	}
}

func TestVec2DivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { New(4, 4).Div(New(2, 0)) })
}

func TestVec2BroadcastScale(t *testing.T) {
	velocity := New(2, -3)
	assert.Equal(t, New(200, -300), velocity.Mul(Broadcast(100)))
	assert.Equal(t, velocity.Mul(Broadcast(7)), velocity.Scale(7))
}

func TestVec2Rotate(t *testing.T) {
	up := Up.Vec2()
	assert.Equal(t, Right.Vec2(), up.RotateRight())
	assert.Equal(t, Left.Vec2(), up.RotateLeft())
	assert.Equal(t, up, up.RotateRight().RotateLeft())
}

func TestVec2String(t *testing.T) {
	assert.Equal(t, "(3 -4)", New(3, -4).String())
}

func TestVec2Distances(t *testing.T) {
	assert.Equal(t, 7, New(1, 1).Manhattan(New(4, -3)))
	assert.InDelta(t, 5.0, New(0, 0).DistanceTo(New(3, 4)), 1e-9)
}

func TestDirectionUnitVectors(t *testing.T) {
	assert.Equal(t, Vec2{-1, 0}, Left.Vec2())
	assert.Equal(t, Vec2{1, 0}, Right.Vec2())
	assert.Equal(t, Vec2{0, -1}, Up.Vec2())
	assert.Equal(t, Vec2{0, 1}, Down.Vec2())

	assert.Equal(t, Zero, Left.Vec2().Add(Right.Vec2()))
	assert.Equal(t, Zero, Up.Vec2().Add(Down.Vec2()))

	for _, d := range Directions {
		assert.Equal(t, Zero, d.Vec2().Add(d.Opposite().Vec2()), "направление %s", d)
		assert.Equal(t, d.TurnRight().Vec2(), d.Vec2().RotateRight())
		assert.Equal(t, d, d.TurnRight().TurnLeft())
	}
}

func TestDirectionWalk(t *testing.T) {
	pos := Zero
	pos = pos.Add(Right.Vec2())
	pos = pos.Add(Down.Vec2())
	assert.Equal(t, New(1, 1), pos)
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, ok := ParseDirection(rune(d.String()[0]))
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}
	_, ok := ParseDirection('x')
	assert.False(t, ok)
}

func TestNeighbors4(t *testing.T) {
	n := New(5, 5).Neighbors4()
	assert.ElementsMatch(t, []Vec2{{6, 5}, {4, 5}, {5, 4}, {5, 6}}, n[:])
}
