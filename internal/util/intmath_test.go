package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntMath(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, uint(3), AbsDiff(uint(2), uint(5)))
	assert.Equal(t, 4, Mod(-3, 7))
	assert.Equal(t, 3, Mod(10, 7))
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, -1, Sign(-9))
	assert.Equal(t, 0, Sign(0))
}

func TestDigitsConcat(t *testing.T) {
	cases := []struct {
		v    int
		want int
	}{
		{0, 1}, {7, 1}, {10, 2}, {99, 2}, {1000, 4}, {253000, 6},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Digits(c.v), "число %d", c.v)
	}

	assert.Equal(t, 12345, Concat(12, 345))
	assert.Equal(t, 150, Concat(15, 0))
	assert.Equal(t, int64(1000), Pow10[int64](3))
}
