package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constPart(v int) Part {
	return func(string, Params) (int, error) { return v, nil }
}

func TestRegistry(t *testing.T) {
	Register(Solution{Day: 902, Title: "second", Part1: constPart(3), Part2: constPart(4)})
	Register(Solution{Day: 901, Title: "first", Part1: constPart(1), Part2: constPart(2)})

	s, err := Get(901)
	require.NoError(t, err)
	assert.Equal(t, "first", s.Title)

	part, err := s.Part(2)
	require.NoError(t, err)
	v, err := part("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = s.Part(3)
	assert.ErrorIs(t, err, ErrUnknownPart)

	_, err = Get(999)
	assert.ErrorIs(t, err, ErrUnknownDay)

	all := All()
	require.GreaterOrEqual(t, len(all), 2)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Day, all[i].Day)
	}

	assert.Panics(t, func() {
		Register(Solution{Day: 901, Part1: constPart(0), Part2: constPart(0)})
	}, "повторная регистрация должна паниковать")
	assert.Panics(t, func() {
		Register(Solution{Day: 903, Part1: constPart(0)})
	})
}

func TestParams(t *testing.T) {
	p := Params{"width": 11}
	assert.Equal(t, 11, p.Int("width", 101))
	assert.Equal(t, 103, p.Int("height", 103))

	var empty Params
	assert.Equal(t, 5, empty.Int("x", 5))

	parsed, err := ParamsFromStrings(map[string]string{"width": "7"})
	require.NoError(t, err)
	assert.Equal(t, Params{"width": 7}, parsed)

	_, err = ParamsFromStrings(map[string]string{"width": "seven"})
	assert.Error(t, err)
}

func TestLinesAndBlocks(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\r\n"))
	assert.Nil(t, Lines("\n\n"))

	blocks := Blocks("1|2\n3|4\n\n1,2\n\n\n3\n")
	assert.Equal(t, [][]string{{"1|2", "3|4"}, {"1,2"}, {"3"}}, blocks)
}

func TestInts(t *testing.T) {
	n, err := Ints("3   4, -5\t6")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, -5, 6}, n)

	_, err = Ints("1 x")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestMalformed(t *testing.T) {
	err := Malformed("line %d", 3)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.EqualError(t, err, "puzzle: malformed input: line 3")

	base := errors.New("ragged")
	wrapped := AsMalformed(base)
	assert.ErrorIs(t, wrapped, ErrMalformedInput)
	assert.ErrorIs(t, wrapped, base)

	// уже помеченная ошибка не оборачивается повторно
	assert.Same(t, err, AsMalformed(err))
	assert.NoError(t, AsMalformed(nil))
}
