package util

import "golang.org/x/exp/constraints"

// Abs модуль числа
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff |a - b|
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Mod остаток, всегда неотрицательный при m > 0
func Mod[T constraints.Integer](v, m T) T {
	return (v%m + m) % m
}

// Sum сумма элементов
func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Digits количество десятичных цифр в неотрицательном числе (0 -> 1)
func Digits[T constraints.Integer](v T) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Pow10 10^n
func Pow10[T constraints.Integer](n int) T {
	var p T = 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Concat склеивает десятичную запись: Concat(12, 345) == 12345
func Concat[T constraints.Integer](a, b T) T {
	return a*Pow10[T](Digits(b)) + b
}

// Sign -1, 0 или 1
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
