package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// SumFunc returns the sum of f over in, starting at 0.
func SumFunc[T any, N Number](in []T, f func(T) N) N {
	var sum N
	for _, v := range in {
		sum += f(v)
	}
	return sum
}

// Product returns the product of the numbers; 1 for none.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit[T byte | rune](c T) bool {
	return c >= '0' && c <= '9'
}

// Digit returns the digit value of the rune.
// It panics if r is not a digit.
func Digit(r rune) int {
	if !IsDigit(r) {
		panic("not a digit: " + strconv.QuoteRune(r))
	}
	return int(r - '0')
}

// Int returns the int value of the string.
// It panics if s is not a number.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the space separated fields of s.
func Ints(s string) []int {
	var out []int
	for _, v := range strings.Fields(s) {
		out = append(out, Int(v))
	}
	return out
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
