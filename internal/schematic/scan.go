// Package schematic finds the part numbers and gears of an engine
// schematic.
//
// A schematic is a grid of digits, periods and symbols. A part number is a
// run of digits with a symbol in one of the eight directions around any of
// its digits. A gear is a '*' next to exactly two part numbers.
package schematic

import (
	aoc "github.com/maisem/aoc2023"
)

// NumberToken is a maximal run of digits on one row.
type NumberToken struct {
	Value int
	Row   int
	Start int // first column
	End   int // one past the last column
}

// ForNumbers calls f for each maximal run of digits in line, left to
// right, until f returns false.
func ForNumbers(row int, line []byte, f func(NumberToken) (keepGoing bool)) {
	for i := 0; i < len(line); {
		if !aoc.IsDigit(line[i]) {
			i++
			continue
		}
		tok := NumberToken{Row: row, Start: i}
		for ; i < len(line) && aoc.IsDigit(line[i]); i++ {
			tok.Value = tok.Value*10 + int(line[i]-'0')
		}
		tok.End = i
		if !f(tok) {
			return
		}
	}
}

// Numbers returns all the digit runs of line.
func Numbers(row int, line []byte) []NumberToken {
	var out []NumberToken
	ForNumbers(row, line, func(t NumberToken) bool {
		out = append(out, t)
		return true
	})
	return out
}
