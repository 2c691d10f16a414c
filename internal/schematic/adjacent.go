package schematic

import (
	aoc "github.com/maisem/aoc2023"
)

const gearSymbol = '*'

// Schematic is an engine schematic, one row per input line.
type Schematic struct {
	Grid aoc.Grid[byte]
}

// Parse returns the schematic for input.
func Parse(input string) Schematic {
	return Schematic{Grid: aoc.GridFromLines(input)}
}

// FromLines returns the schematic made of lines.
func FromLines(lines []string) Schematic {
	g := make(aoc.Grid[byte], len(lines))
	for i, l := range lines {
		g[i] = []byte(l)
	}
	return Schematic{Grid: g}
}

// IsSymbol reports whether c is neither a digit nor a period.
func IsSymbol(c byte) bool {
	return c != '.' && !aoc.IsDigit(c)
}

// Adjacent reports whether tok has a symbol in any of the eight
// directions around it. Every '*' found there is recorded in gears with
// tok's value, if gears is non-nil.
//
// The rows above and below are checked over the window one column wider
// than tok on each side. On tok's own row only the single bytes just
// before and just after it are checked, so tok's own digits are never
// looked at.
func (s Schematic) Adjacent(tok NumberToken, gears *Registry) bool {
	found := false
	for _, y := range []int{tok.Row - 1, tok.Row + 1} {
		row := s.Grid.Row(y)
		lo, hi := max(tok.Start-1, 0), min(tok.End+1, len(row))
		for x := lo; x < hi; x++ {
			found = s.check(aoc.Pt{X: x, Y: y}, tok.Value, gears) || found
		}
	}
	if tok.Start > 0 {
		found = s.check(aoc.Pt{X: tok.Start - 1, Y: tok.Row}, tok.Value, gears) || found
	}
	found = s.check(aoc.Pt{X: tok.End, Y: tok.Row}, tok.Value, gears) || found
	return found
}

// check reports whether p holds a symbol, recording v in gears when that
// symbol is a gear. Points outside the grid hold nothing.
func (s Schematic) check(p aoc.Pt, v int, gears *Registry) bool {
	c, ok := s.Grid.AtOk(p)
	if !ok || !IsSymbol(c) {
		return false
	}
	if c == gearSymbol && gears != nil {
		gears.Record(p, v)
	}
	return true
}
