package schematic

import (
	aoc "github.com/maisem/aoc2023"
)

// Answers are the two answers for a schematic.
type Answers struct {
	PartNumbers int // sum of the part numbers
	GearRatios  int // sum of the products of each gear's two numbers
}

// ForPartNumbers calls f for each part number in row then column order,
// along with the gears found next to it, until f returns false.
func (s Schematic) ForPartNumbers(f func(tok NumberToken, gears *Registry) (keepGoing bool)) {
	for y, line := range s.Grid {
		keepGoing := true
		ForNumbers(y, line, func(tok NumberToken) bool {
			var local Registry
			if s.Adjacent(tok, &local) {
				keepGoing = f(tok, &local)
			}
			return keepGoing
		})
		if !keepGoing {
			return
		}
	}
}

// Gears returns the registry of every gear symbol next to a part number.
func (s Schematic) Gears() *Registry {
	var gears Registry
	s.ForPartNumbers(func(_ NumberToken, local *Registry) bool {
		gears.MergeFrom(local)
		return true
	})
	return &gears
}

// Solve scans s once and returns both answers.
func Solve(s Schematic) Answers {
	var (
		a     Answers
		gears Registry
	)
	s.ForPartNumbers(func(tok NumberToken, local *Registry) bool {
		a.PartNumbers += tok.Value
		gears.MergeFrom(local)
		return true
	})
	gears.ForEachValid(func(_ aoc.Pt, x, y int) bool {
		a.GearRatios += aoc.Product(x, y)
		return true
	})
	return a
}
