package main

import "github.com/maisem/aoc2023/internal/schematic"

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
// answer=557705
func (s solver) D3p1() (any, error) {
	sc, err := s.parseSchematic()
	if err != nil {
		return nil, err
	}
	return schematic.Solve(sc).PartNumbers, nil
}

// want=467835
func (s solver) D3p2() (any, error) {
	sc, err := s.parseSchematic()
	if err != nil {
		return nil, err
	}
	return schematic.Solve(sc).GearRatios, nil
}

func (s solver) parseSchematic() (schematic.Schematic, error) {
	lines, err := s.Lines()
	if err != nil {
		return schematic.Schematic{}, err
	}
	sc := schematic.FromLines(lines)
	sc.ForPartNumbers(func(tok schematic.NumberToken, gears *schematic.Registry) bool {
		s.Debugf("part number %d at row %d, columns [%d, %d), next to %d gears", tok.Value, tok.Row, tok.Start, tok.End, gears.Len())
		return true
	})
	return sc, nil
}
