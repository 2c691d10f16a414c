package main

import "github.com/maisem/aoc2023/internal/trebuchet"

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
// answer=54573
func (s solver) D1p1() (any, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return trebuchet.Sum(lines, false), nil
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
// answer=54591
func (s solver) D1p2() (any, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return trebuchet.Sum(lines, true), nil
}
