// Package trebuchet recovers calibration values from lines of text.
package trebuchet

import (
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var digitNames = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Digits returns the digits in line, in order. If spelled is true,
// spelled out digits count too and may overlap, so "eightwo" is 8, 2.
func Digits(line string, spelled bool) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if aoc.IsDigit(line[i]) {
			out = append(out, int(line[i]-'0'))
			continue
		}
		if !spelled {
			continue
		}
		for d, name := range digitNames {
			if strings.HasPrefix(line[i:], name) {
				out = append(out, d+1)
				break
			}
		}
	}
	return out
}

// CalibrationValue returns the two digit number made of the first and
// last digits of line, or 0 if line has none.
func CalibrationValue(line string, spelled bool) int {
	ds := Digits(line, spelled)
	if len(ds) == 0 {
		return 0
	}
	return ds[0]*10 + ds[len(ds)-1]
}

// Sum returns the sum of the calibration values of lines.
func Sum(lines []string, spelled bool) int {
	return aoc.SumFunc(lines, func(l string) int {
		return CalibrationValue(l, spelled)
	})
}
