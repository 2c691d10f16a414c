// Package cubes plays the game of colored cubes drawn from a bag.
package cubes

import (
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/errors"
	"golang.org/x/exp/maps"
)

const day = 2

// Reveal is the number of cubes of each color shown at once.
type Reveal map[string]int

// Limits is the number of cubes of each color in the bag. Colors not in
// Limits are not limited.
type Limits map[string]int

// Game is one game and everything revealed during it.
type Game struct {
	ID      int
	Reveals []Reveal
}

var (
	gameRx = regexp.MustCompile(`^\s*Game (\d+): (.*)$`)
	cubeRx = regexp.MustCompile(`^\s*(\d+)\s*(\D+?)\s*$`)
)

// ParseGame parses a line like "Game 1: 3 blue, 4 red; 1 red, 2 green".
// Cube counts that are not "<n> <color>" are ignored.
func ParseGame(line string) (Game, error) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return Game{}, errors.MalformedLine(day, 0, line)
	}
	g := Game{ID: aoc.Int(m[1])}
	for _, rs := range strings.Split(m[2], ";") {
		r := Reveal{}
		for _, cs := range strings.Split(rs, ",") {
			if cm := cubeRx.FindStringSubmatch(cs); cm != nil {
				r[cm[2]] = aoc.Int(cm[1])
			}
		}
		g.Reveals = append(g.Reveals, r)
	}
	return g, nil
}

// ParseGames parses one game per line. Blank lines are skipped.
func ParseGames(lines []string) ([]Game, error) {
	var games []Game
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		g, err := ParseGame(l)
		if err != nil {
			return nil, errors.MalformedLine(day, i+1, l)
		}
		games = append(games, g)
	}
	return games, nil
}

// Possible reports whether no reveal of g shows more cubes of a color
// than lim allows.
func (g Game) Possible(lim Limits) bool {
	for _, r := range g.Reveals {
		for color, n := range r {
			if limit, ok := lim[color]; ok && n > limit {
				return false
			}
		}
	}
	return true
}

// Minimum returns the fewest cubes of each color that make g possible.
func (g Game) Minimum() Limits {
	fewest := Limits{}
	for _, r := range g.Reveals {
		for color, n := range r {
			if cur, ok := fewest[color]; !ok || n > cur {
				fewest[color] = n
			}
		}
	}
	return fewest
}

// MinimumPower is the product of the counts of Minimum.
func (g Game) MinimumPower() int {
	return aoc.Product(maps.Values(g.Minimum())...)
}

// Bag is the bag the elf asks about.
var Bag = Limits{"red": 12, "green": 13, "blue": 14}

// SumPossible returns the sum of the IDs of the games possible with lim.
func SumPossible(games []Game, lim Limits) int {
	return aoc.SumFunc(games, func(g Game) int {
		if g.Possible(lim) {
			return g.ID
		}
		return 0
	})
}

// SumPower returns the sum of the minimum powers of games.
func SumPower(games []Game) int {
	return aoc.SumFunc(games, Game.MinimumPower)
}
