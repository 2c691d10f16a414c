// Package scratchcards scores scratchcards and counts the copies they win.
package scratchcards

import (
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/errors"
)

const day = 4

// Card is a scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

var cardRx = regexp.MustCompile(`^Card\s+(\d+)\s*:\s+([\d\s]+)\s+\|\s+([\d\s]+)$`)

// ParseCard parses a line like "Card 1: 41 48 | 83 86 6".
func ParseCard(line string) (Card, error) {
	m := cardRx.FindStringSubmatch(line)
	if m == nil {
		return Card{}, errors.MalformedLine(day, 0, line)
	}
	return Card{
		ID:      aoc.Int(m[1]),
		Winning: aoc.Ints(m[2]),
		Have:    aoc.Ints(m[3]),
	}, nil
}

// ParseCards parses one card per line. Blank lines are skipped.
func ParseCards(lines []string) ([]Card, error) {
	var cards []Card
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		c, err := ParseCard(l)
		if err != nil {
			return nil, errors.MalformedLine(day, i+1, l)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Matches returns how many of the numbers c has are winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = true
	}
	n := 0
	for _, h := range c.Have {
		if winning[h] {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each match after it.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// SumPoints returns the total points of cards.
func SumPoints(cards []Card) int {
	return aoc.SumFunc(cards, Card.Points)
}

// TotalCards returns how many cards there are once every card, original
// or copy, has won its copies. A card with n matches wins one copy of
// each of the next n cards by ID; cards that don't exist are not won.
func TotalCards(cards []Card) int {
	matches := make(map[int]int, len(cards))
	q := idQueue(cards)
	for _, c := range cards {
		matches[c.ID] = c.Matches()
	}
	total := 0
	q.While(func(id int) bool {
		total++
		for won := id + 1; won <= id+matches[id]; won++ {
			if _, ok := matches[won]; ok {
				q.Push(won)
			}
		}
		return true
	})
	return total
}

// idQueue returns a queue holding the ID of each card.
func idQueue(cards []Card) *aoc.Queue[int] {
	ids := make([]int, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	q := aoc.NewQueue(ids...)
	return &q
}
