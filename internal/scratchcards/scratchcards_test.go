package scratchcards

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maisem/aoc2023/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func parseSample(t *testing.T) []Card {
	t.Helper()
	cards, err := ParseCards(strings.Split(sample, "\n"))
	require.NoError(t, err)
	require.Len(t, cards, 6)
	return cards
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard("Card  3:  1 21 | 69  1 14")
	require.NoError(t, err)
	want := Card{ID: 3, Winning: []int{1, 21}, Have: []int{69, 1, 14}}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("ParseCard mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCardMalformed(t *testing.T) {
	for _, line := range []string{"Card 1: 1 2 3", "Game 1: 1 | 2", "Card x: 1 | 2", "Card 1: a | b"} {
		_, err := ParseCard(line)
		assert.True(t, errors.Is(err, errors.ErrMalformedLine), "ParseCard(%q) = %v", line, err)
	}

	_, err := ParseCards([]string{"Card 1: 1 | 2", "nope"})
	var pErr *errors.PuzzleError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 2, pErr.Details["line"])
}

func TestPoints(t *testing.T) {
	cards := parseSample(t)
	var matches, points []int
	for _, c := range cards {
		matches = append(matches, c.Matches())
		points = append(points, c.Points())
	}
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, matches)
	assert.Equal(t, []int{8, 2, 2, 1, 0, 0}, points)
	assert.Equal(t, 13, SumPoints(cards))
}

func TestTotalCards(t *testing.T) {
	assert.Equal(t, 30, TotalCards(parseSample(t)))
	assert.Zero(t, TotalCards(nil))

	// Card 2 would win copies of cards 3 and 4, which don't exist.
	cards := []Card{
		{ID: 1, Winning: []int{5}, Have: []int{5}},
		{ID: 2, Winning: []int{1, 2}, Have: []int{1, 2}},
	}
	assert.Equal(t, 3, TotalCards(cards))
}
