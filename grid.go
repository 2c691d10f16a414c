package aoc

import (
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major grid. Rows are not required to have the same length.
type Grid[T any] [][]T

// GridFromLines returns a byte grid with one row per line.
// A single trailing newline does not produce an empty last row.
func GridFromLines(s string) Grid[byte] {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return Grid[byte]{{}}
	}
	lines := strings.Split(s, "\n")
	g := make(Grid[byte], len(lines))
	for i, l := range lines {
		g[i] = []byte(l)
	}
	return g
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is like At but reports false instead of panicking when p is
// outside of its row.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Row returns row y, or nil if y is out of range.
func (g Grid[T]) Row(y int) []T {
	if y < 0 || y >= len(g) {
		return nil
	}
	return g[y]
}

// Size returns the width of the widest row and the number of rows.
func (g Grid[T]) Size() Pt {
	var p Pt
	p.Y = len(g)
	for _, r := range g {
		p.X = max(p.X, len(r))
	}
	return p
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

// Pt2 is a point; X is the column and Y is the row.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Less orders points row-major.
func (p Pt2[T]) Less(b Pt2[T]) bool {
	if p.Y != b.Y {
		return p.Y < b.Y
	}
	return p.X < b.X
}

// Compare is Less in the form slices.SortFunc wants.
func (p Pt2[T]) Compare(b Pt2[T]) int {
	switch {
	case p == b:
		return 0
	case p.Less(b):
		return -1
	}
	return 1
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
