package schematic

import (
	"slices"

	aoc "github.com/maisem/aoc2023"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Registry records, for each gear symbol position, the values of the
// numbers found next to it in the order they were found.
//
// The zero value is ready to use.
type Registry struct {
	m map[aoc.Pt][]int
}

// Record appends v to the values next to the gear at p.
func (r *Registry) Record(p aoc.Pt, v int) {
	aoc.InitMap(&r.m)
	r.m[p] = append(r.m[p], v)
}

// MergeFrom records every value of other into r, keeping the order
// other found them in for each position. Values already in r at the same
// position are kept.
func (r *Registry) MergeFrom(other *Registry) {
	if other == nil {
		return
	}
	for _, p := range other.positions() {
		for _, v := range other.m[p] {
			r.Record(p, v)
		}
	}
}

// ForEachValid calls f, in row then column order, for each position with
// exactly two values, until f returns false.
func (r *Registry) ForEachValid(f func(p aoc.Pt, a, b int) (keepGoing bool)) {
	for _, p := range r.positions() {
		vs := r.m[p]
		if len(vs) != 2 {
			continue
		}
		if !f(p, vs[0], vs[1]) {
			return
		}
	}
}

// Values returns the values recorded at p.
func (r *Registry) Values(p aoc.Pt) []int {
	return r.m[p]
}

// Len returns the number of positions with at least one value.
func (r *Registry) Len() int {
	return len(r.m)
}

type registryEntry struct {
	P      aoc.Pt
	Values []int
}

// Hash returns a hash of the values recorded at each position, ignoring
// the order they were recorded in.
func (r *Registry) Hash() deephash.Sum {
	entries := make([]registryEntry, 0, len(r.m))
	for _, p := range r.positions() {
		vs := slices.Clone(r.m[p])
		slices.Sort(vs)
		entries = append(entries, registryEntry{P: p, Values: vs})
	}
	return deephash.Hash(&entries)
}

func (r *Registry) positions() []aoc.Pt {
	ps := maps.Keys(r.m)
	slices.SortFunc(ps, aoc.Pt.Compare)
	return ps
}
