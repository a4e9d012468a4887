package domain

import "iter"

// Groups partitions entries by base name.
//
// Keys iterate in order of first appearance and each group keeps the order in
// which its entries were added, so tie-breaks over a group are reproducible.
type Groups struct {
	order   []string
	members map[string][]Entry
}

// NewGroups creates an empty Groups.
func NewGroups() *Groups {
	return &Groups{
		members: make(map[string][]Entry),
	}
}

// GroupEntries partitions entries by their base name, preserving input order.
func GroupEntries(entries []Entry) *Groups {
	g := NewGroups()
	for _, e := range entries {
		g.Add(e)
	}
	return g
}

// Add appends an entry to the group of its base name.
func (g *Groups) Add(e Entry) {
	if _, ok := g.members[e.BaseName]; !ok {
		g.order = append(g.order, e.BaseName)
	}
	g.members[e.BaseName] = append(g.members[e.BaseName], e)
}

// All yields each base name with its entries, in order of first appearance.
func (g *Groups) All() iter.Seq2[string, []Entry] {
	return func(yield func(string, []Entry) bool) {
		for _, name := range g.order {
			if !yield(name, g.members[name]) {
				return
			}
		}
	}
}
