package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Snapshot is the state published to presenters after every discovery pass.
//
// Entries is a new slice on every publish and is never modified afterwards.
// Per-entry sizes keep changing as sizing completes, so totals are computed
// on demand.
type Snapshot struct {
	Entries []*Entry
	Loading bool

	// Zombies holds the IDs of entries whose project was missing when the
	// pass ran.
	Zombies map[uint64]bool
}

// NewSnapshot copies entries, sorts them by name and path, and returns the snapshot.
func NewSnapshot(entries []*Entry, loading bool) Snapshot {
	sorted := slices.Clone(entries)
	SortEntries(sorted)
	return Snapshot{
		Entries: sorted,
		Loading: loading,
	}
}

// WithZombies returns a copy of s that marks zombies.
func (s Snapshot) WithZombies(zombies []*Entry) Snapshot {
	s.Zombies = make(map[uint64]bool, len(zombies))
	for _, e := range zombies {
		s.Zombies[e.ID()] = true
	}
	return s
}

// IsZombie reports whether entry was classified as a zombie for this snapshot.
func (s Snapshot) IsZombie(entry *Entry) bool {
	return s.Zombies[entry.ID()]
}

// ZombieEntries returns the zombies among Entries in display order.
func (s Snapshot) ZombieEntries() []*Entry {
	var zombies []*Entry
	for _, e := range s.Entries {
		if s.IsZombie(e) {
			zombies = append(zombies, e)
		}
	}
	return zombies
}

// NoData reports whether the snapshot has no entries.
func (s Snapshot) NoData() bool {
	return len(s.Entries) == 0
}

// TotalBytes sums the sizes of all entries that finished sizing.
func (s Snapshot) TotalBytes() uint64 {
	var total uint64
	for _, e := range s.Entries {
		total += e.Size()
	}
	return total
}

// Pending returns the number of entries still being sized.
func (s Snapshot) Pending() int {
	n := 0
	for _, e := range s.Entries {
		if e.Loading() {
			n++
		}
	}
	return n
}

// SortEntries orders entries by case-insensitive name, then by root.
func SortEntries(entries []*Entry) {
	slices.SortFunc(entries, func(a, b *Entry) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name())),
			strings.Compare(a.Root(), b.Root()),
		)
	})
}
