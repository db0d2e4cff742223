package domain

import "sort"

type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
)

// SizeUnknown marks an entry whose size could not be determined at all
// (typically a directory that could not be opened).
const SizeUnknown int64 = -1

type Entry struct {
	Name      string
	Path      string
	Kind      EntryKind
	SizeBytes int64
	Partial   bool
}

func (entry Entry) SizeKnown() bool {
	return entry.SizeBytes >= 0
}

// SortEntries orders entries by descending size with unknown sizes
// last, ties broken by ascending name. Every listing is presented in
// exactly this order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i].SizeBytes, entries[j].SizeBytes
		if left != right {
			return left > right
		}
		return entries[i].Name < entries[j].Name
	})
}
