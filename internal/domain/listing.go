package domain

type FailKind int

const (
	FailNone FailKind = iota
	FailPermission
	FailNotFound
	FailIO
)

func (kind FailKind) String() string {
	switch kind {
	case FailPermission:
		return "permission denied"
	case FailNotFound:
		return "not found"
	case FailIO:
		return "i/o error"
	default:
		return ""
	}
}

// Listing is the immutable result of scanning one directory level.
// It is created fresh on every navigation transition and superseded,
// never patched, on refresh.
type Listing struct {
	Path       string
	Entries    []Entry
	TotalBytes int64
	Fail       FailKind
	FailDetail string
}

func (listing Listing) Failed() bool {
	return listing.Fail != FailNone
}

// MaxEntryBytes is the largest known entry size, used to scale usage
// bars. Unknown sizes count as zero here, never in totals.
func (listing Listing) MaxEntryBytes() int64 {
	var max int64
	for _, entry := range listing.Entries {
		if entry.SizeKnown() && entry.SizeBytes > max {
			max = entry.SizeBytes
		}
	}
	return max
}
