package services

import (
	"context"

	"burrow/internal/domain"
)

// Sizer computes the aggregate size of a path: a file's direct size,
// or the recursive sum of reachable bytes under a directory. The
// returned flag reports a partial sum (some subtree was skipped).
type Sizer interface {
	SizeOf(ctx context.Context, path string) (int64, bool)
}

// Lister produces the one-level listing of a directory. Failures are
// reported inside the Listing, never by panicking the session.
type Lister interface {
	List(ctx context.Context, req ListRequest) domain.Listing
}

// Protector answers whether a path is shielded from destructive
// operations. The deletion affordance is the only consumer.
type Protector interface {
	Protected(path string) bool
}

type ProtectorFunc func(path string) bool

func (fn ProtectorFunc) Protected(path string) bool {
	return fn(path)
}

// Confirmer asks the user a yes/no question. assumeYes short-circuits
// to true without prompting.
type Confirmer interface {
	Confirm(message string, assumeYes bool) bool
}
