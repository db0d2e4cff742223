package ui

import "burrow/internal/domain"

// startMsg kicks off the first listing once the program is running.
type startMsg struct{}

// listResultMsg carries one finished listing. The generation stamp
// identifies the navigation intent that asked for it; results from a
// superseded intent are dropped, never displayed.
type listResultMsg struct {
	generation uint64
	listing    domain.Listing
}
