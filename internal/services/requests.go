package services

type ListRequest struct {
	Path string
	// BypassCache forces a fresh scan and rewrites any cached listing;
	// set by the refresh transition.
	BypassCache bool
}
