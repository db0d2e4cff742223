package services

import (
	"context"
	"sync"
	"time"

	"burrow/internal/domain"
)

// MockLister serves canned listings, optionally after a delay, for
// exercising the UI without touching the filesystem.
type MockLister struct {
	mu       sync.Mutex
	Listings map[string]domain.Listing
	Delay    time.Duration
	calls    []ListRequest
}

func NewMockLister() *MockLister {
	return &MockLister{Listings: make(map[string]domain.Listing)}
}

func (lister *MockLister) List(ctx context.Context, req ListRequest) domain.Listing {
	lister.mu.Lock()
	lister.calls = append(lister.calls, req)
	lister.mu.Unlock()

	if lister.Delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Listing{Path: req.Path, Fail: domain.FailIO, FailDetail: ctx.Err().Error()}
		case <-time.After(lister.Delay):
		}
	}

	lister.mu.Lock()
	defer lister.mu.Unlock()
	if listing, ok := lister.Listings[req.Path]; ok {
		return listing
	}
	return domain.Listing{Path: req.Path, Fail: domain.FailNotFound, FailDetail: "not found"}
}

func (lister *MockLister) Calls() []ListRequest {
	lister.mu.Lock()
	defer lister.mu.Unlock()
	return append([]ListRequest{}, lister.calls...)
}
