package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burrow/internal/domain"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░", Bar(0, 4))
	assert.Equal(t, "██░░", Bar(50, 4))
	assert.Equal(t, "████", Bar(100, 4))
	assert.Equal(t, "████", Bar(150, 4))
	assert.Equal(t, "░░░░", Bar(-5, 4))
}

func TestRenderTopTwoOmitsRest(t *testing.T) {
	listing := domain.Listing{
		Path:       "/data",
		TotalBytes: 450,
		Entries: []domain.Entry{
			{Name: "big", Path: "/data/big", Kind: domain.KindDir, SizeBytes: 300},
			{Name: "mid.bin", Path: "/data/mid.bin", Kind: domain.KindFile, SizeBytes: 100},
			{Name: "small.bin", Path: "/data/small.bin", Kind: domain.KindFile, SizeBytes: 50},
		},
	}

	var buf bytes.Buffer
	Render(&buf, listing, 2)
	out := buf.String()

	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "22.2%")
	assert.Contains(t, out, "big/")
	assert.Contains(t, out, "mid.bin")
	// The third entry is omitted outright, never folded into "other".
	assert.NotContains(t, out, "small.bin")
	assert.NotContains(t, out, "other")
	assert.Contains(t, out, "450B")
}

func TestRenderEmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, domain.Listing{Path: "/empty"}, 10)
	assert.Contains(t, buf.String(), "(empty directory)")
}

func TestRenderFailedListing(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, domain.Listing{
		Path:       "/locked",
		Fail:       domain.FailPermission,
		FailDetail: "open /locked: permission denied",
	}, 10)
	out := buf.String()
	assert.Contains(t, out, "permission denied")
	assert.NotContains(t, out, "Name")
}

func TestRenderUnknownSize(t *testing.T) {
	listing := domain.Listing{
		Path:       "/data",
		TotalBytes: 10,
		Entries: []domain.Entry{
			{Name: "a.bin", SizeBytes: 10},
			{Name: "locked", Kind: domain.KindDir, SizeBytes: domain.SizeUnknown, Partial: true},
		},
	}
	var buf bytes.Buffer
	Render(&buf, listing, 10)
	out := buf.String()
	assert.Contains(t, out, "size unavailable")
	require.True(t, strings.Contains(out, "locked/"))
}

func TestRenderNonPositiveTop(t *testing.T) {
	listing := domain.Listing{
		Path:       "/data",
		TotalBytes: 5,
		Entries:    []domain.Entry{{Name: "only.bin", SizeBytes: 5}},
	}
	for _, top := range []int{-1, 0} {
		var buf bytes.Buffer
		Render(&buf, listing, top)
		out := buf.String()
		assert.NotContains(t, out, "only.bin", "top %d", top)
		assert.Contains(t, out, "Total: 5B across 1 entries", "top %d", top)
	}
}

func TestRenderTopLargerThanListing(t *testing.T) {
	listing := domain.Listing{
		Path:       "/data",
		TotalBytes: 5,
		Entries:    []domain.Entry{{Name: "only.bin", SizeBytes: 5}},
	}
	var buf bytes.Buffer
	Render(&buf, listing, 10)
	assert.Contains(t, buf.String(), "only.bin")
	assert.Contains(t, buf.String(), "100.0%")
}
