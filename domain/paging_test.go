package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequestClampsToFirstPage(t *testing.T) {
	assert.Equal(t, 1, NewPageRequest(0, 20).Page)
	assert.Equal(t, 1, NewPageRequest(-5, 20).Page)
	assert.Equal(t, 3, NewPageRequest(3, 20).Page)
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageRequest(1, 50).Offset())
	assert.Equal(t, 50, NewPageRequest(2, 50).Offset())
	assert.Equal(t, 40, NewPageRequest(3, 20).Offset())
}

func TestPageInfoFlags(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		perPage int
		total   int64
		hasNext bool
		hasPrev bool
	}{
		{"empty result", 1, 50, 0, false, false},
		{"single partial page", 1, 50, 10, false, false},
		{"exactly one page", 1, 50, 50, false, false},
		{"first of two", 1, 50, 51, true, false},
		{"last of two", 2, 50, 51, false, true},
		{"middle page", 2, 20, 100, true, true},
		{"past the end", 9, 20, 100, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := NewPageInfo(NewPageRequest(tc.page, tc.perPage), tc.total)
			assert.Equal(t, tc.hasNext, info.HasNext)
			assert.Equal(t, tc.hasPrev, info.HasPrev)
		})
	}
}

// Walking all pages must cover the result set exactly once: no gaps, no
// duplicates, and HasNext false only on the final page.
func TestPageWalkCoversResultSet(t *testing.T) {
	const perPage = 20
	for _, total := range []int64{0, 1, 19, 20, 21, 59, 60, 61} {
		seen := make(map[int]bool)
		page := 1
		for {
			req := NewPageRequest(page, perPage)
			info := NewPageInfo(req, total)

			start := req.Offset()
			end := start + perPage
			if int64(end) > total {
				end = int(total)
			}
			for i := start; i < end; i++ {
				assert.False(t, seen[i], "row %d served twice for total %d", i, total)
				seen[i] = true
			}

			if !info.HasNext {
				break
			}
			page++
		}
		assert.Len(t, seen, int(total), "total %d", total)
	}
}
