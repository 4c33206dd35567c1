package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	tcs := map[string]struct {
		in   PaginateQuery
		want PaginateQuery
	}{
		"zero":       {in: PaginateQuery{}, want: PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}},
		"negative":   {in: PaginateQuery{Page: -3, Limit: -1}, want: PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}},
		"over limit": {in: PaginateQuery{Page: 4, Limit: 1000}, want: PaginateQuery{Page: 4, Limit: MaxLimit}},
		"unchanged":  {in: PaginateQuery{Page: 2, Limit: 20}, want: PaginateQuery{Page: 2, Limit: 20}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			q := tc.in
			q.Adjust()
			assert.Equal(t, tc.want, q)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), (&PaginateQuery{Page: 1, Limit: 15}).Offset())
	assert.Equal(t, int64(30), (&PaginateQuery{Page: 3, Limit: 15}).Offset())
}

func TestToResponse(t *testing.T) {
	got := New(31, 15, PaginateQuery{Page: 2, Limit: 15}).ToResponse()
	assert.Equal(t, PaginatorResponse{
		Total:       31,
		Count:       15,
		PerPage:     15,
		CurrentPage: 2,
		TotalPages:  3,
		HasNext:     true,
		HasPrev:     true,
	}, got)

	empty := New(0, 0, PaginateQuery{Page: 1, Limit: 15}).ToResponse()
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
