package pagination

import (
	"net/url"
	"testing"

	"Tweeter/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaginator() *Paginator {
	return New(&config.Pagination{PageSize: 10, MaxPageSize: 100})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{"defaults", "", Params{Page: 1, PageSize: 10}, false},
		{"page", "page=3", Params{Page: 3, PageSize: 10}, false},
		{"page size", "page_size=25", Params{Page: 1, PageSize: 25}, false},
		{"page size capped", "page_size=1000", Params{Page: 1, PageSize: 100}, false},
		{"bad page size ignored", "page_size=abc", Params{Page: 1, PageSize: 10}, false},
		{"zero page", "page=0", Params{}, true},
		{"bad page", "page=last", Params{}, true},
		{"large page", "page=1000000", Params{Page: 1000000, PageSize: 10}, false},
		{"offset overflow", "page=1000000000000000000", Params{}, true},
		{"offset overflow with page size", "page=100000000000000000&page_size=100", Params{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := newPaginator().Parse(q)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPage_Links(t *testing.T) {
	u, _ := url.Parse("/api/tweet/1/comments/?user=alice&page=2")
	page, err := NewPage(u, Params{Page: 2, PageSize: 10}, 25, []int{11, 12})
	require.NoError(t, err)

	require.NotNil(t, page.Next)
	require.NotNil(t, page.Previous)
	next, _ := url.Parse(*page.Next)
	prev, _ := url.Parse(*page.Previous)
	assert.Equal(t, "/api/tweet/1/comments/", next.Path)
	assert.Equal(t, "3", next.Query().Get("page"))
	assert.Equal(t, "alice", next.Query().Get("user"))
	assert.Equal(t, "1", prev.Query().Get("page"))
	assert.Equal(t, int64(25), page.Count)
}

func TestNewPage_LastAndEmpty(t *testing.T) {
	u, _ := url.Parse("/api/tweet/")

	page, err := NewPage(u, Params{Page: 3, PageSize: 10}, 25, []int{21})
	require.NoError(t, err)
	assert.Nil(t, page.Next)

	empty, err := NewPage[int](u, Params{Page: 1, PageSize: 10}, 0, nil)
	require.NoError(t, err)
	assert.Nil(t, empty.Next)
	assert.Nil(t, empty.Previous)
	assert.NotNil(t, empty.Results)
	assert.Len(t, empty.Results, 0)
}

func TestNewPage_OutOfRange(t *testing.T) {
	u, _ := url.Parse("/api/tweet/")
	_, err := NewPage[int](u, Params{Page: 4, PageSize: 10}, 25, nil)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestNewPage_EmptyBeyondFirstPage(t *testing.T) {
	u, _ := url.Parse("/api/tweet/")
	_, err := NewPage[int](u, Params{Page: 2, PageSize: 10}, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidPage)
}
