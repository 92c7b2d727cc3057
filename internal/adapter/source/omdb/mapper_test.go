package omdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePoster(t *testing.T) {
	assert.Equal(t, "", normalizePoster(""))
	assert.Equal(t, "", normalizePoster("N/A"))
	assert.Equal(t, "", normalizePoster(" N/A "))
	assert.Equal(t, "https://m.media-amazon.com/x.jpg", normalizePoster("https://m.media-amazon.com/x.jpg"))
}

func TestParseTotal(t *testing.T) {
	assert.Equal(t, 0, parseTotal(""))
	assert.Equal(t, 0, parseTotal("lots"))
	assert.Equal(t, 0, parseTotal("-4"))
	assert.Equal(t, 493, parseTotal("493"))
}

func TestMapSearchResponse_PreservesOrder(t *testing.T) {
	page := MapSearchResponse(SearchResponse{
		TotalResults: "3",
		Search: []SearchItem{
			{Title: "C", ImdbID: "tt3"},
			{Title: "A", ImdbID: "tt1"},
			{Title: "B", ImdbID: "tt2"},
		},
	})

	assert.Equal(t, 3, page.TotalCount)
	var ids []string
	for _, item := range page.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"tt3", "tt1", "tt2"}, ids)
}

func TestMapSearchResponse_NilSearch(t *testing.T) {
	page := MapSearchResponse(SearchResponse{})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
