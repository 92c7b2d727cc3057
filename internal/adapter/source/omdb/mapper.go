package omdb

import (
	"strconv"
	"strings"

	"github.com/mmcdole/nextep/internal/domain"
)

// normalizePoster drops the "N/A" placeholder so callers only see real URLs
func normalizePoster(poster string) string {
	poster = strings.TrimSpace(poster)
	if !domain.Available(poster) {
		return ""
	}
	return poster
}

// parseTotal converts OMDb's string count, treating absent or garbage values as zero
func parseTotal(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// MapSearchItem converts an OMDb search entry to a domain item
func MapSearchItem(item SearchItem) domain.SearchResultItem {
	return domain.SearchResultItem{
		ID:        item.ImdbID,
		Title:     item.Title,
		Year:      item.Year,
		Type:      item.Type,
		PosterURL: normalizePoster(item.Poster),
	}
}

// MapSearchResponse converts a search payload to a result page
func MapSearchResponse(resp SearchResponse) *domain.SearchResultPage {
	items := make([]domain.SearchResultItem, 0, len(resp.Search))
	for _, item := range resp.Search {
		items = append(items, MapSearchItem(item))
	}
	return &domain.SearchResultPage{
		Items:      items,
		TotalCount: parseTotal(resp.TotalResults),
	}
}

// MapDetail converts a detail payload to a domain record
func MapDetail(resp DetailResponse) *domain.TitleDetail {
	var ratings []domain.ExternalRating
	for _, r := range resp.Ratings {
		ratings = append(ratings, domain.ExternalRating{Source: r.Source, Value: r.Value})
	}

	return &domain.TitleDetail{
		SearchResultItem: MapSearchItem(resp.SearchItem),
		Rated:            resp.Rated,
		Released:         resp.Released,
		Runtime:          resp.Runtime,
		Genre:            resp.Genre,
		Director:         resp.Director,
		Writer:           resp.Writer,
		Actors:           resp.Actors,
		Plot:             resp.Plot,
		Language:         resp.Language,
		Country:          resp.Country,
		Awards:           resp.Awards,
		Ratings:          ratings,
		Metascore:        resp.Metascore,
		IMDbRating:       resp.ImdbRating,
		IMDbVotes:        resp.ImdbVotes,
		TotalSeasons:     resp.TotalSeasons,
	}
}
