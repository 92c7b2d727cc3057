package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "trims whitespace", input: "  Batman  ", want: "Batman"},
		{name: "empty", input: "", wantErr: ErrEmptyQuery},
		{name: "whitespace only", input: " \t\n ", wantErr: ErrEmptyQuery},
		{name: "exactly fifty", input: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "fifty one", input: strings.Repeat("a", 51), wantErr: ErrQueryTooLong},
		{name: "length measured after trim", input: "  " + strings.Repeat("b", 50) + "  ", want: strings.Repeat("b", 50)},
		{name: "multibyte counted as characters", input: strings.Repeat("é", 50), want: strings.Repeat("é", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTitle(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSearchQuery(t *testing.T) {
	q, err := NewSearchQuery(" Alien ", 0, TypeFilter("game"), " 19799 ")
	require.NoError(t, err)
	assert.Equal(t, SearchQuery{Text: "Alien", Page: 1, Type: TypeAny, Year: "1979"}, q)

	_, err = NewSearchQuery("   ", 1, TypeMovie, "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestTruncateYear(t *testing.T) {
	assert.Equal(t, "", TruncateYear(""))
	assert.Equal(t, "19", TruncateYear("19"))
	assert.Equal(t, "2024", TruncateYear("2024"))
	assert.Equal(t, "2024", TruncateYear("20241"))
}

func TestSearchResultPage_TotalPages(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{100, 10},
		{101, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SearchResultPage{TotalCount: tt.total}.TotalPages(), "total=%d", tt.total)
	}
}

func TestAvailable(t *testing.T) {
	assert.False(t, Available(""))
	assert.False(t, Available("N/A"))
	assert.False(t, Available("  "))
	assert.True(t, Available("Christopher Nolan"))

	assert.Equal(t, "No data", OrFallback("N/A", "No data"))
	assert.Equal(t, "148 min", OrFallback("148 min", "No data"))
}

func TestTypeFilter_Cycle(t *testing.T) {
	assert.Equal(t, TypeMovie, TypeAny.Next())
	assert.Equal(t, TypeAny, TypeEpisode.Next())
	assert.Equal(t, TypeEpisode, TypeAny.Prev())
	assert.Equal(t, TypeAny, TypeFilter("bogus").Next())

	assert.True(t, TypeSeries.Valid())
	assert.False(t, TypeFilter("game").Valid())
	assert.Equal(t, "All", TypeAny.Label())
}

func TestParsePlotVerbosity(t *testing.T) {
	assert.Equal(t, PlotShort, ParsePlotVerbosity("Short"))
	assert.Equal(t, PlotFull, ParsePlotVerbosity("full"))
	assert.Equal(t, PlotFull, ParsePlotVerbosity(""))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "configuration error: omdb.api_key is not set", (&ConfigurationError{Setting: "omdb.api_key"}).Error())
	assert.Equal(t, "transport error: unexpected status code 503", (&TransportError{StatusCode: 503}).Error())

	cause := errors.New("connection refused")
	terr := &TransportError{Err: cause}
	assert.ErrorIs(t, terr, cause)
	assert.Equal(t, "Movie not found!", (&UpstreamError{Message: "Movie not found!"}).Error())
}
