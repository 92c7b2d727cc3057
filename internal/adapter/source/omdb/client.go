package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/nextep/internal/domain"
)

const (
	userAgent = "Nextep/1.0"

	// apiKeySetting names the config key reported in ConfigurationError
	apiKeySetting = "omdb.api_key"

	// defaultUpstreamError is used when OMDb fails without an Error field
	defaultUpstreamError = "the title database reported an error"
)

var _ domain.TitleRepository = (*Client)(nil)

// Client implements domain.TitleRepository against the OMDb API.
// Every call is a single round trip: no retries, no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new OMDb API client.
// A zero timeout leaves the HTTP client without a deadline; callers may still cancel via context.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BuildURL returns base with apikey and params encoded as the query string.
// It has no side effects and caches nothing.
func BuildURL(base, apiKey string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}

	query := url.Values{}
	query.Set("apikey", apiKey)
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// SearchParams returns the query parameters for a search request
func SearchParams(q domain.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("s", q.Text)
	params.Set("page", strconv.Itoa(q.Page))
	if q.Type != domain.TypeAny {
		params.Set("type", string(q.Type))
	}
	if q.Year != "" {
		params.Set("y", q.Year)
	}
	return params
}

// DetailParams returns the query parameters for a detail request
func DetailParams(id string, plot domain.PlotVerbosity) url.Values {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", string(plot))
	return params
}

// envelope is a decoded OMDb reply: exactly one of payload or failure is meaningful
type envelope[T any] struct {
	payload T
	failure string
	failed  bool
}

// decodeEnvelope parses body once into the success/failure variant.
// Nothing past this point looks at the raw Response flag.
func decodeEnvelope[T any](body []byte) (envelope[T], error) {
	var head envelopeHeader
	if err := json.Unmarshal(body, &head); err != nil {
		return envelope[T]{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if head.Response == responseFalse {
		msg := strings.TrimSpace(head.Error)
		if msg == "" {
			msg = defaultUpstreamError
		}
		return envelope[T]{failure: msg, failed: true}, nil
	}

	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return envelope[T]{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return envelope[T]{payload: payload}, nil
}

// doRequest performs a GET with the API key and returns the body of a 200 reply
func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &domain.ConfigurationError{Setting: apiKeySetting}
	}

	reqURL, err := BuildURL(c.baseURL, c.apiKey, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		redacted, _ := BuildURL(c.baseURL, "REDACTED", params)
		c.logger.Debug("omdb request", "url", redacted)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", "error", err)
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("omdb request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, &domain.TransportError{StatusCode: resp.StatusCode}
	}

	return body, nil
}

// Search returns one page of titles matching q
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResultPage, error) {
	body, err := c.doRequest(ctx, SearchParams(q))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[SearchResponse](body)
	if err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, err
	}
	if env.failed {
		c.logger.Debug("omdb search failed upstream", "query", q.Text, "error", env.failure)
		return nil, &domain.UpstreamError{Message: env.failure}
	}

	return MapSearchResponse(env.payload), nil
}

// GetDetail returns the full record for one title
func (c *Client) GetDetail(ctx context.Context, id string, plot domain.PlotVerbosity) (*domain.TitleDetail, error) {
	body, err := c.doRequest(ctx, DetailParams(id, plot))
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[DetailResponse](body)
	if err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, err
	}
	if env.failed {
		c.logger.Debug("omdb detail failed upstream", "id", id, "error", env.failure)
		return nil, &domain.UpstreamError{Message: env.failure}
	}

	return MapDetail(env.payload), nil
}
