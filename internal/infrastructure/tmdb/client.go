package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/reelstream/reelstream/internal/domain/entity"
)

const searchLimit = 30

// Client wraps The Movie Database (TMDB) v3 API. Every call is bounded by the
// client timeout; a non-2xx response is an error for that fetch, with no
// automatic retry.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	client   *http.Client
}

func NewClient(apiKey, baseURL, language string) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type listResponse struct {
	Results []entity.Movie `json:"results"`
}

type externalIDsResponse struct {
	ImdbID *string `json:"imdb_id"`
}

// Category fetches a logical category feed. "trending" maps to the weekly
// trending feed; anything else is a same-named movie sub-resource
// (top_rated, upcoming, ...). The provider's order is passed through.
func (c *Client) Category(ctx context.Context, name string) ([]entity.Movie, error) {
	endpoint := "/movie/" + url.PathEscape(name)
	if name == "trending" {
		endpoint = "/trending/movie/week"
	}

	var out listResponse
	if err := c.get(ctx, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Search issues a free-text lookup and keeps only titles that
// case-insensitively start with the query, capped at 30 items in the
// provider's relevance order. An empty or whitespace query short-circuits
// to an empty list without a network call.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var out listResponse
	q := url.Values{"query": {query}}
	if err := c.get(ctx, "/search/movie", q, &out); err != nil {
		return nil, err
	}

	prefix := strings.ToLower(query)
	filtered := make([]entity.Movie, 0, searchLimit)
	for _, m := range out.Results {
		title := m.Title
		if title == "" {
			title = m.Name
		}
		if !strings.HasPrefix(strings.ToLower(title), prefix) {
			continue
		}
		filtered = append(filtered, m)
		if len(filtered) == searchLimit {
			break
		}
	}
	return filtered, nil
}

// ExternalIDs resolves the IMDb cross-reference for one movie. An empty
// string means the provider has no mapping.
func (c *Client) ExternalIDs(ctx context.Context, movieID int64) (string, error) {
	var out externalIDsResponse
	endpoint := "/movie/" + strconv.FormatInt(movieID, 10) + "/external_ids"
	if err := c.get(ctx, endpoint, nil, &out); err != nil {
		return "", err
	}
	if out.ImdbID == nil {
		return "", nil
	}
	return *out.ImdbID, nil
}

func (c *Client) get(ctx context.Context, endpoint string, extra url.Values, dest interface{}) error {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tmdb: %s returned %s", endpoint, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
