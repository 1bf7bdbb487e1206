package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookshelf/internal/domain/catalog"

	"golang.org/x/exp/slog"
)

const (
	DefaultBaseURL = "https://openlibrary.org"
	DefaultTimeout = 10 * time.Second
)

// Client - клиент поиска Open Library
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

type searchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []doc `json:"docs"`
}

type doc struct {
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name"`
	CoverI     *int     `json:"cover_i"`
}

// NewClient creates a new Open Library client
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With("component", "openlibrary_client"),
	}
}

// Search возвращает не больше catalog.MaxResults результатов
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Result, error) {
	searchURL := fmt.Sprintf("%s/search.json?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search open library: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("open library returned status %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode open library response: %w", err)
	}

	c.log.Debug("search completed",
		slog.String("query", query),
		slog.Int("found", sr.NumFound),
		slog.Duration("duration", time.Since(start)),
	)

	return normalize(sr.Docs), nil
}

func normalize(docs []doc) []catalog.Result {
	if len(docs) > catalog.MaxResults {
		docs = docs[:catalog.MaxResults]
	}

	results := make([]catalog.Result, 0, len(docs))
	for _, d := range docs {
		author := catalog.UnknownAuthor
		if len(d.AuthorName) > 0 {
			author = d.AuthorName[0]
		}

		var coverID *int
		// cover_i = 0 считается отсутствующей обложкой
		if d.CoverI != nil && *d.CoverI != 0 {
			id := *d.CoverI
			coverID = &id
		}

		results = append(results, catalog.Result{
			Title:   d.Title,
			Author:  author,
			CoverID: coverID,
		})
	}

	return results
}
