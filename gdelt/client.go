package gdelt

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	baseURL           = "https://api.gdeltproject.org/api/v2/doc/doc"
	maxRecordsPerCall = 250
	requestTimeout    = 30 * time.Second
)

// baseline clean energy terms applied to every query. GDELT's full text
// search behaves better with a handful of common quoted phrases than with
// long keyword lists.
var cleanEnergyTerms = []string{
	`"renewable energy"`,
	`"solar energy"`,
	`"wind energy"`,
	`"clean energy"`,
	`"climate change"`,
	`"energy transition"`,
}

// Client talks to the GDELT DOC 2.0 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}
}

// NewClientWithBaseURL exists for tests that point the client at a stub.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// FetchOptions narrows a single artlist call.
type FetchOptions struct {
	CountryISO2 string
	SearchQuery string
	MaxRecords  int
	Timespan    string
}

// BuildQuery assembles the GDELT query string: the clean energy phrase
// block, the optional user query (quoted when it contains spaces) and the
// optional sourcecountry filter.
func BuildQuery(countryISO2, searchQuery string) string {
	parts := []string{"(" + strings.Join(cleanEnergyTerms, " OR ") + ")"}

	if userQuery := strings.TrimSpace(searchQuery); userQuery != "" {
		if strings.Contains(userQuery, " ") && !(strings.HasPrefix(userQuery, `"`) && strings.HasSuffix(userQuery, `"`)) {
			userQuery = `"` + userQuery + `"`
		}
		parts = append(parts, userQuery)
	}

	if countryISO2 != "" {
		parts = append(parts, "sourcecountry:"+strings.ToUpper(countryISO2))
	}

	return strings.Join(parts, " ")
}

// Fetch pulls up to opts.MaxRecords articles. The feed is flaky, so every
// failure mode degrades to an empty slice instead of an error: one bad
// upstream call must never abort a whole ingestion run.
func (c *Client) Fetch(ctx context.Context, opts FetchOptions) []Article {
	query := BuildQuery(opts.CountryISO2, opts.SearchQuery)

	params := url.Values{}
	params.Set("query", query)
	params.Set("mode", "artlist")
	params.Set("format", "json")
	params.Set("maxrecords", strconv.Itoa(min(opts.MaxRecords, maxRecordsPerCall)))
	params.Set("timespan", opts.Timespan)
	params.Set("sort", "datedesc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		slog.Warn("could not build gdelt request", "err", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("gdelt request failed", "query", query, "err", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("gdelt returned non-ok status", "status", resp.StatusCode, "query", query)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("could not read gdelt response", "err", err)
		return nil
	}

	articles, err := decodeArticles(body)
	if err != nil {
		slog.Warn("could not decode gdelt response", "err", err)
		return nil
	}
	return articles
}

// decodeArticles handles the response shapes GDELT has been seen emitting:
// a bare array, or an object keyed by articles, results or data.
func decodeArticles(body []byte) ([]Article, error) {
	var direct []Article
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var envelope struct {
		Articles []Article `json:"articles"`
		Results  []Article `json:"results"`
		Data     []Article `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "unexpected gdelt payload")
	}
	if len(envelope.Articles) > 0 {
		return envelope.Articles, nil
	}
	if len(envelope.Results) > 0 {
		return envelope.Results, nil
	}
	return envelope.Data, nil
}
