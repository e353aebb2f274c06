// Package swapi fetches paginated collections from the public Star Wars
// catalog API.
package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Resource is a collection of the catalog
type Resource string

const (
	People    Resource = "people"
	Films     Resource = "films"
	Planets   Resource = "planets"
	Starships Resource = "starships"
	Species   Resource = "species"
	Vehicles  Resource = "vehicles"
)

// Resources lists every collection in import order
var Resources = []Resource{People, Films, Planets, Starships, Species, Vehicles}

// ParseResource maps a collection name to a Resource
func ParseResource(name string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Resources {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown catalog resource %q", name)
}

// DefaultBaseURL is the public catalog endpoint
const DefaultBaseURL = "https://swapi.dev/api"

// ErrUnexpectedStatus indicates a non-2xx response from the catalog.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Record is one raw catalog entry, field name to untyped value
type Record map[string]any

// Page is one page of a collection. An empty Next marks the last page.
type Page struct {
	Results []Record
	Next    string
}

// FetchError describes a failed page request
type FetchError struct {
	Resource   Resource
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s page %s: status %d: %v", e.Resource, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s page %s: %v", e.Resource, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Config configures a Client
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client performs one GET per page. It does not retry.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient creates a catalog client
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
	}
}

// pageBody mirrors the catalog's collection envelope
type pageBody struct {
	Count   int      `json:"count"`
	Next    *string  `json:"next"`
	Results []Record `json:"results"`
}

// FetchPage fetches one page of resource. An empty cursor starts at the
// first page; otherwise cursor is the Next URL of the previous page and is
// requested verbatim.
func (c *Client) FetchPage(ctx context.Context, resource Resource, cursor string) (*Page, error) {
	url := cursor
	if url == "" {
		url = c.baseURL + "/" + string(resource) + "/"
	}

	fail := func(status int, err error) (*Page, error) {
		return nil, &FetchError{Resource: resource, URL: url, StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fail(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(resp.StatusCode, ErrUnexpectedStatus)
	}

	var body pageBody
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to decode page: %w", err))
	}

	page := &Page{Results: body.Results}
	if page.Results == nil {
		page.Results = []Record{}
	}
	if body.Next != nil {
		page.Next = strings.TrimSpace(*body.Next)
	}
	return page, nil
}
