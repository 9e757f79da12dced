package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/five82/pokedex/internal/logging"
)

// Source is the read surface of the remote catalog. *Client implements it;
// tests substitute fakes.
type Source interface {
	ListPokemon(ctx context.Context, limit, offset int) (*ListResponse, error)
	Pokemon(ctx context.Context, resourceURL string) (*Pokemon, error)
	PokemonByID(ctx context.Context, id int) (*Pokemon, error)
	Types(ctx context.Context) ([]NamedResource, error)
	TypeMembers(ctx context.Context, name string) ([]TypeMember, error)
	Species(ctx context.Context, resourceURL string) (*Species, error)
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to the PokeAPI REST service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

const (
	// DefaultBaseURL is the public PokeAPI v2 root.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pokedex/0.1"
	requestTimeout   = 10 * time.Second

	// maxErrorBodySize bounds how much of an error response is read for logs.
	maxErrorBodySize = 64 * 1024
)

// Options configure a Client. The zero value talks to DefaultBaseURL without
// request pacing.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64 // <= 0 disables pacing
	Burst             int
	HTTPClient        *http.Client
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = requestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		limiter:   rate.NewLimiter(limit, burst),
		userAgent: defaultUserAgent,
	}, nil
}

// ListPokemon fetches one listing page.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*ListResponse, error) {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))
	var payload ListResponse
	if err := c.FetchJSON(ctx, c.endpoint("pokemon", values), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Pokemon fetches a full record from a detail URL taken from a listing.
func (c *Client) Pokemon(ctx context.Context, resourceURL string) (*Pokemon, error) {
	var payload Pokemon
	if err := c.FetchJSON(ctx, resourceURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PokemonByID fetches a full record by identifier.
func (c *Client) PokemonByID(ctx context.Context, id int) (*Pokemon, error) {
	if id <= 0 {
		return nil, fmt.Errorf("pokemon id must be positive, got %d", id)
	}
	return c.Pokemon(ctx, c.endpoint("pokemon/"+strconv.Itoa(id), nil))
}

// Types fetches the category index.
func (c *Client) Types(ctx context.Context) ([]NamedResource, error) {
	var payload ListResponse
	if err := c.FetchJSON(ctx, c.endpoint("type", nil), &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// TypeMembers fetches the membership list of one category.
func (c *Client) TypeMembers(ctx context.Context, name string) ([]TypeMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("type name required")
	}
	var payload TypeDetail
	if err := c.FetchJSON(ctx, c.endpoint("type/"+name, nil), &payload); err != nil {
		return nil, err
	}
	return payload.Pokemon, nil
}

// Species fetches the descriptive resource linked from a record.
func (c *Client) Species(ctx context.Context, resourceURL string) (*Species, error) {
	var payload Species
	if err := c.FetchJSON(ctx, resourceURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchJSON performs one GET and decodes the body into dest. Relative URLs are
// resolved against the base URL. Failures are *NetworkError or *ParseError;
// nothing is retried.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL, err := c.resolve(rawURL)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{URL: reqURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Debug().Err(err).Str("url", reqURL).Msg("pokeapi request failed")
		return &NetworkError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	logging.Debug().
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("pokeapi request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return &NetworkError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: reqURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &ParseError{URL: reqURL, Err: err}
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) resolve(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fmt.Errorf("request url is empty")
	}
	ref, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	return c.endpoint(ref.Path, ref.Query()), nil
}

func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api base url %q has no host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
