// Package pokeapi provides a Catalog implementation backed by the PokeAPI
// REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/infrastructure/config"
)

// maxBodyBytes bounds a single response body. The full name listing is the
// largest payload and stays well under this.
const maxBodyBytes = 8 << 20

// NetworkError is returned for transport failures and unexpected responses.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is or wraps a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// Client implements the Catalog interface over HTTP.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// NewClient creates a new PokeAPI client.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	baseURL := cfg.TrimmedBaseURL()
	if baseURL == "" {
		return nil, errors.New("catalog base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parsing catalog base URL: %w", err)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          64,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		http:      &http.Client{Transport: transport},
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
	}, nil
}

// BaseURL returns the catalog root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPage returns at most limit entry references starting at offset.
func (c *Client) ListPage(ctx context.Context, offset, limit int) ([]entities.EntryRef, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return []entities.EntryRef{}, nil
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	endpoint := c.baseURL + "/pokemon?" + q.Encode()

	var page listResponse
	found, err := c.getJSON(ctx, "list", endpoint, &page)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NetworkError{Op: "list", URL: endpoint, StatusCode: http.StatusNotFound}
	}

	refs := make([]entities.EntryRef, 0, len(page.Results))
	for _, r := range page.Results {
		if len(refs) == limit {
			break
		}
		refs = append(refs, entities.EntryRef{Name: r.Name, URL: r.URL})
	}
	return refs, nil
}

// Resolve fetches the full record an entry reference points to.
func (c *Client) Resolve(ctx context.Context, ref string) (*entities.Creature, error) {
	var p pokemonResponse
	found, err := c.getJSON(ctx, "resolve", ref, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NetworkError{Op: "resolve", URL: ref, StatusCode: http.StatusNotFound}
	}
	creature := p.toCreature()
	return &creature, nil
}

// LookupByName fetches a record by exact name.
// Returns nil, nil if the catalog has no such entry.
func (c *Client) LookupByName(ctx context.Context, name string) (*entities.Creature, error) {
	name = entities.NormalizeName(name)
	if name == "" {
		return nil, nil
	}

	endpoint := c.baseURL + "/pokemon/" + url.PathEscape(name)
	var p pokemonResponse
	found, err := c.getJSON(ctx, "lookup", endpoint, &p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	creature := p.toCreature()
	return &creature, nil
}

// getJSON fetches endpoint and decodes the body into out. A 404 reports
// found=false with no error; other non-2xx statuses are NetworkErrors.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) (bool, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("building %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &NetworkError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, &NetworkError{Op: op, URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return false, &NetworkError{Op: op, URL: endpoint, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return true, nil
}
