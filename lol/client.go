// Package lol is a typed client for the League of Legends REST API.
//
// Every method performs exactly one HTTP request and blocks until it
// completes, returning either a decoded value or an error. Methods are safe
// for concurrent use; run them in goroutines for asynchrony and cancel them
// through the context. The client never retries, caches or throttles. Errors
// are classified in package apierr:
//
//	summoners, err := client.SummonersByName(ctx, region.NA, "rito plls")
//	var rl *apierr.RateLimitError
//	if errors.As(err, &rl) {
//		// wait rl.RetryAfter, then try again
//	}
package lol

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alnah/go-lolapi/apikey"
	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

// Errors returned before any request is sent.
var (
	// ErrMissingKey indicates the client was built without a general API key.
	ErrMissingKey = errors.New("api key required")

	// ErrNoIDs indicates a batch lookup was given an empty list.
	ErrNoIDs = errors.New("at least one id required")

	// ErrTooManyIDs indicates a batch lookup exceeded the endpoint's limit.
	ErrTooManyIDs = errors.New("too many ids")
)

// Batch limits enforced by the API.
const (
	maxSummonerIDs = 40
	maxTeamIDs     = 10
	maxLeagueIDs   = 10
)

// Doer sends HTTP requests. *http.Client implements it, and so does any
// wrapper that adds logging or retries around one.
type Doer = request.Doer

// Client calls the API with a fixed set of credentials.
type Client struct {
	keys apikey.Keys
	doer Doer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. The default is an
// http.Client without a timeout; bound calls through the context instead.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// New creates a Client authenticating with keys.
// Returns ErrMissingKey if keys has no general credential.
func New(keys apikey.Keys, opts ...Option) (*Client, error) {
	if keys.Standard().IsZero() {
		return nil, ErrMissingKey
	}
	c := &Client{
		keys: keys,
		doer: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Keys returns the credentials the client authenticates with.
func (c *Client) Keys() apikey.Keys {
	return c.keys
}

// do runs one endpoint through the request pipeline and decodes the result
// into a T.
func do[T any](ctx context.Context, c *Client, e request.Endpoint) (T, error) {
	var out T
	if err := c.send(ctx, e, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// send runs one endpoint through the request pipeline. out may be nil when
// the response carries no payload.
func (c *Client) send(ctx context.Context, e request.Endpoint, out any) error {
	if e.Scope == "" && !e.Status {
		return region.ErrUnknownRegion
	}

	rawURL, err := request.BuildURL(e, c.keys)
	if err != nil {
		return err
	}

	var body []byte
	if e.Body != nil {
		body, err = json.Marshal(e.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	resp, err := request.Call(ctx, c.doer, e.HTTPMethod(), rawURL, body)
	if err != nil {
		return err
	}
	return request.Normalize(resp, out)
}
