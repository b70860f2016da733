package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alnah/go-lolapi/apierr"
)

// Doer sends HTTP requests. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time interface compliance check.
var _ Doer = (*http.Client)(nil)

// Response is the raw outcome of a completed call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Call performs a single HTTP request and reads the whole response. It does
// not interpret the body and does not retry. Failures to obtain a response
// wrap apierr.ErrTransport; the API key never appears in the message.
func Call(ctx context.Context, doer Doer, method, rawURL string, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", apierr.ErrTransport, redactError(err))
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))
	req.Header.Set("Accept", "application/json")

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apierr.ErrTransport, redactError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", apierr.ErrTransport, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// redactError strips the API key from *url.Error, which net/http uses to
// report failures and which embeds the full request URL.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: RedactURL(urlErr.URL), Err: urlErr.Err}
	}
	return err
}
