package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-lolapi/apierr"
)

// Response headers read on rate-limited calls.
const (
	headerRetryAfter    = "Retry-After"
	headerRateLimitType = "X-Rate-Limit-Type"
)

// statusOK is the success code inside the status envelope.
const statusOK = 200

// envelope is the error wrapper the API may return in place of a payload.
type envelope struct {
	Status *struct {
		StatusCode int    `json:"status_code"`
		Message    string `json:"message"`
	} `json:"status"`
}

func (e envelope) isError() bool {
	return e.Status != nil && e.Status.StatusCode != 0 && e.Status.StatusCode != statusOK
}

// Normalize turns a raw response into a decoded value or an error.
//
// A status envelope with a non-200 code becomes *apierr.APIError, or
// *apierr.RateLimitError for 429. Without an envelope, a non-2xx HTTP status
// is reported the same way. Anything else is decoded into out with no further
// validation: a payload of the wrong shape decodes into zero fields rather
// than failing. An empty 2xx body leaves out untouched.
func Normalize(resp *Response, out any) error {
	body := bytes.TrimSpace(resp.Body)
	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	if len(body) == 0 {
		if success {
			return nil
		}
		return newError(resp.StatusCode, http.StatusText(resp.StatusCode), resp.Header)
	}

	if !json.Valid(body) {
		if !success {
			return newError(resp.StatusCode, http.StatusText(resp.StatusCode), resp.Header)
		}
		return fmt.Errorf("%w: %s", apierr.ErrParse, snippet(body))
	}

	// Only objects can carry an envelope; arrays and scalars are payloads. A
	// status object without a code is payload too: by-name lookups key their
	// results by summoner name, and "status" is a valid name.
	if body[0] == '{' {
		var env envelope
		if err := json.Unmarshal(body, &env); err == nil && env.isError() {
			return newError(env.Status.StatusCode, env.Status.Message, resp.Header)
		}
	}

	if !success {
		return newError(resp.StatusCode, http.StatusText(resp.StatusCode), resp.Header)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", apierr.ErrParse, err)
	}
	return nil
}

// newError builds the error for a failed status code.
func newError(code int, message string, header http.Header) error {
	apiErr := apierr.APIError{StatusCode: code, Message: message}
	if code != http.StatusTooManyRequests {
		return &apiErr
	}
	return &apierr.RateLimitError{
		APIError:   apiErr,
		RetryAfter: retryAfterFromHeader(header),
		LimitType:  apierr.LimitType(strings.ToLower(strings.TrimSpace(header.Get(headerRateLimitType)))),
	}
}

// retryAfterFromHeader reads Retry-After as seconds or as an HTTP date.
func retryAfterFromHeader(h http.Header) time.Duration {
	v := strings.TrimSpace(h.Get(headerRetryAfter))
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// snippet returns a short prefix of body for error messages.
func snippet(body []byte) string {
	const limit = 120
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
