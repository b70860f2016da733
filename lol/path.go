package lol

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/region"
)

// regional describes a GET on the region's own host under /api/lol/{region}/{version}.
func regional(r region.Region, version, rest string, params request.Params) request.Endpoint {
	return request.Endpoint{
		Scope:  r.String(),
		Path:   "/api/lol/" + r.String() + "/" + version + rest,
		Params: params,
	}
}

// idList joins ids into a single path segment, enforcing the batch limit.
func idList(ids []int64, limit int) (string, error) {
	if len(ids) == 0 {
		return "", ErrNoIDs
	}
	if len(ids) > limit {
		return "", fmt.Errorf("%w: got %d, max %d", ErrTooManyIDs, len(ids), limit)
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ","), nil
}

// nameList standardizes and escapes names into a single path segment,
// enforcing the batch limit.
func nameList(names []string, limit int) (string, error) {
	if len(names) == 0 {
		return "", ErrNoIDs
	}
	if len(names) > limit {
		return "", fmt.Errorf("%w: got %d, max %d", ErrTooManyIDs, len(names), limit)
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = url.PathEscape(StandardizeName(n))
	}
	return strings.Join(parts, ","), nil
}

// StandardizeName returns the form the API uses to key summoner names:
// lowercase with spaces removed. SummonersByName keys its result this way.
func StandardizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// segment escapes a free-form identifier for use as one path segment.
func segment(s string) string {
	return url.PathEscape(s)
}

// optString treats the empty string as absent.
func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// optInt treats non-positive values as absent.
func optInt(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}

// optStrings treats an empty slice as absent.
func optStrings(s []string) any {
	if len(s) == 0 {
		return nil
	}
	return s
}

// optMillis encodes t as epoch milliseconds, treating the zero time as absent.
func optMillis(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixMilli()
}
