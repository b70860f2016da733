package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/alnah/go-lolapi/apikey"
)

// Hosts and scopes.
const (
	// Global is the scope for endpoints that are not tied to a region host.
	Global = "global"

	apiHostSuffix = ".api.pvp.net"
	statusHost    = "status.leagueoflegends.com"

	// KeyParam is the query parameter carrying the API key.
	KeyParam = "api_key"

	redacted = "REDACTED"
)

// Endpoint describes one API call. It is built fresh per call and discarded.
type Endpoint struct {
	// Method defaults to GET.
	Method string
	// Scope is a region code, a platform-mapped region code, or Global.
	Scope string
	// Path has identifiers already interpolated and escaped.
	Path   string
	Params Params
	// Body is marshaled as JSON when non-nil.
	Body any
	// Tournament selects the tournament credential.
	Tournament bool
	// Status routes the call to the status host over plain HTTP.
	Status bool
}

// HTTPMethod returns the endpoint's method, defaulting to GET.
func (e Endpoint) HTTPMethod() string {
	if e.Method == "" {
		return http.MethodGet
	}
	return e.Method
}

// BuildURL composes the request URL for e, authenticating with the
// credential keys selects for it. A tournament endpoint without a tournament
// credential fails with apikey.ErrNoTournamentKey.
func BuildURL(e Endpoint, keys apikey.Keys) (string, error) {
	cred, err := keys.ForCall(e.Tournament)
	if err != nil {
		return "", err
	}

	query := Encode(e.Params)
	query.Set(KeyParam, cred.Value())

	u := url.URL{
		Scheme:   "https",
		Host:     e.Scope + apiHostSuffix,
		Path:     e.Path,
		RawQuery: query.Encode(),
	}
	if e.Status {
		u.Scheme = "http"
		u.Host = statusHost
	}
	// Path segments were escaped by the caller; keep them as given.
	u.RawPath = e.Path
	if unescaped, err := url.PathUnescape(e.Path); err == nil {
		u.Path = unescaped
	}
	return u.String(), nil
}

// RedactURL replaces the API key in a URL with a placeholder. Strings that do
// not parse are returned with any api_key value masked textually.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redactText(raw)
	}
	q := u.Query()
	if !q.Has(KeyParam) {
		return raw
	}
	q.Set(KeyParam, redacted)
	u.RawQuery = q.Encode()
	return u.String()
}

// redactText masks api_key=... in unparsed text.
func redactText(s string) string {
	marker := KeyParam + "="
	idx := strings.Index(s, marker)
	if idx == -1 {
		return s
	}
	start := idx + len(marker)
	end := start
	for end < len(s) && s[end] != '&' && s[end] != ' ' && s[end] != '"' {
		end++
	}
	return s[:start] + redacted + redactText(s[end:])
}
