package lol_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-lolapi/apikey"
	"github.com/alnah/go-lolapi/lol"
)

// ---------------------------------------------------------------------------
// Helpers - recording HTTP doer
// ---------------------------------------------------------------------------

const (
	generalKey    = "general-key"
	tournamentKey = "tourney-key"
)

// recordedRequest is what the client sent.
type recordedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   string
}

// mockDoer answers every request with a canned response and records it.
// Safe for concurrent use.
type mockDoer struct {
	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
	header http.Header
}

func newMockDoer(status int, body string) *mockDoer {
	return &mockDoer{status: status, body: body, header: make(http.Header)}
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(data)
	}

	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Body:   body,
	})
	m.mu.Unlock()

	return &http.Response{
		StatusCode: m.status,
		Header:     m.header.Clone(),
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Request:    req,
	}, nil
}

func (m *mockDoer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockDoer) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		t.Fatal("no request was sent")
	}
	return m.requests[len(m.requests)-1]
}

// fullKeys has both credentials configured.
func fullKeys() apikey.Keys {
	return apikey.New(generalKey).WithTournament(apikey.NewCredential(tournamentKey, true))
}

func mustNewClient(t *testing.T, keys apikey.Keys, doer lol.Doer) *lol.Client {
	t.Helper()
	c, err := lol.New(keys, lol.WithHTTPClient(doer))
	if err != nil {
		t.Fatalf("lol.New() unexpected error: %v", err)
	}
	return c
}
