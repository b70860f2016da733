package cli

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/alnah/go-lolapi/apikey"
	"github.com/alnah/go-lolapi/internal/config"
	"github.com/alnah/go-lolapi/internal/interrupt"
	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func() (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load() (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock API
// ---------------------------------------------------------------------------

type mockAPI struct {
	SummonersByNameFunc         func(ctx context.Context, r region.Region, names ...string) (map[string]lol.Summoner, error)
	LeagueEntriesBySummonerFunc func(ctx context.Context, r region.Region, ids ...int64) (map[string][]lol.League, error)
	MatchListFunc               func(ctx context.Context, r region.Region, id int64, opts lol.MatchListOptions) (lol.MatchList, error)
	MatchFunc                   func(ctx context.Context, r region.Region, id int64, timeline bool) (lol.MatchDetail, error)
	ShardFunc                   func(ctx context.Context, r region.Region) (lol.ShardStatus, error)
	ChampionsFunc               func(ctx context.Context, r region.Region, free bool) (lol.ChampionList, error)
	StaticChampionsFunc         func(ctx context.Context, r region.Region, opts lol.StaticDataOptions) (lol.StaticChampionList, error)
	VersionsFunc                func(ctx context.Context, r region.Region) ([]string, error)
	TournamentCodeFunc          func(ctx context.Context, code string) (lol.TournamentCode, error)
	LobbyEventsFunc             func(ctx context.Context, code string) (lol.LobbyEventWrapper, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockAPI) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the method names called, in order.
func (m *mockAPI) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount counts calls to one method.
func (m *mockAPI) CallCount(name string) int {
	n := 0
	for _, c := range m.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (m *mockAPI) SummonersByName(ctx context.Context, r region.Region, names ...string) (map[string]lol.Summoner, error) {
	m.record("SummonersByName")
	if m.SummonersByNameFunc != nil {
		return m.SummonersByNameFunc(ctx, r, names...)
	}
	return map[string]lol.Summoner{}, nil
}

func (m *mockAPI) LeagueEntriesBySummoner(ctx context.Context, r region.Region, ids ...int64) (map[string][]lol.League, error) {
	m.record("LeagueEntriesBySummoner")
	if m.LeagueEntriesBySummonerFunc != nil {
		return m.LeagueEntriesBySummonerFunc(ctx, r, ids...)
	}
	return map[string][]lol.League{}, nil
}

func (m *mockAPI) MatchList(ctx context.Context, r region.Region, id int64, opts lol.MatchListOptions) (lol.MatchList, error) {
	m.record("MatchList")
	if m.MatchListFunc != nil {
		return m.MatchListFunc(ctx, r, id, opts)
	}
	return lol.MatchList{}, nil
}

func (m *mockAPI) Match(ctx context.Context, r region.Region, id int64, timeline bool) (lol.MatchDetail, error) {
	m.record("Match")
	if m.MatchFunc != nil {
		return m.MatchFunc(ctx, r, id, timeline)
	}
	return lol.MatchDetail{MatchID: id}, nil
}

func (m *mockAPI) Shard(ctx context.Context, r region.Region) (lol.ShardStatus, error) {
	m.record("Shard")
	if m.ShardFunc != nil {
		return m.ShardFunc(ctx, r)
	}
	return lol.ShardStatus{Slug: r.String()}, nil
}

func (m *mockAPI) Champions(ctx context.Context, r region.Region, free bool) (lol.ChampionList, error) {
	m.record("Champions")
	if m.ChampionsFunc != nil {
		return m.ChampionsFunc(ctx, r, free)
	}
	return lol.ChampionList{}, nil
}

func (m *mockAPI) StaticChampions(ctx context.Context, r region.Region, opts lol.StaticDataOptions) (lol.StaticChampionList, error) {
	m.record("StaticChampions")
	if m.StaticChampionsFunc != nil {
		return m.StaticChampionsFunc(ctx, r, opts)
	}
	return lol.StaticChampionList{}, nil
}

func (m *mockAPI) Versions(ctx context.Context, r region.Region) ([]string, error) {
	m.record("Versions")
	if m.VersionsFunc != nil {
		return m.VersionsFunc(ctx, r)
	}
	return nil, nil
}

func (m *mockAPI) TournamentCode(ctx context.Context, code string) (lol.TournamentCode, error) {
	m.record("TournamentCode")
	if m.TournamentCodeFunc != nil {
		return m.TournamentCodeFunc(ctx, code)
	}
	return lol.TournamentCode{Code: code}, nil
}

func (m *mockAPI) LobbyEvents(ctx context.Context, code string) (lol.LobbyEventWrapper, error) {
	m.record("LobbyEvents")
	if m.LobbyEventsFunc != nil {
		return m.LobbyEventsFunc(ctx, code)
	}
	return lol.LobbyEventWrapper{}, nil
}

// ---------------------------------------------------------------------------
// Mock ClientFactory
// ---------------------------------------------------------------------------

type mockClientFactory struct {
	NewClientFunc func(keys apikey.Keys, doer lol.Doer) (API, error)
	api           *mockAPI

	mu    sync.Mutex
	keys  []apikey.Keys
	doers []lol.Doer
}

func (m *mockClientFactory) NewClient(keys apikey.Keys, doer lol.Doer) (API, error) {
	m.mu.Lock()
	m.keys = append(m.keys, keys)
	m.doers = append(m.doers, doer)
	m.mu.Unlock()

	if m.NewClientFunc != nil {
		return m.NewClientFunc(keys, doer)
	}
	return m.api, nil
}

func (m *mockClientFactory) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}

// LastKeys returns the keys of the last client created.
func (m *mockClientFactory) LastKeys() apikey.Keys {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.keys) == 0 {
		return apikey.Keys{}
	}
	return m.keys[len(m.keys)-1]
}

// LastDoer returns the transport of the last client created.
func (m *mockClientFactory) LastDoer() lol.Doer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.doers) == 0 {
		return nil
	}
	return m.doers[len(m.doers)-1]
}

// ---------------------------------------------------------------------------
// Mock InterruptFactory
// ---------------------------------------------------------------------------

// mockInterruptFactory builds real handlers fed by a signal channel the test
// controls. Exit is a no-op so a double interrupt never ends the test binary.
type mockInterruptFactory struct {
	sigCh chan os.Signal
}

func newMockInterruptFactory() *mockInterruptFactory {
	return &mockInterruptFactory{sigCh: make(chan os.Signal, 2)}
}

func (m *mockInterruptFactory) NewHandler(ctx context.Context) (*interrupt.Handler, context.Context) {
	return interrupt.NewHandlerWithOptions(ctx, interrupt.Options{
		SigCh:  m.sigCh,
		Exit:   func(int) {},
		Clock:  clockwork.NewFakeClock(),
		Stderr: io.Discard,
	})
}

// Interrupt simulates Ctrl+C.
func (m *mockInterruptFactory) Interrupt() {
	m.sigCh <- os.Interrupt
}

// Compile-time interface verification.
var (
	_ ConfigLoader     = (*mockConfigLoader)(nil)
	_ API              = (*mockAPI)(nil)
	_ ClientFactory    = (*mockClientFactory)(nil)
	_ InterruptFactory = (*mockInterruptFactory)(nil)
)
