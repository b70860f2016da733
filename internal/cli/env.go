package cli

import (
	"context"
	"io"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/alnah/go-lolapi/apikey"
	"github.com/alnah/go-lolapi/internal/config"
	"github.com/alnah/go-lolapi/internal/interrupt"
	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
type Env struct {
	// I/O and environment
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Clock  clockwork.Clock

	// Factories for domain objects
	ConfigLoader     ConfigLoader
	ClientFactory    ClientFactory
	InterruptHandler InterruptFactory
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// API is the part of *lol.Client the commands call.
type API interface {
	SummonersByName(ctx context.Context, r region.Region, names ...string) (map[string]lol.Summoner, error)
	LeagueEntriesBySummoner(ctx context.Context, r region.Region, summonerIDs ...int64) (map[string][]lol.League, error)
	MatchList(ctx context.Context, r region.Region, summonerID int64, opts lol.MatchListOptions) (lol.MatchList, error)
	Match(ctx context.Context, r region.Region, matchID int64, includeTimeline bool) (lol.MatchDetail, error)
	Shard(ctx context.Context, r region.Region) (lol.ShardStatus, error)
	Champions(ctx context.Context, r region.Region, freeToPlay bool) (lol.ChampionList, error)
	StaticChampions(ctx context.Context, r region.Region, opts lol.StaticDataOptions) (lol.StaticChampionList, error)
	Versions(ctx context.Context, r region.Region) ([]string, error)
	TournamentCode(ctx context.Context, code string) (lol.TournamentCode, error)
	LobbyEvents(ctx context.Context, code string) (lol.LobbyEventWrapper, error)
}

// ClientFactory creates API clients.
type ClientFactory interface {
	NewClient(keys apikey.Keys, doer lol.Doer) (API, error)
}

// InterruptFactory installs a Ctrl+C handler for long-running commands.
type InterruptFactory interface {
	NewHandler(ctx context.Context) (*interrupt.Handler, context.Context)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithClock sets the clock used for retry waits.
func WithClock(c clockwork.Clock) EnvOption {
	return func(e *Env) {
		e.Clock = c
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithClientFactory sets the API client factory.
func WithClientFactory(f ClientFactory) EnvOption {
	return func(e *Env) {
		e.ClientFactory = f
	}
}

// WithInterruptFactory sets the interrupt handler factory.
func WithInterruptFactory(f InterruptFactory) EnvOption {
	return func(e *Env) {
		e.InterruptHandler = f
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Getenv:           os.Getenv,
		Clock:            clockwork.NewRealClock(),
		ConfigLoader:     &defaultConfigLoader{},
		ClientFactory:    &defaultClientFactory{},
		InterruptHandler: &defaultInterruptFactory{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// defaultClientFactory implements ClientFactory with the lol package.
type defaultClientFactory struct{}

func (defaultClientFactory) NewClient(keys apikey.Keys, doer lol.Doer) (API, error) {
	c, err := lol.New(keys, lol.WithHTTPClient(doer))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// defaultInterruptFactory listens for real SIGINT/SIGTERM.
type defaultInterruptFactory struct{}

func (defaultInterruptFactory) NewHandler(ctx context.Context) (*interrupt.Handler, context.Context) {
	return interrupt.NewHandler(ctx)
}

// Compile-time interface verification.
var (
	_ ConfigLoader     = (*defaultConfigLoader)(nil)
	_ ClientFactory    = (*defaultClientFactory)(nil)
	_ InterruptFactory = (*defaultInterruptFactory)(nil)
	_ API              = (*lol.Client)(nil)
)
