package cli

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/alnah/go-lolapi/internal/config"
)

// ---------------------------------------------------------------------------
// syncBuffer - thread-safe bytes.Buffer for concurrent test output
// ---------------------------------------------------------------------------

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Compile-time check that syncBuffer implements io.Writer.
var _ io.Writer = (*syncBuffer)(nil)

// ---------------------------------------------------------------------------
// testMocks - convenience struct for grouping all mocks
// ---------------------------------------------------------------------------

type testMocks struct {
	configLoader *mockConfigLoader
	api          *mockAPI
	factory      *mockClientFactory
	interrupt    *mockInterruptFactory
	clock        *clockwork.FakeClock
	stdout       *syncBuffer
	stderr       *syncBuffer
}

func newTestMocks() *testMocks {
	api := &mockAPI{}
	return &testMocks{
		configLoader: &mockConfigLoader{},
		api:          api,
		factory:      &mockClientFactory{api: api},
		interrupt:    newMockInterruptFactory(),
		clock:        clockwork.NewFakeClockAt(time.Date(2016, 6, 1, 12, 0, 0, 0, time.UTC)),
		stdout:       &syncBuffer{},
		stderr:       &syncBuffer{},
	}
}

// ---------------------------------------------------------------------------
// testEnv - creates a fully mocked Env for testing
// ---------------------------------------------------------------------------

// testEnvOption configures testEnv.
type testEnvOption func(*Env)

// testEnv creates a test Env with all dependencies mocked.
// Returns the Env and the mocks for assertions.
func testEnv(opts ...testEnvOption) (*Env, *testMocks) {
	mocks := newTestMocks()

	env := &Env{
		Stdout:           mocks.stdout,
		Stderr:           mocks.stderr,
		Getenv:           defaultTestEnv,
		Clock:            mocks.clock,
		ConfigLoader:     mocks.configLoader,
		ClientFactory:    mocks.factory,
		InterruptHandler: mocks.interrupt,
	}

	for _, opt := range opts {
		opt(env)
	}

	return env, mocks
}

// withGetenv overrides the environment lookup.
func withGetenv(fn func(string) string) testEnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// staticEnv returns a getenv function that returns values from the given map.
func staticEnv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

// defaultTestEnv returns a general API key only.
func defaultTestEnv(key string) string {
	if key == EnvAPIKey {
		return "test-riot-key"
	}
	return ""
}

// configWith returns a ConfigLoader that returns cfg.
func configWith(cfg config.Config) *mockConfigLoader {
	return &mockConfigLoader{
		LoadFunc: func() (config.Config, error) {
			return cfg, nil
		},
	}
}
