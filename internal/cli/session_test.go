package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-lolapi/apierr"
	"github.com/alnah/go-lolapi/internal/config"
	"github.com/alnah/go-lolapi/internal/locale"
	"github.com/alnah/go-lolapi/region"
)

// ---------------------------------------------------------------------------
// Tests for resolveKeys
// ---------------------------------------------------------------------------

func writeKeyFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write key file: %v", err)
	}
	return p
}

func TestResolveKeys(t *testing.T) {
	t.Parallel()

	jsonFile := writeKeyFile(t, "key.json", `{"value": "file-key", "tournaments": true}`)
	yamlFile := writeKeyFile(t, "key.yaml", "value: yaml-key\n")

	tests := []struct {
		name           string
		env            map[string]string
		cfg            config.Config
		wantStandard   string
		wantTournament string
	}{
		{
			name:         "env only",
			env:          map[string]string{EnvAPIKey: " env-key "},
			wantStandard: "env-key",
		},
		{
			name:         "env wins over key file",
			env:          map[string]string{EnvAPIKey: "env-key"},
			cfg:          config.Config{KeyFile: jsonFile},
			wantStandard: "env-key",
		},
		{
			name:           "tournament key from env",
			env:            map[string]string{EnvAPIKey: "env-key", EnvTournamentKey: "tourney"},
			wantStandard:   "env-key",
			wantTournament: "tourney",
		},
		{
			name:           "key file flagged for tournaments serves both",
			cfg:            config.Config{KeyFile: jsonFile},
			wantStandard:   "file-key",
			wantTournament: "file-key",
		},
		{
			name:         "yaml key file",
			cfg:          config.Config{KeyFile: yamlFile},
			wantStandard: "yaml-key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			keys, err := ResolveKeys(staticEnv(tt.env), tt.cfg)
			if err != nil {
				t.Fatalf("ResolveKeys() unexpected error: %v", err)
			}
			if got := keys.Standard().Value(); got != tt.wantStandard {
				t.Errorf("standard key = %q, want %q", got, tt.wantStandard)
			}
			tc, ok := keys.Tournament()
			if tt.wantTournament == "" {
				if ok {
					t.Errorf("tournament key should be absent, got %v", tc)
				}
				return
			}
			if !ok || tc.Value() != tt.wantTournament {
				t.Errorf("tournament key = %q (present %v), want %q", tc.Value(), ok, tt.wantTournament)
			}
		})
	}
}

func TestResolveKeys_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ResolveKeys(staticEnv(nil), config.Config{}); !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("no key: error = %v, want ErrAPIKeyMissing", err)
	}

	missing := filepath.Join(t.TempDir(), "absent.json")
	if _, err := ResolveKeys(staticEnv(nil), config.Config{KeyFile: missing}); err == nil {
		t.Error("missing key file: expected error")
	}
}

// ---------------------------------------------------------------------------
// Tests for newSession
// ---------------------------------------------------------------------------

func TestNewSession_RegionPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flag string
		cfg  string
		want region.Region
	}{
		{"default", "", "", region.NA},
		{"config", "", "euw", region.EUW},
		{"flag wins", "KR", "euw", region.KR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _ := testEnv()
			env.ConfigLoader = configWith(config.Config{Region: tt.cfg})

			s, err := newSession(env, &Globals{Region: tt.flag})
			if err != nil {
				t.Fatalf("newSession() unexpected error: %v", err)
			}
			if s.region != tt.want {
				t.Errorf("region = %v, want %v", s.region, tt.want)
			}
		})
	}
}

func TestNewSession_InvalidLocale(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()

	_, err := newSession(env, &Globals{Locale: "xx_YY"})
	if !errors.Is(err, locale.ErrInvalid) {
		t.Errorf("newSession() error = %v, want locale.ErrInvalid", err)
	}
	if mocks.factory.Calls() != 0 {
		t.Error("client should not be created")
	}
}

func TestNewSession_ConfigLoadFailureWarns(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	env.ConfigLoader = &mockConfigLoader{
		LoadFunc: func() (config.Config, error) {
			return config.Config{}, config.ErrInvalidSyntax
		},
	}

	if _, err := newSession(env, &Globals{}); err != nil {
		t.Fatalf("newSession() unexpected error: %v", err)
	}
	if !strings.Contains(mocks.stderr.String(), "Warning: failed to load config") {
		t.Errorf("stderr = %q, want config warning", mocks.stderr.String())
	}
}

func TestNewSession_VerboseWrapsTransport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		verbose     bool
		wantPlain   bool
		wantDebugOn bool
	}{
		{name: "quiet", verbose: false, wantPlain: true},
		{name: "verbose", verbose: true, wantPlain: false, wantDebugOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, mocks := testEnv()
			if _, err := newSession(env, &Globals{Verbose: tt.verbose}); err != nil {
				t.Fatalf("newSession() unexpected error: %v", err)
			}

			_, plain := mocks.factory.LastDoer().(*http.Client)
			if plain != tt.wantPlain {
				t.Errorf("transport is *http.Client = %v, want %v", plain, tt.wantPlain)
			}
			debug := strings.Contains(mocks.stderr.String(), "session ready")
			if debug != tt.wantDebugOn {
				t.Errorf("debug log present = %v, want %v (stderr %q)", debug, tt.wantDebugOn, mocks.stderr.String())
			}
			if strings.Contains(mocks.stderr.String(), "test-riot-key") {
				t.Error("stderr must not contain the API key")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Tests for call
// ---------------------------------------------------------------------------

func TestCall_NoRetriesByDefault(t *testing.T) {
	t.Parallel()

	env, _ := testEnv()
	s := &session{env: env}

	attempts := 0
	_, err := call(context.Background(), s, "versions", func(context.Context) (int, error) {
		attempts++
		return 0, &apierr.APIError{StatusCode: 503}
	})
	if !errors.Is(err, apierr.ErrUnavailable) {
		t.Errorf("call() error = %v, want ErrUnavailable", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestCall_RetriesAfterServerAdvice(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	s := &session{
		env: env,
		retry: apierr.RetryConfig{
			MaxRetries: 1,
			BaseDelay:  time.Second,
			MaxDelay:   time.Second,
			Clock:      mocks.clock,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	attempts := 0
	type outcome struct {
		v   int
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := call(ctx, s, "versions", func(context.Context) (int, error) {
			attempts++
			if attempts == 1 {
				return 0, &apierr.RateLimitError{
					APIError:   apierr.APIError{StatusCode: 429},
					RetryAfter: 5 * time.Second,
					LimitType:  apierr.LimitUser,
				}
			}
			return 7, nil
		})
		done <- outcome{v, err}
	}()

	if err := mocks.clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("retry never waited: %v", err)
	}
	mocks.clock.Advance(5 * time.Second)

	got := <-done
	if got.err != nil || got.v != 7 {
		t.Fatalf("call() = %d, %v; want 7, nil", got.v, got.err)
	}
	if !strings.Contains(mocks.stderr.String(), "retrying in 5s") {
		t.Errorf("stderr = %q, want retry notice", mocks.stderr.String())
	}
}
