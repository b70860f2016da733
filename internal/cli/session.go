package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/alnah/go-lolapi/apierr"
	"github.com/alnah/go-lolapi/apikey"
	"github.com/alnah/go-lolapi/internal/config"
	"github.com/alnah/go-lolapi/internal/format"
	"github.com/alnah/go-lolapi/internal/locale"
	"github.com/alnah/go-lolapi/internal/request"
	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// Environment variables holding API secrets.
const (
	EnvAPIKey        = "RIOT_API_KEY"
	EnvTournamentKey = "RIOT_TOURNAMENT_KEY"
)

// defaultRegion is used when neither --region nor the config names one.
const defaultRegion = "na"

// Retry backoff bounds for --retries.
const (
	retryBaseDelay = time.Second
	retryMaxDelay  = 30 * time.Second
)

// httpTimeout bounds a single HTTP exchange made by the CLI.
const httpTimeout = 30 * time.Second

// Globals holds the flags shared by every API command.
type Globals struct {
	Region  string
	Locale  string
	Verbose bool
	Retries int
}

// Register adds the shared flags to fs.
func (g *Globals) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&g.Region, "region", "r", "", "Region code (br, eune, euw, jp, kr, lan, las, na, oce, tr, ru, pbe)")
	fs.StringVar(&g.Locale, "locale", "", "Static data locale, e.g. en_US")
	fs.BoolVarP(&g.Verbose, "verbose", "v", false, "Log every HTTP request to stderr")
	fs.IntVar(&g.Retries, "retries", 0, "Retry rate-limited and failed calls up to N times")
}

// session is what an API command runs with: a client, a region and the
// retry policy.
type session struct {
	env    *Env
	api    API
	region region.Region
	locale string
	log    zerolog.Logger
	retry  apierr.RetryConfig
}

// newSession resolves configuration, credentials and flags into a session.
// Flags win over the config file, which wins over the defaults.
func newSession(env *Env, g *Globals) (*session, error) {
	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "Warning: failed to load config: %v\n", err)
	}

	code := firstNonEmpty(g.Region, cfg.Region, defaultRegion)
	r, err := region.Parse(code)
	if err != nil {
		return nil, err
	}

	loc := firstNonEmpty(g.Locale, cfg.Locale)
	if err := locale.Validate(loc); err != nil {
		return nil, err
	}
	if loc != "" {
		loc = locale.Normalize(loc)
	}

	keys, err := resolveKeys(env.Getenv, cfg)
	if err != nil {
		return nil, err
	}

	log := newLogger(env.Stderr, g.Verbose)
	var doer lol.Doer = &http.Client{Timeout: httpTimeout}
	if g.Verbose {
		doer = request.LoggingDoer(doer, log, env.Clock)
	}

	api, err := env.ClientFactory.NewClient(keys, doer)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("region", r.String()).Str("key", keys.Standard().String()).Msg("session ready")

	return &session{
		env:    env,
		api:    api,
		region: r,
		locale: loc,
		log:    log,
		retry: apierr.RetryConfig{
			MaxRetries: max(g.Retries, 0),
			BaseDelay:  retryBaseDelay,
			MaxDelay:   retryMaxDelay,
			Clock:      env.Clock,
		},
	}, nil
}

// resolveKeys finds the API credentials. RIOT_API_KEY wins over the
// configured key file; the tournament key comes from RIOT_TOURNAMENT_KEY or,
// failing that, from a key file flagged for tournaments.
func resolveKeys(getenv func(string) string, cfg config.Config) (apikey.Keys, error) {
	var std apikey.Credential
	switch {
	case strings.TrimSpace(getenv(EnvAPIKey)) != "":
		std = apikey.NewCredential(strings.TrimSpace(getenv(EnvAPIKey)), false)
	case cfg.KeyFile != "":
		c, err := apikey.FromFile(cfg.KeyFile)
		if err != nil {
			return apikey.Keys{}, err
		}
		std = c
	default:
		return apikey.Keys{}, ErrAPIKeyMissing
	}

	keys := apikey.NewWithCredential(std)
	if v := strings.TrimSpace(getenv(EnvTournamentKey)); v != "" {
		keys = keys.WithTournament(apikey.NewCredential(v, true))
	} else if std.Tournaments() {
		keys = keys.WithTournament(std)
	}
	return keys, nil
}

// newLogger writes human-readable log lines to w. Debug lines appear only
// when verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// call runs fn under the session's retry policy. Each retry is announced on
// stderr.
func call[T any](ctx context.Context, s *session, what string, fn func(context.Context) (T, error)) (T, error) {
	if s.retry.MaxRetries == 0 {
		return fn(ctx)
	}

	attempt := 0
	return apierr.RetryWithBackoff(ctx, s.retry, func() (T, error) {
		attempt++
		v, err := fn(ctx)
		if err != nil && attempt <= s.retry.MaxRetries && apierr.IsRetryable(err) {
			if wait := apierr.RetryAfter(err); wait > 0 {
				fmt.Fprintf(s.env.Stderr, "  %s: %v, retrying in %s...\n", what, err, format.DurationHuman(wait))
			} else {
				fmt.Fprintf(s.env.Stderr, "  %s: %v, retrying...\n", what, err)
			}
		}
		return v, err
	}, apierr.IsRetryable)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
