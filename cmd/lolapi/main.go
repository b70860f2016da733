package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alnah/go-lolapi/apierr"
	"github.com/alnah/go-lolapi/apikey"
	"github.com/alnah/go-lolapi/internal/cli"
	"github.com/alnah/go-lolapi/internal/interrupt"
	"github.com/alnah/go-lolapi/internal/locale"
	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitSetup      = 3
	ExitValidation = 4
	ExitAPI        = 5
	ExitRateLimit  = 6
	ExitInterrupt  = interrupt.ExitInterrupt
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	// Context with signal cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env := cli.DefaultEnv()

	rootCmd := newRootCmd(env)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// newRootCmd assembles the command tree around env.
func newRootCmd(env *cli.Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lolapi",
		Short: "Query the League of Legends REST API",
		Long: `Query the League of Legends REST API from the terminal.

The API key is read from RIOT_API_KEY, or from the file named by
"lolapi config set key-file". Tournament endpoints use RIOT_TOURNAMENT_KEY
when it is set.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	g := &cli.Globals{}
	g.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(cli.SummonerCmd(env, g))
	rootCmd.AddCommand(cli.MatchesCmd(env, g))
	rootCmd.AddCommand(cli.StatusCmd(env, g))
	rootCmd.AddCommand(cli.ChampionsCmd(env, g))
	rootCmd.AddCommand(cli.VersionsCmd(env, g))
	rootCmd.AddCommand(cli.TournamentCmd(env, g))
	rootCmd.AddCommand(cli.ConfigCmd(env))

	return rootCmd
}

// exitCode maps errors to process exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Setup errors: missing or rejected credentials, bad region.
	if errors.Is(err, cli.ErrAPIKeyMissing) || errors.Is(err, apikey.ErrNoTournamentKey) ||
		errors.Is(err, apikey.ErrEmptyKey) || errors.Is(err, lol.ErrMissingKey) ||
		errors.Is(err, region.ErrUnknownRegion) || errors.Is(err, region.ErrUnknownPlatform) ||
		errors.Is(err, apierr.ErrAuthFailed) {
		return ExitSetup
	}

	// Validation errors.
	if errors.Is(err, cli.ErrInvalidLimit) || errors.Is(err, cli.ErrUnknownConfigKey) ||
		errors.Is(err, locale.ErrInvalid) || errors.Is(err, lol.ErrNoIDs) ||
		errors.Is(err, lol.ErrTooManyIDs) || errors.Is(err, cli.ErrSummonerNotFound) {
		return ExitValidation
	}

	// Rate limits before the other API failures: a 429 is also an *APIError.
	if errors.Is(err, apierr.ErrRateLimit) {
		return ExitRateLimit
	}

	if errors.Is(err, apierr.ErrNotFound) || errors.Is(err, apierr.ErrUnavailable) ||
		errors.Is(err, apierr.ErrTimeout) || errors.Is(err, apierr.ErrBadRequest) ||
		errors.Is(err, apierr.ErrTransport) || errors.Is(err, apierr.ErrParse) {
		return ExitAPI
	}

	// Cobra doesn't expose typed errors, so we check for known error message
	// patterns. Server messages may contain the same words, hence the order.
	if isCobraUsageError(err) {
		return ExitUsage
	}

	return ExitGeneral
}

// cobraUsageErrorPatterns contains error message substrings that indicate Cobra usage errors.
// These patterns are stable across Cobra versions (tested with v1.8+).
var cobraUsageErrorPatterns = []string{
	"required flag",             // Missing required flag
	"unknown flag",              // Flag doesn't exist
	"unknown shorthand",         // Short flag doesn't exist
	"unknown command",           // Subcommand doesn't exist
	"flag needs an argument",    // Flag provided without value
	"invalid argument",          // Invalid flag value type
	"if any flags in the group", // Mutually exclusive flag violation
	"accepts ",                  // Wrong number of arguments (e.g., "accepts 1 arg(s)")
	"requires at least",         // Too few arguments
	"requires at most",          // Too many arguments
}

// isCobraUsageError checks if an error is a Cobra usage/parsing error.
func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
