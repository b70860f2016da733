package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lolapi/lol"
)

// TournamentCmd creates the tournament command with subcommands.
// Both subcommands need a tournament key (RIOT_TOURNAMENT_KEY).
func TournamentCmd(env *Env, g *Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Inspect tournament codes",
		Long: `Inspect tournament codes created by a registered tournament provider.

These calls authenticate with the tournament key from RIOT_TOURNAMENT_KEY,
or with a key file whose "tournaments" field is true.`,
	}

	cmd.AddCommand(tournamentCodeCmd(env, g))
	cmd.AddCommand(tournamentEventsCmd(env, g))

	return cmd
}

func tournamentCodeCmd(env *Env, g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:     "code <code>",
		Short:   "Show a tournament code's settings",
		Example: `  lolapi tournament code NA0418d-8899c3a1-7d4c-4cf6-9d34-ab1b2a3c4d5e`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTournamentCode(cmd.Context(), env, g, args[0])
		},
	}
}

func tournamentEventsCmd(env *Env, g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:     "events <code>",
		Short:   "Show the lobby events of a tournament code",
		Example: `  lolapi tournament events NA0418d-8899c3a1-7d4c-4cf6-9d34-ab1b2a3c4d5e`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTournamentEvents(cmd.Context(), env, g, args[0])
		},
	}
}

// runTournamentCode prints a code's settings as key: value lines.
func runTournamentCode(ctx context.Context, env *Env, g *Globals, code string) error {
	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	tc, err := call(ctx, s, "tournament code", func(ctx context.Context) (lol.TournamentCode, error) {
		return s.api.TournamentCode(ctx, code)
	})
	if err != nil {
		return err
	}

	participants := make([]string, len(tc.Participants))
	for i, id := range tc.Participants {
		participants[i] = fmt.Sprint(id)
	}

	tw := newTable(env.Stdout, "FIELD", "VALUE")
	row(tw, "code", tc.Code)
	row(tw, "tournament", tc.TournamentID)
	row(tw, "provider", tc.ProviderID)
	row(tw, "region", tc.Region)
	row(tw, "map", tc.Map)
	row(tw, "pick", tc.PickType)
	row(tw, "spectators", tc.Spectators)
	row(tw, "team size", tc.TeamSize)
	row(tw, "lobby", tc.LobbyName)
	row(tw, "participants", strings.Join(participants, ","))
	return tw.Flush()
}

// runTournamentEvents prints a code's lobby events in the order received.
func runTournamentEvents(ctx context.Context, env *Env, g *Globals, code string) error {
	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	events, err := call(ctx, s, "lobby events", func(ctx context.Context) (lol.LobbyEventWrapper, error) {
		return s.api.LobbyEvents(ctx, code)
	})
	if err != nil {
		return err
	}

	if len(events.EventList) == 0 {
		fmt.Fprintln(env.Stderr, "No lobby events.")
		return nil
	}

	tw := newTable(env.Stdout, "TIME", "EVENT", "SUMMONER")
	for _, e := range events.EventList {
		row(tw, e.Timestamp, e.EventType, e.SummonerID)
	}
	return tw.Flush()
}
