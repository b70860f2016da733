package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lolapi/apierr"
	"github.com/alnah/go-lolapi/lol"
)

// leagueBatch is how many summoners one league lookup accepts.
const leagueBatch = 10

// summonerOptions holds validated options for the summoner command.
type summonerOptions struct {
	ranked bool
}

// SummonerCmd creates the summoner command.
func SummonerCmd(env *Env, g *Globals) *cobra.Command {
	var opts summonerOptions

	cmd := &cobra.Command{
		Use:   "summoner <name>...",
		Short: "Look up summoners by name",
		Long: `Look up up to 40 summoners by name on one region.

Names are matched the way the game does: case and spaces are ignored.
With --ranked, each summoner's league positions are shown too.`,
		Example: `  lolapi summoner "Hide on bush" -r kr
  lolapi summoner Doublelift Bjergsen --ranked`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummoner(cmd.Context(), env, g, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ranked, "ranked", false, "Also show ranked league positions")

	return cmd
}

// runSummoner executes the summoner command.
func runSummoner(ctx context.Context, env *Env, g *Globals, names []string, opts summonerOptions) error {
	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	found, err := call(ctx, s, "summoner lookup", func(ctx context.Context) (map[string]lol.Summoner, error) {
		return s.api.SummonersByName(ctx, s.region, names...)
	})
	if errors.Is(err, apierr.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrSummonerNotFound, strings.Join(names, ", "))
	}
	if err != nil {
		return err
	}

	summoners := orderSummoners(names, found)
	for _, name := range names {
		if _, ok := found[lol.StandardizeName(name)]; !ok {
			fmt.Fprintf(env.Stderr, "Warning: summoner %q not found\n", name)
		}
	}
	if len(summoners) == 0 {
		return fmt.Errorf("%w: %s", ErrSummonerNotFound, strings.Join(names, ", "))
	}

	var leagues map[string][]lol.League
	if opts.ranked {
		leagues, err = fetchLeagues(ctx, s, summoners)
		if err != nil {
			return err
		}
	}

	header := []string{"NAME", "LEVEL", "ID"}
	if opts.ranked {
		header = append(header, "RANKED")
	}
	tw := newTable(env.Stdout, header...)
	for _, sm := range summoners {
		if opts.ranked {
			row(tw, sm.Name, sm.SummonerLevel, sm.ID, rankedSummary(leagues[strconv.FormatInt(sm.ID, 10)]))
			continue
		}
		row(tw, sm.Name, sm.SummonerLevel, sm.ID)
	}
	return tw.Flush()
}

// orderSummoners returns the found summoners in argument order, without
// duplicates.
func orderSummoners(names []string, found map[string]lol.Summoner) []lol.Summoner {
	var out []lol.Summoner
	seen := make(map[int64]bool)
	for _, name := range names {
		sm, ok := found[lol.StandardizeName(name)]
		if !ok || seen[sm.ID] {
			continue
		}
		seen[sm.ID] = true
		out = append(out, sm)
	}
	return out
}

// fetchLeagues looks up league entries in batches the API accepts. A 404
// means none of the batch is ranked.
func fetchLeagues(ctx context.Context, s *session, summoners []lol.Summoner) (map[string][]lol.League, error) {
	ids := make([]int64, len(summoners))
	for i, sm := range summoners {
		ids[i] = sm.ID
	}

	all := make(map[string][]lol.League)
	for batch := range slices.Chunk(ids, leagueBatch) {
		got, err := call(ctx, s, "league lookup", func(ctx context.Context) (map[string][]lol.League, error) {
			return s.api.LeagueEntriesBySummoner(ctx, s.region, batch...)
		})
		if errors.Is(err, apierr.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for id, l := range got {
			all[id] = l
		}
	}
	return all, nil
}

// lookupSummoner resolves a single summoner name.
func lookupSummoner(ctx context.Context, s *session, name string) (lol.Summoner, error) {
	found, err := call(ctx, s, "summoner lookup", func(ctx context.Context) (map[string]lol.Summoner, error) {
		return s.api.SummonersByName(ctx, s.region, name)
	})
	if errors.Is(err, apierr.ErrNotFound) {
		return lol.Summoner{}, fmt.Errorf("%w: %s", ErrSummonerNotFound, name)
	}
	if err != nil {
		return lol.Summoner{}, err
	}
	sm, ok := found[lol.StandardizeName(name)]
	if !ok {
		return lol.Summoner{}, fmt.Errorf("%w: %s", ErrSummonerNotFound, name)
	}
	return sm, nil
}
