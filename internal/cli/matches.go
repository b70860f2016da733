package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lolapi/internal/format"
	"github.com/alnah/go-lolapi/lol"
)

// maxMatchLimit caps --limit; every match costs one detail call.
const maxMatchLimit = 20

// matchesOptions holds validated options for the matches command.
type matchesOptions struct {
	limit   int
	queues  []string
	seasons []string
}

// MatchesCmd creates the matches command.
func MatchesCmd(env *Env, g *Globals) *cobra.Command {
	var opts matchesOptions

	cmd := &cobra.Command{
		Use:   "matches <name>",
		Short: "Show a summoner's most recent ranked matches",
		Long: `Show a summoner's most recent ranked matches with the result and score line.

Each match is fetched in turn. Press Ctrl+C once to stop early and print what
was fetched so far; press it again within 2s to abort.`,
		Example: `  lolapi matches Doublelift --limit 10
  lolapi matches "Hide on bush" -r kr --queue RANKED_SOLO_5x5 --season SEASON2016`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatches(cmd.Context(), env, g, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 5, fmt.Sprintf("Number of matches (1-%d)", maxMatchLimit))
	cmd.Flags().StringSliceVar(&opts.queues, "queue", nil, "Ranked queue filter, e.g. RANKED_SOLO_5x5")
	cmd.Flags().StringSliceVar(&opts.seasons, "season", nil, "Season filter, e.g. SEASON2016")

	return cmd
}

// matchRow is one printed match.
type matchRow struct {
	played   int64
	queue    string
	duration int64
	champion int64
	outcome  string
	score    string
}

// runMatches executes the matches command.
func runMatches(ctx context.Context, env *Env, g *Globals, name string, opts matchesOptions) error {
	if opts.limit < 1 || opts.limit > maxMatchLimit {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidLimit, opts.limit, maxMatchLimit)
	}

	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	sm, err := lookupSummoner(ctx, s, name)
	if err != nil {
		return err
	}

	begin, end := 0, opts.limit
	list, err := call(ctx, s, "match list", func(ctx context.Context) (lol.MatchList, error) {
		return s.api.MatchList(ctx, s.region, sm.ID, lol.MatchListOptions{
			RankedQueues: opts.queues,
			Seasons:      opts.seasons,
			BeginIndex:   &begin,
			EndIndex:     &end,
		})
	})
	if err != nil {
		return err
	}
	if len(list.Matches) == 0 {
		fmt.Fprintf(env.Stderr, "No matches found for %s.\n", sm.Name)
		return nil
	}

	handler, mctx := env.InterruptHandler.NewHandler(ctx)
	defer handler.Stop()

	rows := make([]matchRow, 0, len(list.Matches))
	for i, ref := range list.Matches {
		fmt.Fprintf(env.Stderr, "  Fetching match %d/%d...\n", i+1, len(list.Matches))
		detail, err := call(mctx, s, "match", func(ctx context.Context) (lol.MatchDetail, error) {
			return s.api.Match(ctx, s.region, ref.MatchID, false)
		})
		if err != nil {
			if handler.WasInterrupted() && len(rows) > 0 {
				fmt.Fprintf(env.Stderr, "\nStopped after %d of %d matches.\n", len(rows), len(list.Matches))
				break
			}
			return err
		}
		s.log.Debug().Int64("match", ref.MatchID).Msg("match fetched")
		rows = append(rows, newMatchRow(ref, detail, sm.ID))
	}

	tw := newTable(env.Stdout, "PLAYED", "QUEUE", "LENGTH", "CHAMPION", "RESULT", "K/D/A")
	for _, r := range rows {
		row(tw, format.Millis(r.played), r.queue, format.Seconds(r.duration), r.champion, r.outcome, r.score)
	}
	return tw.Flush()
}

// newMatchRow extracts summonerID's line from a match. Matches whose player
// identities are hidden show "?" for the result and score.
func newMatchRow(ref lol.MatchReference, d lol.MatchDetail, summonerID int64) matchRow {
	r := matchRow{
		played:   ref.Timestamp,
		queue:    ref.Queue,
		duration: d.MatchDuration,
		champion: ref.Champion,
		outcome:  "?",
		score:    "?",
	}

	participantID := 0
	for _, id := range d.ParticipantIdentities {
		if id.Player != nil && id.Player.SummonerID == summonerID {
			participantID = id.ParticipantID
			break
		}
	}
	if participantID == 0 {
		return r
	}

	for _, p := range d.Participants {
		if p.ParticipantID != participantID {
			continue
		}
		r.outcome = result(p.Stats.Winner)
		r.score = fmt.Sprintf("%d/%d/%d", p.Stats.Kills, p.Stats.Deaths, p.Stats.Assists)
		break
	}
	return r
}
