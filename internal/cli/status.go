package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-lolapi/lol"
	"github.com/alnah/go-lolapi/region"
)

// statusParallel bounds concurrent status requests.
const statusParallel = 4

// StatusCmd creates the status command.
func StatusCmd(env *Env, g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "status [region]...",
		Short: "Show server status for one or more regions",
		Long: `Show the state of each service (game, store, website, client) per region.

Without arguments every region is queried concurrently. A region that cannot
be reached is reported in the table; the command fails only if none can.`,
		Example: `  lolapi status
  lolapi status euw eune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), env, g, args)
		},
	}
}

// shardResult is one region's outcome.
type shardResult struct {
	region region.Region
	shard  lol.ShardStatus
	err    error
}

// runStatus executes the status command.
func runStatus(ctx context.Context, env *Env, g *Globals, codes []string) error {
	if len(codes) == 0 {
		codes = region.Codes()
	}
	regions := make([]region.Region, len(codes))
	for i, code := range codes {
		r, err := region.Parse(code)
		if err != nil {
			return err
		}
		regions[i] = r
	}

	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	results := fetchShards(ctx, s, regions)

	tw := newTable(env.Stdout, "REGION", "SHARD", "SERVICE", "STATUS", "INCIDENTS")
	var firstErr error
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			row(tw, res.region, "-", "-", "unreachable", res.err)
			continue
		}
		for _, svc := range res.shard.Services {
			row(tw, res.region, res.shard.Name, svc.Name, svc.Status, activeIncidents(svc))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed == len(results) {
		return fmt.Errorf("no region reachable: %w", firstErr)
	}
	return nil
}

// fetchShards queries every region concurrently. Results keep the order of
// regions; a failing region does not cancel the others.
func fetchShards(ctx context.Context, s *session, regions []region.Region) []shardResult {
	results := make([]shardResult, len(regions))

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(statusParallel)
	for i, r := range regions {
		eg.Go(func() error {
			shard, err := call(ectx, s, "status "+r.String(), func(ctx context.Context) (lol.ShardStatus, error) {
				return s.api.Shard(ctx, r)
			})
			results[i] = shardResult{region: r, shard: shard, err: err}
			if err == nil {
				s.log.Debug().Str("region", r.String()).Int("services", len(shard.Services)).Msg("status fetched")
			}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// activeIncidents counts a service's unresolved incidents.
func activeIncidents(svc lol.Service) int {
	n := 0
	for _, inc := range svc.Incidents {
		if inc.Active {
			n++
		}
	}
	return n
}
