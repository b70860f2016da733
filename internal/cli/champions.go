package cli

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lolapi/lol"
)

// championsOptions holds validated options for the champions command.
type championsOptions struct {
	free bool
}

// ChampionsCmd creates the champions command.
func ChampionsCmd(env *Env, g *Globals) *cobra.Command {
	var opts championsOptions

	cmd := &cobra.Command{
		Use:   "champions",
		Short: "List champions and their availability",
		Long: `List champions with their localized name and title, whether they are in the
free rotation and whether they can be played in ranked.

Names come from static data in the configured locale (--locale or config).`,
		Example: `  lolapi champions --free
  lolapi champions -r euw --locale fr_FR`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChampions(cmd.Context(), env, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.free, "free", false, "Only the current free rotation")

	return cmd
}

// championRow is one printed champion.
type championRow struct {
	id     int64
	name   string
	title  string
	free   bool
	ranked bool
}

// runChampions executes the champions command.
func runChampions(ctx context.Context, env *Env, g *Globals, opts championsOptions) error {
	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	list, err := call(ctx, s, "champions", func(ctx context.Context) (lol.ChampionList, error) {
		return s.api.Champions(ctx, s.region, opts.free)
	})
	if err != nil {
		return err
	}

	static, err := call(ctx, s, "static champions", func(ctx context.Context) (lol.StaticChampionList, error) {
		return s.api.StaticChampions(ctx, s.region, lol.StaticDataOptions{Locale: s.locale, DataByID: true})
	})
	if err != nil {
		return err
	}

	rows := make([]championRow, 0, len(list.Champions))
	for _, c := range list.Champions {
		r := championRow{id: c.ID, name: "#" + strconv.FormatInt(c.ID, 10), free: c.FreeToPlay, ranked: c.RankedPlayEnabled}
		if sc, ok := static.Data[strconv.FormatInt(c.ID, 10)]; ok {
			r.name, r.title = sc.Name, sc.Title
		}
		rows = append(rows, r)
	}
	slices.SortFunc(rows, func(a, b championRow) int {
		return cmp.Or(cmp.Compare(a.name, b.name), cmp.Compare(a.id, b.id))
	})

	tw := newTable(env.Stdout, "ID", "NAME", "TITLE", "FREE", "RANKED")
	for _, r := range rows {
		row(tw, r.id, r.name, r.title, yesNo(r.free), yesNo(r.ranked))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
