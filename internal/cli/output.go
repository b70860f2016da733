package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alnah/go-lolapi/internal/format"
	"github.com/alnah/go-lolapi/lol"
)

// newTable returns a tab-aligned writer over w. Callers must Flush it.
func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

// row writes one tab-separated line.
func row(tw *tabwriter.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// rankedSummary renders a summoner's league positions on one line.
// Returns "unranked" when there are none.
func rankedSummary(leagues []lol.League) string {
	var parts []string
	for _, l := range leagues {
		for _, e := range l.Entries {
			parts = append(parts, fmt.Sprintf("%s %s %s %d LP (%dW/%dL, %s)",
				l.Queue, l.Tier, e.Division, e.LeaguePoints, e.Wins, e.Losses,
				format.WinRate(e.Wins, e.Losses)))
		}
	}
	if len(parts) == 0 {
		return "unranked"
	}
	return strings.Join(parts, "; ")
}

// result renders a win flag.
func result(won bool) string {
	if won {
		return "Win"
	}
	return "Loss"
}
