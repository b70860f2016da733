package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// VersionsCmd creates the versions command.
func VersionsCmd(env *Env, g *Globals) *cobra.Command {
	var latest bool

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List static data versions",
		Long:  `List the game versions static data is published for, newest first.`,
		Example: `  lolapi versions
  lolapi versions --latest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersions(cmd.Context(), env, g, latest)
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Print only the newest version")

	return cmd
}

// runVersions executes the versions command.
func runVersions(ctx context.Context, env *Env, g *Globals, latest bool) error {
	s, err := newSession(env, g)
	if err != nil {
		return err
	}

	versions, err := call(ctx, s, "versions", func(ctx context.Context) ([]string, error) {
		return s.api.Versions(ctx, s.region)
	})
	if err != nil {
		return err
	}

	if latest && len(versions) > 0 {
		versions = versions[:1]
	}
	for _, v := range versions {
		fmt.Fprintln(env.Stdout, v)
	}
	return nil
}
