package main

import (
	"fmt"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/spf13/cobra"
)

func createCheckTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-token",
		Short: "Check that the effective GitHub token is accepted",
		Long: `Check the token given with --token, or the stored one, against GitHub.

Examples:
  git-repo check-token
  git-repo check-token -t ghp_xxx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cli.NewApp(cli.NewAppParams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			token, err := app.ResolveToken()
			if err != nil {
				return err
			}
			if token == "" {
				return cli.ErrNoToken
			}

			if err := app.CheckToken(cmd.Context(), token); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token is valid.")
			return nil
		},
	}
}
