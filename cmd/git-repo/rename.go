package main

import (
	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/lerenn/git-repo/pkg/repository"
	"github.com/spf13/cobra"
)

func createRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <path> <new_name>",
		Short: "Rename a repository locally and on GitHub",
		Long: `Rename the GitHub repository and the local working copy at <path>.

The local folder is moved next to itself under <new_name>. Each half runs
even when the other one fails, and failures are reported together.

Examples:
  git-repo rename demo demo-v2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cli.NewAppParams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			credential, err := app.Credential(cmd.Context())
			if err != nil {
				return err
			}

			handle, err := repository.NewHandle(app.Deps.Git, repository.NewHandleParams{
				Name:       args[0],
				Credential: credential,
			})
			if err != nil {
				return err
			}

			_, err = app.Orchestrator.Rename(cmd.Context(), handle, args[1])
			return err
		},
	}
}
