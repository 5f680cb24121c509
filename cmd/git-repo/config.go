package main

import (
	"fmt"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/lerenn/git-repo/pkg/config"
	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	var list bool
	var token string

	configCmd := &cobra.Command{
		Use:   "config [--list] [--token TOKEN]",
		Short: "Show or update the stored configuration",
		Long: `Show or update the key=value configuration file.

A token passed with --token is checked against GitHub before it is stored.

Examples:
  git-repo config --list
  git-repo config --token ghp_xxx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !list && token == "" {
				return cmd.Help()
			}

			app, err := cli.NewApp(cli.NewAppParams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			if token != "" {
				if err := app.CheckToken(cmd.Context(), token); err != nil {
					return err
				}
				if err := app.Deps.ConfigStore.Set(config.TokenKey, token); err != nil {
					return err
				}
				app.Deps.Logger.Infof("Token has been saved to %s.", app.Deps.ConfigStore.Path())
			}

			if list {
				entries, err := app.Deps.ConfigStore.List()
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", e.Key, e.Value)
				}
			}
			return nil
		},
	}

	configCmd.Flags().BoolVar(&list, "list", false, "List every stored key=value entry")
	// Local flag shadows the persistent --token so "config --token" stores instead of authenticating.
	configCmd.Flags().StringVarP(&token, "token", "t", "", "Validate and store a GitHub access token")

	return configCmd
}
