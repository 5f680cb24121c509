package template

import (
	"fmt"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/spf13/cobra"
)

func createShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the rules of an ignore template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cli.NewAppParams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			rules, err := app.Deps.Templates.Read(args[0])
			if err != nil {
				return err
			}
			for _, rule := range rules {
				fmt.Fprintln(cmd.OutOrStdout(), rule)
			}
			return nil
		},
	}
}
