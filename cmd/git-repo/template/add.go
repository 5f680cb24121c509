package template

import (
	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file.gitignore>",
		Short: "Save a .gitignore file as a template",
		Long: `Copy a .gitignore file into the template store. The template is named
after the file, without its extension.

Examples:
  git-repo template add ~/templates/go.gitignore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cli.NewAppParams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			name, err := app.Deps.Templates.Save(args[0])
			if err != nil {
				return err
			}
			app.Deps.Logger.Infof("Template %q has been saved.", name)
			return nil
		},
	}
}
