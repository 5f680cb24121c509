// Package template provides ignore template commands for the git-repo CLI.
package template

import (
	"github.com/spf13/cobra"
)

// CreateTemplateCmd creates the template command with all its subcommands.
func CreateTemplateCmd() *cobra.Command {
	templateCmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Ignore template management commands",
		Long:    `Commands for managing the .gitignore templates used by git-repo init.`,
	}

	templateCmd.AddCommand(
		createListCmd(),
		createAddCmd(),
		createShowCmd(),
	)

	return templateCmd
}
