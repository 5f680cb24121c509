// Package main provides the command-line interface for git-repo.
package main

import (
	"log"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	templatecmd "github.com/lerenn/git-repo/cmd/git-repo/template"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-repo",
		Short: "Create, delete and rename paired local and GitHub repositories",
		Long: `git-repo keeps a local git working copy and its GitHub repository in step.

It initializes the local repository with a README and a .gitignore template,
creates the remote repository, resolves naming conflicts and pushes the first
commit. Deletion and renaming act on both sides and report any divergence.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&cli.Token, "token", "t", "", "GitHub access token (defaults to the stored token)")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cli.SettingsPath, "settings", "", "Specify a custom settings file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createDeleteCmd(),
		createRenameCmd(),
		createConfigCmd(),
		createCheckTokenCmd(),
		createSettingsCmd(),
		templatecmd.CreateTemplateCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
