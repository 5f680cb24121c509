package main

import (
	"fmt"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/lerenn/git-repo/pkg/repository"
	"github.com/lerenn/git-repo/pkg/template"
	"github.com/spf13/cobra"
)

type initOptions struct {
	folder         string
	language       string
	ignore         []string
	selectTemplate bool
	noRemote       bool
	autoSuffix     bool
}

func createInitCmd() *cobra.Command {
	var opts initOptions

	initCmd := &cobra.Command{
		Use:   "init <name> [--folder DIR] [--language TEMPLATE] [--ignore RULE]...",
		Short: "Create a local repository and its GitHub counterpart",
		Long: `Create a local git repository with a README and a .gitignore, commit it,
then create the GitHub repository and push the first commit.

The .gitignore is built from the "default" template unless another one is
given with --language or picked with --select-template. Extra rules passed
with --ignore are appended in order.

When the name is already taken on GitHub, a new one is asked for, or a
numeric suffix is added with --auto-suffix.

Examples:
  git-repo init demo
  git-repo init demo --folder ~/src/demo-local -l go
  git-repo init demo -i "*.log" -i build/
  git-repo init demo --no-remote`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cli.NewAppParams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			return runInit(cmd, app, args[0], opts)
		},
	}

	initCmd.Flags().StringVar(&opts.folder, "folder", "", "Local folder of the working copy (defaults to ./<name>)")
	initCmd.Flags().StringVarP(&opts.language, "language", "l", "", "Ignore template to apply")
	initCmd.Flags().StringArrayVarP(&opts.ignore, "ignore", "i", nil, "Additional ignore rule (repeatable)")
	initCmd.Flags().BoolVar(&opts.selectTemplate, "select-template", false, "Pick the ignore template interactively")
	initCmd.Flags().BoolVar(&opts.noRemote, "no-remote", false, "Only create the local repository")
	initCmd.Flags().BoolVar(&opts.autoSuffix, "auto-suffix", false, "Resolve name conflicts with a numeric suffix")
	initCmd.MarkFlagsMutuallyExclusive("language", "select-template")

	return initCmd
}

func runInit(cmd *cobra.Command, app *cli.App, name string, opts initOptions) error {
	rules, err := ignoreRules(app, opts)
	if err != nil {
		return err
	}

	credential := repository.Credential(repository.LocalOnly{})
	if !opts.noRemote {
		if credential, err = app.Credential(cmd.Context()); err != nil {
			return err
		}
	}

	handle, err := repository.NewHandle(app.Deps.Git, repository.NewHandleParams{
		Name:       name,
		Folder:     opts.folder,
		Credential: credential,
	})
	if err != nil {
		return err
	}

	orchestrator := app.Orchestrator
	if opts.autoSuffix {
		if orchestrator, err = app.NewOrchestrator(repository.SuffixResolver{}); err != nil {
			return err
		}
	}

	if _, err := orchestrator.Create(cmd.Context(), handle, repository.CreateParams{Ignore: rules}); err != nil {
		return err
	}

	if handle.RemoteName != "" && handle.RemoteName != handle.LocalName {
		fmt.Fprintf(cmd.OutOrStdout(), "Local repository %q is published as %q.\n", handle.LocalName, handle.RemoteName)
	}
	return nil
}

// ignoreRules returns the selected template rules followed by the extra ones.
func ignoreRules(app *cli.App, opts initOptions) ([]string, error) {
	name := opts.language
	if opts.selectTemplate {
		names, err := app.Deps.Templates.List()
		if err != nil {
			return nil, err
		}
		if name, err = app.Deps.Prompt.PromptSelectTemplate(names); err != nil {
			return nil, err
		}
	}
	if name == "" {
		name = template.DefaultName
	}

	rules, err := app.Deps.Templates.Read(name)
	if err != nil {
		return nil, err
	}
	return append(rules, opts.ignore...), nil
}
