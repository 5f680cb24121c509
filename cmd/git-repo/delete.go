package main

import (
	"fmt"
	"io"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/lerenn/git-repo/pkg/prompt"
	"github.com/lerenn/git-repo/pkg/repository"
	"github.com/spf13/cobra"
)

func createDeleteCmd() *cobra.Command {
	var remoteOnly, localOnly, yes bool

	deleteCmd := &cobra.Command{
		Use:   "delete <path> [--remote|--local] [--yes]",
		Short: "Delete a repository locally, on GitHub, or both",
		Long: `Delete the GitHub repository and the local working copy at <path>.

The remote repository is found from the origin remote of the working copy,
falling back to the folder name. Both halves are always attempted; a missing
half is reported and skipped. The deletion is confirmed interactively unless
--yes is given.

Examples:
  git-repo delete demo
  git-repo delete demo --yes
  git-repo delete ~/src/demo --remote
  git-repo delete demo --local`,
		Args: cobra.ExactArgs(1),
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

			confirmed, err := confirmDeletion(app.Deps.Prompt, cmd.OutOrStdout(),
				deletionQuestion(handle, remoteOnly, localOnly), yes)
			if err != nil || !confirmed {
				return err
			}

			switch {
			case remoteOnly:
				_, err = app.Orchestrator.DeleteRemote(cmd.Context(), handle)
			case localOnly:
				_, err = app.Orchestrator.DeleteLocal(cmd.Context(), handle)
			default:
				_, err = app.Orchestrator.Delete(cmd.Context(), handle)
			}
			return err
		},
	}

	deleteCmd.Flags().BoolVar(&remoteOnly, "remote", false, "Only delete the GitHub repository")
	deleteCmd.Flags().BoolVar(&localOnly, "local", false, "Only delete the local working copy")
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")
	deleteCmd.MarkFlagsMutuallyExclusive("remote", "local")

	return deleteCmd
}

func deletionQuestion(h *repository.Handle, remoteOnly, localOnly bool) string {
	remote := h.RemoteName
	if remote == "" {
		remote = h.LocalName
	}

	switch {
	case remoteOnly:
		return fmt.Sprintf("Delete repository %s on GitHub?", remote)
	case localOnly:
		return fmt.Sprintf("Delete local repository %s?", h.Path)
	default:
		return fmt.Sprintf("Delete repository %s on GitHub and at %s?", remote, h.Path)
	}
}

// confirmDeletion asks for confirmation unless yes is set; a refusal prints "Aborted.".
func confirmDeletion(p prompt.Prompter, out io.Writer, question string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}

	confirmed, err := p.PromptForConfirmation(question, false)
	if err != nil {
		return false, err
	}
	if !confirmed {
		fmt.Fprintln(out, "Aborted.")
	}
	return confirmed, nil
}
