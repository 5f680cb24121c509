package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/git-repo/cmd/git-repo/internal/cli"
	"github.com/lerenn/git-repo/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func createSettingsCmd() *cobra.Command {
	var initialize, force bool
	var dataDir string

	settingsCmd := &cobra.Command{
		Use:   "settings [--init [--data-dir <dir>] [--force]]",
		Short: "Show or create the settings file",
		Long: `Show the settings in effect and the file they are read from.

With --init, the default settings are written to the settings file. An
existing file is only replaced with --force. --data-dir moves the templates,
the config file and the log file under another directory.

Examples:
  git-repo settings
  git-repo settings --init --data-dir ~/git-repo
  git-repo --settings ./settings.yaml settings --init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewSettingsManager()

			if initialize {
				if err := initSettings(manager, dataDir, force); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s.\n", manager.GetSettingsPath())
				return nil
			}

			settings, err := manager.GetSettingsWithFallback()
			if err != nil {
				return fmt.Errorf("%w: %w", cli.ErrLoadSettings, err)
			}
			data, err := yaml.Marshal(settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", manager.GetSettingsPath(), data)
			return nil
		},
	}

	settingsCmd.Flags().BoolVar(&initialize, "init", false, "Write the default settings file")
	settingsCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")
	settingsCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding templates, config and log")

	return settingsCmd
}

// initSettings writes the defaults, refusing to replace a readable or broken file unless force is set.
func initSettings(manager config.Manager, dataDir string, force bool) error {
	if _, err := manager.GetSettings(); !errors.Is(err, config.ErrSettingsNotFound) && !force {
		return fmt.Errorf("%w: %s", cli.ErrSettingsExist, manager.GetSettingsPath())
	}

	settings := manager.DefaultSettings()
	if dataDir != "" {
		if !strings.HasPrefix(dataDir, "~") {
			abs, err := filepath.Abs(dataDir)
			if err != nil {
				return err
			}
			dataDir = abs
		}
		// Left empty so they are derived from the new data_dir on load.
		settings.DataDir = dataDir
		settings.TemplatesDir, settings.ConfigFile, settings.LogFile = "", "", ""
	}
	return manager.SaveSettings(settings)
}
