// Package config provides settings and key/value configuration for the git-repo application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lerenn/git-repo/configs"
	"github.com/lerenn/git-repo/pkg/fs"
	"gopkg.in/yaml.v3"
)

const (
	// TokenKey is the config store key holding the GitHub access token.
	TokenKey = "github.token"
)

// Settings represents the application settings.
type Settings struct {
	DataDir       string        `yaml:"data_dir"`
	TemplatesDir  string        `yaml:"templates_dir"`
	ConfigFile    string        `yaml:"config_file"`
	LogFile       string        `yaml:"log_file"`
	DefaultBranch string        `yaml:"default_branch"`
	CommitMessage string        `yaml:"commit_message"`
	Private       bool          `yaml:"private"`
	APIURL        string        `yaml:"api_url"`
	APITimeout    time.Duration `yaml:"api_timeout"`
}

// Manager interface provides settings management with an embedded settings path.
type Manager interface {
	GetSettings() (Settings, error)
	GetSettingsWithFallback() (Settings, error)
	SaveSettings(settings Settings) error
	GetSettingsPath() string
	DefaultSettings() Settings
}

type realManager struct {
	settingsPath string
	fs           fs.FS
}

// NewManager creates a new Manager instance with the specified settings path.
func NewManager(settingsPath string) Manager {
	return &realManager{
		settingsPath: settingsPath,
		fs:           fs.NewFS(),
	}
}

// DefaultSettingsPath returns ~/.git-repo/settings.yaml.
func DefaultSettingsPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".git-repo", "settings.yaml")
}

// GetSettings loads settings from the embedded path, layered over the defaults.
func (m *realManager) GetSettings() (Settings, error) {
	data, err := os.ReadFile(m.settingsPath)
	if os.IsNotExist(err) {
		return Settings{}, fmt.Errorf("%w: %s", ErrSettingsNotFound, m.settingsPath)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings, err := parseSettings(configs.DefaultSettingsYAML, Settings{})
	if err != nil {
		return Settings{}, err
	}
	if settings, err = parseSettings(data, settings); err != nil {
		return Settings{}, err
	}

	if err := settings.finalize(m.fs); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// GetSettingsWithFallback loads settings, falling back to the defaults when the file is missing.
func (m *realManager) GetSettingsWithFallback() (Settings, error) {
	settings, err := m.GetSettings()
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, ErrSettingsNotFound) {
		return m.DefaultSettings(), nil
	}
	return Settings{}, err
}

// SaveSettings validates settings and writes them to the embedded path, creating its directory.
func (m *realManager) SaveSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := m.fs.CreateFileWithContent(m.settingsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// GetSettingsPath returns the embedded settings path.
func (m *realManager) GetSettingsPath() string {
	return m.settingsPath
}

// DefaultSettings returns the embedded default settings.
func (m *realManager) DefaultSettings() Settings {
	settings, err := parseSettings(configs.DefaultSettingsYAML, Settings{})
	if err != nil {
		settings = Settings{
			DataDir:       "~/.git-repo",
			DefaultBranch: "master",
			Private:       true,
			APITimeout:    30 * time.Second,
		}
	}
	if err := settings.finalize(m.fs); err != nil {
		// Only reachable when the home directory cannot be resolved.
		settings.DataDir = ".git-repo"
		_ = settings.finalize(m.fs)
	}
	return settings
}

// Validate validates the settings values.
func (s Settings) Validate() error {
	if s.DataDir == "" {
		return ErrDataDirEmpty
	}
	if s.DefaultBranch == "" {
		return ErrDefaultBranchEmpty
	}
	return nil
}

func parseSettings(data []byte, base Settings) (Settings, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrSettingsFileParse, err)
	}
	return base, nil
}

// finalize expands tildes, derives empty paths from DataDir and validates.
func (s *Settings) finalize(fsInstance fs.FS) error {
	var err error
	if s.DataDir, err = fsInstance.ExpandPath(s.DataDir); err != nil {
		return err
	}
	if s.TemplatesDir == "" {
		s.TemplatesDir = filepath.Join(s.DataDir, "gitignore")
	}
	if s.ConfigFile == "" {
		s.ConfigFile = filepath.Join(s.DataDir, "git-repo.config")
	}
	if s.LogFile == "" {
		s.LogFile = filepath.Join(s.DataDir, "git-repo.log")
	}
	for _, p := range []*string{&s.TemplatesDir, &s.ConfigFile, &s.LogFile} {
		if *p, err = fsInstance.ExpandPath(*p); err != nil {
			return err
		}
	}
	if s.CommitMessage == "" {
		s.CommitMessage = "Initial commit"
	}
	return s.Validate()
}
