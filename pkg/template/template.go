// Package template stores the reusable .gitignore templates applied when a repository is created.
package template

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lerenn/git-repo/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=template.go -destination=mocks/template.gen.go -package=mocks

const (
	// Extension is the file extension of every stored template.
	Extension = ".gitignore"
	// DefaultName is the template used when none is requested.
	DefaultName = "default"
)

// Store manages ignore templates stored as <dir>/<name>.gitignore.
type Store interface {
	// Read returns the rule lines of the named template, in file order.
	Read(name string) ([]string, error)
	// Save copies sourcePath into the store and returns the template name.
	Save(sourcePath string) (string, error)
	// List returns the names of the stored templates, sorted.
	List() ([]string, error)
	// EnsureDefault installs the default template when it is missing.
	EnsureDefault(content []byte) error
}

type realStore struct {
	fs  fs.FS
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(fsInstance fs.FS, dir string) Store {
	return &realStore{
		fs:  fsInstance,
		dir: dir,
	}
}

func (s *realStore) Read(name string) ([]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	path := s.path(name)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check template %s: %w", name, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return splitRules(string(data)), nil
}

func (s *realStore) Save(sourcePath string) (string, error) {
	base := filepath.Base(sourcePath)
	if filepath.Ext(base) != Extension {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, sourcePath)
	}
	name := strings.TrimSuffix(base, Extension)
	if err := validateName(name); err != nil {
		return "", err
	}

	exists, err := s.fs.Exists(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", sourcePath, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}

	data, err := s.fs.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create templates directory: %w", err)
	}
	if err := s.fs.WriteFileAtomic(s.path(name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to save template %s: %w", name, err)
	}
	return name, nil
}

func (s *realStore) List() ([]string, error) {
	exists, err := s.fs.Exists(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to check templates directory: %w", err)
	}
	if !exists {
		return []string{}, nil
	}

	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}

func (s *realStore) EnsureDefault(content []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}
	if err := s.fs.CreateFileIfNotExists(s.path(DefaultName), content, 0644); err != nil {
		return fmt.Errorf("failed to install default template: %w", err)
	}
	return nil
}

func (s *realStore) path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}

// splitRules returns the lines of a template file, without the final line break.
func splitRules(content string) []string {
	content = strings.TrimRight(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "\n")
}
