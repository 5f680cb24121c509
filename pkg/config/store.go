package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/git-repo/pkg/fs"
	"gopkg.in/ini.v1"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=store.go -destination=mocks/store.gen.go -package=mocks

func init() {
	// Entries are persisted as bare "key=value" lines.
	ini.PrettyFormat = false
	ini.PrettyEqual = false
}

// Entry is a single key=value line of the config file.
type Entry struct {
	Key   string
	Value string
}

// Store is a flat key=value configuration file.
type Store interface {
	// Get returns the value of key and whether it is set.
	Get(key string) (string, bool, error)
	// Set overwrites key in place, or appends it when missing.
	Set(key, value string) error
	// List returns every entry in file order.
	List() ([]Entry, error)
	// Path returns the backing file path.
	Path() string
}

type realStore struct {
	fs   fs.FS
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(fsInstance fs.FS, path string) Store {
	return &realStore{
		fs:   fsInstance,
		path: path,
	}
}

func (s *realStore) Path() string {
	return s.path
}

func (s *realStore) Get(key string) (string, bool, error) {
	file, err := s.load()
	if err != nil {
		return "", false, err
	}

	section := file.Section(ini.DefaultSection)
	if !section.HasKey(key) {
		return "", false, nil
	}
	return section.Key(key).String(), true, nil
}

func (s *realStore) Set(key, value string) error {
	if err := validateEntry(key, value); err != nil {
		return err
	}

	file, err := s.load()
	if err != nil {
		return err
	}

	section := file.Section(ini.DefaultSection)
	if section.HasKey(key) {
		section.Key(key).SetValue(value)
	} else if _, err := section.NewKey(key, value); err != nil {
		return fmt.Errorf("failed to add config key %s: %w", key, err)
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode config file: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.fs.WriteFileAtomic(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (s *realStore) List() ([]Entry, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}

	keys := file.Section(ini.DefaultSection).Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k.Name(), Value: k.String()})
	}
	return entries, nil
}

func (s *realStore) load() (*ini.File, error) {
	options := ini.LoadOptions{
		IgnoreInlineComment:      true,
		PreserveSurroundedQuote:  true,
		KeyValueDelimiters:       "=",
		KeyValueDelimiterOnWrite: "=",
	}

	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return ini.Empty(options), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	file, err := ini.LoadSources(options, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return file, nil
}

func validateEntry(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrKeyEmpty
	}
	if strings.ContainsAny(key, "=\r\n[") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidValue, key)
	}
	// ini quotes padded values on write and the quotes would be read back.
	if strings.TrimSpace(value) != value {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidValue, key)
	}
	return nil
}
