// Package profile stores named environments on disk.
// Profiles are stored in ~/.local/share/envprep/profiles/ (or $XDG_DATA_HOME/envprep/profiles/)
// as portable JSON documents.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/unrss/envprep/internal/env"
)

var (
	// ErrNotFound is returned when a named profile does not exist.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidName is returned for names that cannot be used as a file name.
	ErrInvalidName = errors.New("invalid profile name")
)

const ext = ".json"

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store manages saved profiles in a single directory.
type Store struct {
	dir string
}

// NewStore creates a profile store, creating the directory if needed.
// Uses $XDG_DATA_HOME/envprep/profiles/ or ~/.local/share/envprep/profiles/.
func NewStore() (*Store, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return NewStoreWithDir(filepath.Join(dataHome, "envprep", "profiles"))
}

// NewStoreWithDir creates a Store rooted at dir.
func NewStoreWithDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create profile directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the profiles.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file a profile is stored in.
func (s *Store) Path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name+ext), nil
}

// Save writes e under name, replacing any existing profile.
func (s *Store) Save(name string, e *env.Env) error {
	file, err := s.Path(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(e.ToPortable(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	data = append(data, '\n')

	tmpFile := file + ".tmp"

	// Atomic write: write to temp file, then rename
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, file); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("rename profile file: %w", err)
	}

	return nil
}

// Load reads the profile called name. Malformed content is not an error:
// the returned status says how much of the file was usable.
func (s *Store) Load(name string) (*env.Env, env.DecodeStatus, error) {
	file, err := s.Path(name)
	if err != nil {
		return nil, env.DecodeEmpty, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, env.DecodeEmpty, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, env.DecodeEmpty, fmt.Errorf("read profile: %w", err)
	}

	e, status := env.DecodeJSON(data)
	return e, status, nil
}

// Delete removes the profile called name.
func (s *Store) Delete(name string) error {
	file, err := s.Path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return fmt.Errorf("remove profile file: %w", err)
	}

	return nil
}

// List returns the names of all saved profiles, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profile directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), ext)
		if !ok || ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// ValidateName reports whether name can be used for a profile.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
