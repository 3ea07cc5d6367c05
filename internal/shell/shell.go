// Package shell renders environments as commands for a target shell.
package shell

import (
	"slices"

	"github.com/unrss/envprep/internal/env"
)

// Changes represents environment changes to apply.
// Key present with non-nil value = set variable.
// Key present with nil value = unset variable.
type Changes map[string]*string

// Set marks a variable to be set to the given value.
func (c Changes) Set(key, value string) {
	c[key] = &value
}

// Unset marks a variable to be unset.
func (c Changes) Unset(key string) {
	c[key] = nil
}

// FromDiff returns the changes that move a shell from the diff's previous
// environment to its next one.
func FromDiff(d *env.EnvDiff) Changes {
	c := make(Changes)
	if d == nil {
		return c
	}
	for key, value := range d.Next {
		if value == nil {
			c.Unset(key)
		} else {
			c.Set(key, *value)
		}
	}
	return c
}

// sortedKeys returns the keys of c in byte order for deterministic output.
func (c Changes) sortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Shell defines the interface for shell-specific output.
type Shell interface {
	// Name returns the shell name (bash, zsh, fish).
	Name() string

	// Export formats environment changes as shell commands, sorted by key.
	Export(c Changes) string

	// Dump formats a complete environment as shell commands in the
	// environment's own key order.
	Dump(e *env.Env) string
}

// shells is the registry of supported shell implementations.
var shells = map[string]Shell{
	"bash": Bash,
	"fish": Fish,
	"zsh":  Zsh,
}

// Get returns the Shell implementation for the given name.
// Returns nil if shell is not supported.
func Get(name string) Shell {
	return shells[name]
}

// Supported returns the supported shell names, sorted.
func Supported() []string {
	names := make([]string, 0, len(shells))
	for name := range shells {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsValidName reports whether key can be assigned by a shell: a letter or
// underscore followed by letters, digits and underscores.
func IsValidName(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
