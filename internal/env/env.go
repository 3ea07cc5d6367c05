// Package env provides the environment a child process inherits: an
// insertion-ordered variable store with a search-path view, a masked
// variable view, merge, executable lookup, and portable encodings.
//
// An Env is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Env is an insertion-ordered set of environment variables.
// Keys are case-sensitive and unique. A missing key is the only way to
// represent an unset variable.
type Env struct {
	keys   []string
	values map[string]string
}

// New returns an empty Env.
func New() *Env {
	return &Env{values: make(map[string]string)}
}

// Current captures the environment of the running process.
func Current() *Env {
	return FromGoEnv(os.Environ())
}

// FromMap copies m verbatim, including the search-path key.
// Keys are inserted in sorted order. A nil map is a programming error.
func FromMap(m map[string]string) *Env {
	if m == nil {
		panic("env: FromMap called with nil map")
	}
	e := &Env{
		keys:   slices.Sorted(maps.Keys(m)),
		values: maps.Clone(m),
	}
	return e
}

// FromGoEnv creates an Env from os.Environ() format ([]string{"KEY=value"}).
// Entries without an "=" or with an empty key are ignored. Empty values
// are preserved. A repeated key keeps its first position and last value.
func FromGoEnv(environ []string) *Env {
	e := &Env{
		keys:   make([]string, 0, len(environ)),
		values: make(map[string]string, len(environ)),
	}
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		e.Set(key, value)
	}
	return e
}

// Full builds the environment for a child process. With inherit set it
// starts from the current process environment and merges vars on top;
// otherwise it returns a copy of vars.
func Full(vars *Env, inherit bool) *Env {
	if vars == nil {
		vars = New()
	}
	if !inherit {
		return vars.Copy()
	}
	e := Current()
	e.Merge(vars)
	return e
}

// Lookup returns the value of key and whether it is set.
func (e *Env) Lookup(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Get returns the value of key, or "" if it is not set.
func (e *Env) Get(key string) string {
	return e.values[key]
}

// Set assigns value to key. An existing key keeps its position.
func (e *Env) Set(key, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Unset removes key. Removing a missing key does nothing.
func (e *Env) Unset(key string) {
	if _, ok := e.values[key]; !ok {
		return
	}
	delete(e.values, key)
	e.keys = slices.DeleteFunc(e.keys, func(k string) bool { return k == key })
}

// Clear removes every variable, including the search path.
func (e *Env) Clear() {
	e.keys = nil
	clear(e.values)
}

// Len returns the number of variables.
func (e *Env) Len() int {
	return len(e.keys)
}

// Keys returns the variable names in insertion order.
func (e *Env) Keys() []string {
	return slices.Clone(e.keys)
}

// Map returns a copy of the variables as a plain map.
func (e *Env) Map() map[string]string {
	m := make(map[string]string, len(e.values))
	maps.Copy(m, e.values)
	return m
}

// ToGoEnv converts to os.Environ() format for exec.Cmd.Env.
// Entries follow insertion order.
func (e *Env) ToGoEnv() []string {
	result := make([]string, 0, len(e.keys))
	for _, key := range e.keys {
		result = append(result, key+"="+e.values[key])
	}
	return result
}

// Copy returns a deep copy of the environment.
func (e *Env) Copy() *Env {
	return &Env{
		keys:   slices.Clone(e.keys),
		values: maps.Clone(e.nonNilValues()),
	}
}

// Filtered returns a copy with shell session variables removed.
func (e *Env) Filtered() *Env {
	filtered := New()
	for _, key := range e.keys {
		if !IgnoredEnv(key) {
			filtered.Set(key, e.values[key])
		}
	}
	return filtered
}

// Paths returns the live search-path view of e.
func (e *Env) Paths() PathView {
	return PathView{env: e}
}

// Vars returns the live view of every variable except the search path.
func (e *Env) Vars() VarsView {
	return VarsView{env: e}
}

// Merge folds other into e. Variables from other overwrite those in e.
// Search-path segments from other move to the front in their own order
// and any copies of them already in e are dropped.
func (e *Env) Merge(other *Env) {
	if other == nil {
		panic("env: Merge called with nil Env")
	}
	e.Vars().Merge(other.Vars())
	e.Paths().Merge(other.Paths().List())
}

// Equal reports whether e and other hold the same search path, in the
// same order, and the same set of other variables.
func (e *Env) Equal(other *Env) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Paths().Equal(other.Paths().List()) && e.Vars().Equal(other.Vars().Map())
}

func (e *Env) nonNilValues() map[string]string {
	if e.values == nil {
		return make(map[string]string)
	}
	return e.values
}
