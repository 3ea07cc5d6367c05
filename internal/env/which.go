package env

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// defaultPathExt is used on Windows when PATHEXT is unset.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// lookRules are the host conventions for naming and recognising
// executables.
type lookRules struct {
	exts     []string // lower-case suffixes tried in order; nil on Unix
	execBits bool     // require an execute permission bit
	seps     string   // characters that make a command a path
}

func unixRules() lookRules {
	return lookRules{execBits: true, seps: "/"}
}

// windowsRules parses a PATHEXT value.
func windowsRules(pathext string) lookRules {
	if pathext == "" {
		pathext = defaultPathExt
	}
	var exts []string
	for _, ext := range strings.Split(strings.ToLower(pathext), ";") {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return lookRules{exts: exts, seps: `/\:`}
}

// candidates returns the file names to try for command.
func (r lookRules) candidates(command string) []string {
	if r.exts == nil {
		return []string{command}
	}
	lower := strings.ToLower(command)
	for _, ext := range r.exts {
		if strings.HasSuffix(lower, ext) {
			return []string{command}
		}
	}
	names := make([]string, 0, len(r.exts))
	for _, ext := range r.exts {
		names = append(names, command+ext)
	}
	return names
}

// Resolution is the outcome of a lookup.
type Resolution struct {
	Path  string
	Found bool
}

// Resolver finds executables along the search path of an Env.
type Resolver struct {
	fs    afero.Fs
	rules func(*Env) lookRules
}

// NewResolver returns a Resolver probing fs with the host's rules.
func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{fs: fs, rules: hostRules}
}

// Which returns the absolute path of the first executable named command
// found by scanning the search path of e in order. A command containing
// a path separator is checked as given without scanning. An empty search
// path segment stands for the current directory.
func (r *Resolver) Which(e *Env, command string) (string, bool) {
	if command == "" {
		return "", false
	}
	rules := r.rules(e)

	if strings.ContainsAny(command, rules.seps) {
		return r.tryAll(rules, "", command)
	}

	for _, dir := range e.Paths().List() {
		if dir == "" {
			dir = "."
		}
		if path, ok := r.tryAll(rules, dir, command); ok {
			return path, true
		}
	}
	return "", false
}

// WhichAsync delivers the result of Which on a buffered channel that is
// closed afterwards. The scan runs on the calling goroutine before
// WhichAsync returns.
func (r *Resolver) WhichAsync(e *Env, command string) <-chan Resolution {
	ch := make(chan Resolution, 1)
	path, ok := r.Which(e, command)
	ch <- Resolution{Path: path, Found: ok}
	close(ch)
	return ch
}

func (r *Resolver) tryAll(rules lookRules, dir, command string) (string, bool) {
	for _, name := range rules.candidates(command) {
		path := name
		if dir != "" {
			path = filepath.Join(dir, name)
		}
		if !r.isExecutable(rules, path) {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		return abs, true
	}
	return "", false
}

func (r *Resolver) isExecutable(rules lookRules, path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if rules.execBits && info.Mode().Perm()&0o111 == 0 {
		return false
	}
	return true
}

// Which resolves command against the search path of e on the real
// filesystem.
func (e *Env) Which(command string) (string, bool) {
	return NewResolver(afero.NewOsFs()).Which(e, command)
}
