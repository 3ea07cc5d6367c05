package env

import "strings"

// ignoredKeys contains environment variables that should be excluded from diffs.
// These are shell-managed or session-specific variables that change frequently
// and never belong in a prepared environment.
var ignoredKeys = map[string]bool{
	"PWD":             true, // Current working directory
	"OLDPWD":          true, // Previous working directory
	"SHLVL":           true, // Shell nesting level
	"_":               true, // Last command executed
	"TERM_SESSION_ID": true, // Terminal session identifier
}

// IgnoredEnv returns true for env vars that should be excluded from diffs.
// This includes PWD, OLDPWD, SHLVL, _, TERM_SESSION_ID, and all ENVPREP_* vars.
func IgnoredEnv(key string) bool {
	if ignoredKeys[key] {
		return true
	}
	// ENVPREP_* configures envprep itself
	return strings.HasPrefix(key, "ENVPREP_")
}
