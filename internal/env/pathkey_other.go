//go:build !windows

package env

// PathKey is the variable holding the executable search path.
const PathKey = "PATH"
