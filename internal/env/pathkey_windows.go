//go:build windows

package env

// PathKey is the variable holding the executable search path.
// os.Environ reports it as "Path" on Windows.
const PathKey = "Path"
