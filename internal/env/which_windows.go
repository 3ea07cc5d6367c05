//go:build windows

package env

// hostRules reads PATHEXT from the environment being resolved, not from
// the current process.
func hostRules(e *Env) lookRules {
	return windowsRules(e.Vars().Get("PATHEXT"))
}
