//go:build !windows

package env

func hostRules(*Env) lookRules {
	return unixRules()
}
