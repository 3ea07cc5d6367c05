package shell

import (
	"fmt"
	"strings"

	"github.com/unrss/envprep/internal/env"
)

// posixShell renders export/unset statements understood by bash and zsh.
type posixShell struct {
	name string
}

// Bash is the Shell implementation for bash.
var Bash Shell = &posixShell{name: "bash"}

// Zsh is the Shell implementation for zsh.
// Zsh uses the same export/unset syntax as bash.
var Zsh Shell = &posixShell{name: "zsh"}

func (p *posixShell) Name() string {
	return p.name
}

func (p *posixShell) Export(c Changes) string {
	if len(c) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, key := range c.sortedKeys() {
		if !IsValidName(key) {
			continue
		}
		if value := c[key]; value == nil {
			fmt.Fprintf(&sb, "unset %s;\n", key)
		} else {
			writeExport(&sb, key, *value)
		}
	}

	return sb.String()
}

func (p *posixShell) Dump(e *env.Env) string {
	var sb strings.Builder
	for _, key := range e.Keys() {
		if !IsValidName(key) {
			continue
		}
		writeExport(&sb, key, e.Get(key))
	}
	return sb.String()
}

func writeExport(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "export %s=\"%s\";\n", key, BashEscape(value))
}
