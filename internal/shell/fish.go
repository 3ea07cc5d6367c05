package shell

import (
	"fmt"
	"strings"

	"github.com/unrss/envprep/internal/env"
)

type fishShell struct{}

// Fish is the Shell implementation for fish.
var Fish Shell = &fishShell{}

func (f *fishShell) Name() string {
	return "fish"
}

func (f *fishShell) Export(c Changes) string {
	if len(c) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, key := range c.sortedKeys() {
		if !IsValidName(key) {
			continue
		}
		if value := c[key]; value == nil {
			fmt.Fprintf(&sb, "set -e %s;\n", key)
		} else {
			writeFishSet(&sb, key, *value)
		}
	}

	return sb.String()
}

func (f *fishShell) Dump(e *env.Env) string {
	var sb strings.Builder
	for _, key := range e.Keys() {
		if !IsValidName(key) {
			continue
		}
		writeFishSet(&sb, key, e.Get(key))
	}
	return sb.String()
}

// writeFishSet writes a global exported assignment. Fish keeps PATH as a
// list, so the search path is split into one argument per segment.
func writeFishSet(sb *strings.Builder, key, value string) {
	if key != env.PathKey || value == "" {
		fmt.Fprintf(sb, "set -gx %s '%s';\n", key, FishEscape(value))
		return
	}

	fmt.Fprintf(sb, "set -gx %s", key)
	for _, segment := range strings.Split(value, env.ListSeparator) {
		fmt.Fprintf(sb, " '%s'", FishEscape(segment))
	}
	sb.WriteString(";\n")
}
