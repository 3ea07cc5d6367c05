package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/envprep/internal/env"
)

// DiffOutput is the JSON representation of envprep diff.
type DiffOutput struct {
	Added   []string `json:"added"`
	Changed []string `json:"changed"`
	Removed []string `json:"removed"`
}

func newDiffCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Summarize how the prepared environment differs from the shell",
		Long: `Compare the prepared environment with the current one and print the
variables it adds (+), changes (~) and removes (-). Shell session
variables such as PWD and SHLVL are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.prepare()
			if err != nil {
				return err
			}
			return runDiff(cmd.OutOrStdout(), env.BuildEnvDiff(env.Current(), e), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runDiff(w io.Writer, diff *env.EnvDiff, jsonOutput bool) error {
	if jsonOutput {
		output := DiffOutput{
			Added:   nonNil(diff.Added()),
			Changed: nonNil(diff.Changed()),
			Removed: nonNil(diff.Removed()),
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	c := newColorizer(w)
	if diff.IsEmpty() {
		fmt.Fprintln(w, c.dim("no changes"))
		return nil
	}
	fmt.Fprintln(w, formatDiffSummary(diff, c))
	return nil
}

// formatDiffSummary renders a diff as "+ADDED ~CHANGED -REMOVED", each
// group sorted by key.
func formatDiffSummary(diff *env.EnvDiff, c *colorizer) string {
	var parts []string
	for _, key := range diff.Added() {
		parts = append(parts, c.green("+"+key))
	}
	for _, key := range diff.Changed() {
		parts = append(parts, c.yellow("~"+key))
	}
	for _, key := range diff.Removed() {
		parts = append(parts, c.red("-"+key))
	}
	return strings.Join(parts, " ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
