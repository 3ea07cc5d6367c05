package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newVarsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List the variables of the prepared environment",
		Long: `Print every variable of the prepared environment except the search path,
sorted by name, as KEY=VALUE lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.prepare()
			if err != nil {
				return err
			}
			return runVars(cmd.OutOrStdout(), e.Vars().Map(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runVars(w io.Writer, vars map[string]string, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vars)
	}

	c := newColorizer(w)
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(w, "%s=%s\n", c.bold(key), formatValue(vars[key]))
	}
	return nil
}
