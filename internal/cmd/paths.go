package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the search path of the prepared environment",
		Long: `Print each search path segment of the prepared environment on its own line,
in lookup order. Segments that are not existing directories are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.prepare()
			if err != nil {
				return err
			}
			return runPaths(cmd.OutOrStdout(), e.Paths().List(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPaths(w io.Writer, paths []string, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	}

	c := newColorizer(w)
	for _, dir := range paths {
		display := dir
		if display == "" {
			display = "."
		}
		if info, err := os.Stat(display); err != nil || !info.IsDir() {
			fmt.Fprintf(w, "%s %s\n", display, c.dim("(missing)"))
			continue
		}
		fmt.Fprintln(w, display)
	}
	return nil
}
