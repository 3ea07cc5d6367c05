package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/unrss/envprep/internal/env"
)

// WhichOutput is the JSON representation of envprep which.
type WhichOutput struct {
	Command string `json:"command"`
	Path    string `json:"path,omitempty"`
	Found   bool   `json:"found"`
}

func newWhichCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "which COMMAND",
		Short: "Resolve a command against the prepared search path",
		Long: `Locate the executable that a child process would run for COMMAND, scanning
the search path of the prepared environment in order.`,
		Example: `  envprep which go
  envprep --prepend ~/sdk/go1.25/bin which go
  envprep --no-inherit --file ci.yaml which --json make`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.prepare()
			if err != nil {
				return err
			}
			return runWhich(cmd.OutOrStdout(), env.NewResolver(afero.NewOsFs()), e, args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runWhich(w io.Writer, r *env.Resolver, e *env.Env, command string, jsonOutput bool) error {
	res := <-r.WhichAsync(e, command)
	output := WhichOutput{Command: command, Path: res.Path, Found: res.Found}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return err
		}
	} else if output.Found {
		fmt.Fprintln(w, output.Path)
	}

	if !output.Found {
		return fmt.Errorf("%s: not found", command)
	}
	return nil
}
