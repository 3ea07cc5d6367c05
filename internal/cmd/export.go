package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unrss/envprep/internal/env"
	"github.com/unrss/envprep/internal/shell"
)

// documentFormats are the export formats that write the whole prepared
// environment rather than a diff against the shell.
var documentFormats = []string{"json", "yaml", "toml", "compact"}

func exportFormats() []string {
	return slices.Concat(shell.Supported(), documentFormats)
}

// diffKey carries the last exported diff so that export --undo can
// revert it.
const diffKey = "ENVPREP_DIFF"

func newExportCmd(a *app) *cobra.Command {
	var full, undo bool

	cmd := &cobra.Command{
		Use:   "export [FORMAT]",
		Short: "Export the prepared environment",
		Long: `Write the prepared environment in FORMAT.

Shell formats (bash, zsh, fish) print the commands that turn the current
shell environment into the prepared one, suitable for eval, and record
the change in ` + diffKey + `. With --undo they print the commands that
revert the recorded change instead. With --full they print every variable
of the prepared environment rather than a diff.

Document formats (json, yaml, toml) print the portable structure, and
compact prints it as a single base64url string. FORMAT defaults to the
shell setting from the config file.`,
		Example: `  eval "$(envprep --profile dev export bash)"
  eval "$(envprep export --undo bash)"
  envprep --profile dev export fish | source
  envprep --no-inherit --set GOFLAGS=-mod=mod export yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: exportFormats(),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.cfg.Shell
			if len(args) == 1 {
				format = args[0]
			}

			if sh := shell.Get(format); sh != nil {
				return a.runShellExport(cmd.OutOrStdout(), sh, full, undo)
			}

			if undo {
				return fmt.Errorf("--undo needs a shell format (supported: %v)", shell.Supported())
			}
			e, err := a.prepare()
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), format, e)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Print the whole prepared environment instead of a diff")
	cmd.Flags().BoolVar(&undo, "undo", false, "Revert the change recorded by the last shell export")
	cmd.MarkFlagsMutuallyExclusive("full", "undo")

	return cmd
}

func (a *app) runShellExport(w io.Writer, sh shell.Shell, full, undo bool) error {
	current := env.Current()

	if undo {
		changes, err := undoChanges(current)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, sh.Export(changes))
		return err
	}

	e, err := a.prepare()
	if err != nil {
		return err
	}

	if full {
		_, err := io.WriteString(w, sh.Dump(e))
		return err
	}

	diff := env.BuildEnvDiff(current, e)
	a.logger.Info("export", "shell", sh.Name(), "changes", formatDiffSummary(diff, &colorizer{}))

	changes := shell.FromDiff(diff)
	if !diff.IsEmpty() {
		record, err := env.MarshalCompactDiff(diff)
		if err != nil {
			return fmt.Errorf("encode %s: %w", diffKey, err)
		}
		changes.Set(diffKey, record)
	}

	_, err = io.WriteString(w, sh.Export(changes))
	return err
}

// undoChanges returns the changes that restore the environment recorded
// in diffKey, and clear the record.
func undoChanges(current *env.Env) (shell.Changes, error) {
	record := current.Get(diffKey)
	if record == "" {
		return nil, fmt.Errorf("nothing to undo: %s is not set", diffKey)
	}

	diff, err := env.UnmarshalCompactDiff(record)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", diffKey, err)
	}

	restored := diff.Reverse().Patch(current)
	changes := shell.FromDiff(env.BuildEnvDiff(current, restored))
	changes.Unset(diffKey)
	return changes, nil
}

// writeDocument writes e in one of the document formats.
func writeDocument(w io.Writer, format string, e *env.Env) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "json":
		data, err = json.MarshalIndent(e.ToPortable(), "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(e.ToPortable())
	case "toml":
		data, err = toml.Marshal(e.ToPortable())
	case "compact":
		var s string
		s, err = env.MarshalCompact(e)
		data = []byte(s + "\n")
	default:
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, exportFormats())
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}
