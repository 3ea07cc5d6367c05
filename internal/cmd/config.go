package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/envprep/internal/config"
	"github.com/unrss/envprep/internal/profile"
)

// ConfigOutput is the JSON representation of envprep configuration.
type ConfigOutput struct {
	ConfigFile string   `json:"config_file,omitempty"`
	Inherit    bool     `json:"inherit"`
	Prepend    []string `json:"prepend,omitempty"`
	ProfileDir string   `json:"profile_dir"`
	LogLevel   string   `json:"log_level"`
	Shell      string   `json:"shell"`
}

func newConfigCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long: `Display the current envprep configuration including values from
the config file, environment variables, and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.profileStore()
			if err != nil {
				return err
			}
			return runConfig(cmd.OutOrStdout(), a.cfg, store, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConfig(w io.Writer, cfg *config.Config, store *profile.Store, jsonOutput bool) error {
	output := ConfigOutput{
		ConfigFile: config.ConfigFile(),
		Inherit:    cfg.Inherit,
		Prepend:    cfg.Prepend,
		ProfileDir: store.Dir(),
		LogLevel:   cfg.LogLevel,
		Shell:      cfg.Shell,
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	outputConfigHuman(w, output)
	return nil
}

func outputConfigHuman(w io.Writer, output ConfigOutput) {
	c := newColorizer(w)

	fmt.Fprintf(w, "%s\n\n", c.bold("envprep configuration"))

	if output.ConfigFile != "" {
		fmt.Fprintf(w, "  %s %s\n", c.cyan("Config file:"), output.ConfigFile)
	} else {
		fmt.Fprintf(w, "  %s %s\n", c.cyan("Config file:"), c.dim("(none)"))
	}

	fmt.Fprintf(w, "  %s", c.cyan("Inherit:"))
	if output.Inherit {
		fmt.Fprintf(w, " %s\n", c.green("true"))
	} else {
		fmt.Fprintf(w, " %s\n", c.yellow("false"))
	}

	fmt.Fprintf(w, "  %s", c.cyan("Prepend:"))
	if len(output.Prepend) == 0 {
		fmt.Fprintf(w, " %s\n", c.dim("(none)"))
	} else {
		fmt.Fprintln(w)
		for _, dir := range output.Prepend {
			fmt.Fprintf(w, "    - %s\n", dir)
		}
	}

	fmt.Fprintf(w, "  %s %s\n", c.cyan("Profile dir:"), output.ProfileDir)
	fmt.Fprintf(w, "  %s %s\n", c.cyan("Log level:"), strings.ToLower(output.LogLevel))
	fmt.Fprintf(w, "  %s %s\n", c.cyan("Shell:"), output.Shell)
}
