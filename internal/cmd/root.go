// Package cmd implements the envprep CLI commands.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/unrss/envprep/internal/config"
)

// Assets holds embedded files passed from main.
type Assets struct {
	Version string
}

// app carries state shared by all commands of one invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	opts   prepareOptions
}

// Execute runs the root command with the provided assets.
func Execute(assets Assets) error {
	root := newRootCmd(assets)
	return root.Execute()
}

func newRootCmd(assets Assets) *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: slog.New(slog.DiscardHandler),
	}
	var logLevel string

	cmd := &cobra.Command{
		Use:   "envprep",
		Short: "Prepare the environment a child process will inherit",
		Long: `envprep builds an environment from the current shell, portable env files,
saved profiles and command-line overrides, then resolves executables against
it, exports it for a shell, or saves it as a profile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, logLevel)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVar(&a.opts.files, "file", nil, "Merge a portable env file (json, yaml or toml); repeatable")
	flags.StringArrayVar(&a.opts.profiles, "profile", nil, "Merge a saved profile; repeatable")
	flags.StringArrayVar(&a.opts.sets, "set", nil, "Set a variable as KEY=VALUE; repeatable")
	flags.StringArrayVar(&a.opts.prepends, "prepend", nil, "Prepend a directory to the search path; repeatable")
	flags.BoolVar(&a.opts.noInherit, "no-inherit", false, "Do not start from the current process environment")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newWhichCmd(a),
		newPathsCmd(a),
		newVarsCmd(a),
		newExportCmd(a),
		newDiffCmd(a),
		newProfileCmd(a),
		newConfigCmd(a),
		newVersionCmd(assets.Version),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	level, err := config.ParseLogLevel(logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}
