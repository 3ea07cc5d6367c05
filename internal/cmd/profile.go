package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unrss/envprep/internal/env"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved profiles",
		Long: `Profiles are named overlays stored as portable JSON documents.
Use --profile NAME on any command to merge one into the prepared environment.`,
	}

	cmd.AddCommand(
		newProfileSaveCmd(a),
		newProfileShowCmd(a),
		newProfileListCmd(a),
		newProfileDeleteCmd(a),
	)

	return cmd
}

func newProfileSaveCmd(a *app) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the current overlay as a profile",
		Long: `Save the variables and search path given through --file, --profile, --set
and --prepend as profile NAME, replacing any existing profile of that name.
With --full the whole prepared environment is saved instead.`,
		Example: `  envprep --set GOOS=linux --prepend /opt/cross/bin profile save cross
  envprep --no-inherit --file base.toml profile save base`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var (
				e   *env.Env
				err error
			)
			if full {
				e, err = a.prepare()
			} else {
				e, err = a.overlay()
			}
			if err != nil {
				return err
			}

			store, err := a.profileStore()
			if err != nil {
				return err
			}
			if err := store.Save(name, e); err != nil {
				return fmt.Errorf("save profile: %w", err)
			}

			a.logger.Info("profile saved", "name", name, "vars", e.Vars().Len(), "paths", e.Paths().Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Save the full prepared environment, not just the overlay")

	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.profileStore()
			if err != nil {
				return err
			}
			e, status, err := store.Load(args[0])
			if err != nil {
				return err
			}
			a.warnDecode("profile", args[0], status)
			return writeDocument(cmd.OutOrStdout(), format, e)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, yaml, toml, compact)")

	return cmd
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.profileStore()
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newProfileDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.profileStore()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		},
	}
}
