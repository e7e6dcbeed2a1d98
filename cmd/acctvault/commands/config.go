package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"acctvault/internal/ui"
	"acctvault/internal/util/fsutil"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the configuration",
	}
	cmd.AddCommand(configShowCmd(), configInitCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting with where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.Label.Sprint("file:"), ui.Path.Sprint(cfg.Path()))
			for _, a := range cfg.Attributes() {
				fmt.Fprintf(out, "%s %s %s\n", ui.Label.Sprint(a.Name+":"), a.Value, ui.Muted.Sprint(a.Source))
			}
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Path()
			if fsutil.Exists(path) && !force {
				return fmt.Errorf("%s already exists (use --force)", path)
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Success.Sprint("Wrote"), ui.Path.Sprint(path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
