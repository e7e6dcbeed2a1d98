package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"acctvault/internal/ui"
)

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new, empty account file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := newMainPassword()
			if err != nil {
				return err
			}
			db, err := appCtx.Vault.Create(cfg.Database, pw)
			if err != nil {
				return err
			}
			db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Success.Sprint("Created"), ui.Path.Sprint(cfg.Database))
			return nil
		},
	}
}
