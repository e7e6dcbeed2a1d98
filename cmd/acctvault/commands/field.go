package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"acctvault/internal/domain"
	"acctvault/internal/graph"
	"acctvault/internal/ui"
)

func fieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Set or unset custom fields of an account",
	}
	cmd.AddCommand(fieldSetCmd(), fieldUnsetCmd())
	return cmd
}

func fieldSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <key> <value>",
		Short: "Set a custom field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			key, value := args[1], args[2]
			return update(func(s domain.AccountStore) error {
				err := s.Update(id, func(a *graph.Account) error {
					a.SetCustomField(key, value)
					return nil
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n", ui.Success.Sprint("Set"), key, ui.ID.Sprint(id))
				return nil
			})
		},
	}
}

func fieldUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <id> <key>",
		Short: "Remove a custom field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			key := args[1]
			return update(func(s domain.AccountStore) error {
				err := s.Update(id, func(a *graph.Account) error {
					if !a.RemoveCustomField(key) {
						return fmt.Errorf("account %d has no field %q", id, key)
					}
					return nil
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n", ui.Success.Sprint("Removed"), key, ui.ID.Sprint(id))
				return nil
			})
		},
	}
}
