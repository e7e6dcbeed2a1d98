package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"acctvault/internal/domain"
	"acctvault/internal/ui"
	"acctvault/internal/util/memzero"
)

func addCmd() *cobra.Command {
	var (
		parent       string
		service      string
		login        string
		comment      string
		refs         []string
		fields       []string
		withPassword bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			pid, err := optionalParent(parent)
			if err != nil {
				return err
			}
			refIDs, err := parseIDs(refs)
			if err != nil {
				return err
			}
			custom, err := parseFields(fields)
			if err != nil {
				return err
			}

			var plain []byte
			if withPassword {
				if plain, err = accountPassword(cmd.InOrStdin()); err != nil {
					return err
				}
				defer memzero.Zero(plain)
			}

			return update(func(s domain.AccountStore) error {
				id, err := s.AddAccount(name, pid)
				if err != nil {
					return err
				}
				err = s.EditAccount(id, domain.Fields{
					Name:         name,
					Service:      optionalString(service),
					LoginName:    optionalString(login),
					Comment:      optionalString(comment),
					Parent:       pid,
					References:   refIDs,
					CustomFields: custom,
				})
				if err != nil {
					return err
				}
				if plain != nil {
					if err := s.SetPassword(id, plain); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Success.Sprint("Added"), ui.ID.Sprint(id), ui.Name.Sprint(name))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent account id")
	cmd.Flags().StringVar(&service, "service", "", "service name or URL")
	cmd.Flags().StringVar(&login, "login", "", "login name")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form comment")
	cmd.Flags().StringSliceVar(&refs, "ref", nil, "referenced account id (repeatable)")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "custom field key=value (repeatable)")
	cmd.Flags().BoolVar(&withPassword, "with-password", false, "prompt for a password (reads stdin when not a terminal)")
	return cmd
}
