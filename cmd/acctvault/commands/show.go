package commands

import (
	"github.com/spf13/cobra"

	"acctvault/internal/domain"
	"acctvault/internal/ui"
	"acctvault/internal/util/memzero"
)

func showCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print every attribute of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return view(func(s domain.AccountStore) error {
				a, err := s.Accounts().Get(id)
				if err != nil {
					return err
				}
				var plain []byte
				if reveal && a.Password() != nil {
					if plain, err = s.Decipher(id); err != nil {
						return err
					}
					defer memzero.Zero(plain)
				}
				return ui.RenderDetail(cmd.OutOrStdout(), s.Accounts(), a, plain)
			})
		},
	}
	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "show the password in clear text")
	return cmd
}
