package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"acctvault/internal/crypto"
	"acctvault/internal/domain"
	"acctvault/internal/nonce"
	"acctvault/internal/ui"
)

func saveAsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-as <path>",
		Short: "Write the database to another file under the same main password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := args[0]
			return view(func(s domain.AccountStore) error {
				if err := s.SaveAs(dst); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Success.Sprint("Saved"), ui.Path.Sprint(dst))
				return nil
			})
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print details about the account file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return view(func(s domain.AccountStore) error {
				data, err := os.ReadFile(s.Path())
				if err != nil {
					return err
				}
				v := s.Accounts()
				n := s.NonceCounter()
				fmt.Fprintf(out, "%s %s\n", ui.Label.Sprint("File:    "), ui.Path.Sprint(s.Path()))
				fmt.Fprintf(out, "%s %s (%d bytes)\n", ui.Label.Sprint("Hash:    "), crypto.Fingerprint(data), len(data))
				fmt.Fprintf(out, "%s %d (%s)\n", ui.Label.Sprint("Nonce:   "), n, nonce.Encode(n))
				fmt.Fprintf(out, "%s %d live, %d slots\n", ui.Label.Sprint("Accounts:"), v.LiveCount(), v.Len())
				fmt.Fprintf(out, "%s %d\n", ui.Label.Sprint("Roots:   "), v.Roots().Len())
				return nil
			})
		},
	}
}
