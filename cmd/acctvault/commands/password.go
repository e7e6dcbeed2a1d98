package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"acctvault/internal/domain"
	"acctvault/internal/ui"
	"acctvault/internal/util/memzero"
)

func passwordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Set, clear, reveal or copy an account password",
	}
	cmd.AddCommand(passwordSetCmd(), passwordClearCmd(), passwordRevealCmd(), passwordCopyCmd())
	return cmd
}

func passwordSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Set the password of an account (reads stdin when not a terminal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			plain, err := accountPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer memzero.Zero(plain)

			return update(func(s domain.AccountStore) error {
				if err := s.SetPassword(id, plain); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s password of %s\n", ui.Success.Sprint("Set"), ui.ID.Sprint(id))
				return nil
			})
		},
	}
}

func passwordClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <id>",
		Short: "Remove the password of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return update(func(s domain.AccountStore) error {
				if err := s.ClearPassword(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s password of %s\n", ui.Success.Sprint("Cleared"), ui.ID.Sprint(id))
				return nil
			})
		},
	}
}

func passwordRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id>",
		Short: "Print the password of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return view(func(s domain.AccountStore) error {
				plain, err := s.Decipher(id)
				if err != nil {
					return err
				}
				defer memzero.Zero(plain)
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(plain))
				return err
			})
		},
	}
}

func passwordCopyCmd() *cobra.Command {
	var countdown int

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy the password of an account to the clipboard and clear it later",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !ui.ClipboardSupported() {
				return errors.New("no clipboard utility available")
			}
			if !cmd.Flags().Changed("clear-after") {
				countdown = cfg.ClearClipboardCountdown
			}

			var text string
			err = view(func(s domain.AccountStore) error {
				plain, err := s.Decipher(id)
				if err != nil {
					return err
				}
				text = string(plain)
				memzero.Zero(plain)
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			d := time.Duration(countdown) * time.Second
			if d > 0 {
				fmt.Fprintf(out, "%s password of %s, clearing in %ds\n", ui.Success.Sprint("Copied"), ui.ID.Sprint(id), countdown)
			} else {
				fmt.Fprintf(out, "%s password of %s\n", ui.Success.Sprint("Copied"), ui.ID.Sprint(id))
			}
			if err := ui.CopyAndClear(cmd.Context(), ui.SystemClipboard(), text, d); err != nil {
				return fmt.Errorf("clipboard: %w", err)
			}
			appCtx.Log.Infof("clipboard cleared")
			return nil
		},
	}
	cmd.Flags().IntVar(&countdown, "clear-after", 0, "seconds before clearing the clipboard, 0 keeps it (default from config)")
	return cmd
}
