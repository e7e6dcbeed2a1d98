package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"acctvault/internal/domain"
	"acctvault/internal/ui"
)

var editFlags = []string{"name", "service", "login", "comment", "parent", "ref", "clear-refs"}

func editCmd() *cobra.Command {
	var (
		name      string
		service   string
		login     string
		comment   string
		parent    string
		refs      []string
		clearRefs bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change attributes, parent or references of an account",
		Long: "Change attributes of an account. Only the flags given are applied; " +
			"an empty --service, --login, --comment or --parent clears that value.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !slices.ContainsFunc(editFlags, flags.Changed) {
				return fmt.Errorf("nothing to change")
			}

			return update(func(s domain.AccountStore) error {
				a, err := s.Accounts().Get(id)
				if err != nil {
					return err
				}
				f := a.Fields()
				if flags.Changed("name") {
					f.Name = name
				}
				if flags.Changed("service") {
					f.Service = optionalString(service)
				}
				if flags.Changed("login") {
					f.LoginName = optionalString(login)
				}
				if flags.Changed("comment") {
					f.Comment = optionalString(comment)
				}
				if flags.Changed("parent") {
					if f.Parent, err = optionalParent(parent); err != nil {
						return err
					}
				}
				if clearRefs {
					f.References = nil
				}
				if flags.Changed("ref") {
					if f.References, err = parseIDs(refs); err != nil {
						return err
					}
				}
				if err := s.EditAccount(id, f); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Success.Sprint("Updated"), ui.ID.Sprint(id))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&service, "service", "", "service name or URL")
	cmd.Flags().StringVar(&login, "login", "", "login name")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form comment")
	cmd.Flags().StringVar(&parent, "parent", "", "parent account id")
	cmd.Flags().StringSliceVar(&refs, "ref", nil, "replace references with these ids (repeatable)")
	cmd.Flags().BoolVar(&clearRefs, "clear-refs", false, "remove every reference")
	cmd.MarkFlagsMutuallyExclusive("ref", "clear-refs")
	return cmd
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an account that has no children and is not referenced",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return update(func(s domain.AccountStore) error {
				if err := s.RemoveAccount(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Success.Sprint("Removed"), ui.ID.Sprint(id))
				return nil
			})
		},
	}
}
