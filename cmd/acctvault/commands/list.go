package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"acctvault/internal/domain"
	"acctvault/internal/ui"
)

func listCmd() *cobra.Command {
	var tree, flat bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "List accounts as a tree (the default, see tree_mode) or as a flat table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asTree := cfg.TreeMode
			if tree {
				asTree = true
			}
			if flat {
				asTree = false
			}
			out := cmd.OutOrStdout()
			return view(func(s domain.AccountStore) error {
				v := s.Accounts()
				if v.LiveCount() == 0 {
					fmt.Fprintln(out, "No accounts.")
					return nil
				}
				if asTree {
					return ui.RenderTree(out, v, nil)
				}
				return ui.RenderTable(out, v.Accounts())
			})
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "show the hierarchy")
	cmd.Flags().BoolVar(&flat, "flat", false, "show a table")
	cmd.MarkFlagsMutuallyExclusive("tree", "flat")
	return cmd
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [id]",
		Short: "Print the account hierarchy, optionally below one account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root *domain.AccountID
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				root = &id
			}
			return view(func(s domain.AccountStore) error {
				v := s.Accounts()
				if root != nil {
					if _, err := v.Get(*root); err != nil {
						return err
					}
				}
				return ui.RenderTree(cmd.OutOrStdout(), v, root)
			})
		},
	}
}

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Find accounts whose name, service or login contains query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return view(func(s domain.AccountStore) error {
				found := s.Accounts().Filter(args[0])
				if len(found) == 0 {
					fmt.Fprintln(out, "No matches.")
					return nil
				}
				return ui.RenderTable(out, found)
			})
		},
	}
}
