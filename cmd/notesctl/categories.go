package main

import (
	"github.com/spf13/cobra"
)

func newCategoriesCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "c"},
		Short:   "List, create and delete categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := opts.client().ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), cats)
			}
			printCategories(cmd.OutOrStdout(), cats)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client().CreateCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), c)
			}
			printCreated(cmd.OutOrStdout(), "category", c.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a category; its notes are kept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			printDeleted(cmd.OutOrStdout(), "category", id)
			return nil
		},
	})

	return cmd
}
