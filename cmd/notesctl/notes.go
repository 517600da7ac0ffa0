package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mynotes-backend/pkg/client"
)

func newNotesCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note", "n"},
		Short:   "List, create, edit and delete notes",
	}
	cmd.AddCommand(
		newNotesListCommand(opts),
		newNotesGetCommand(opts),
		newNotesRenderCommand(opts),
		newNotesAddCommand(opts),
		newNotesEditCommand(opts),
		newNotesRemoveCommand(opts),
	)
	return cmd
}

func newNotesListCommand(opts *globalOptions) *cobra.Command {
	var (
		archived   bool
		categoryID int64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter client.ListNotes
			if cmd.Flags().Changed("archived") {
				filter.Archived = &archived
			}
			if cmd.Flags().Changed("category") {
				filter.CategoryID = &categoryID
			}

			notes, err := opts.client().ListNotes(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), notes)
			}
			printNoteList(cmd.OutOrStdout(), notes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "only archived (true) or active (false) notes")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "only notes in this category id")
	return cmd
}

func newNotesGetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := opts.client().GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), n)
			}
			printNote(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newNotesRenderCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <id>",
		Short: "Print a note's content as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := opts.client().RenderNote(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), out)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out.HTML)
			return err
		},
	}
}

func newNotesAddCommand(opts *globalOptions) *cobra.Command {
	var (
		in         client.CreateNote
		archived   bool
		categories []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("archived") {
				in.IsArchived = &archived
			}
			in.Categories = categoryRefs(categories)

			n, err := opts.client().CreateNote(cmd.Context(), in)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), n)
			}
			printCreated(cmd.OutOrStdout(), "note", n.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&in.Content, "content", "c", "", "note content (markdown)")
	cmd.Flags().BoolVar(&archived, "archived", false, "create the note archived")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category id or name; repeatable")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newNotesEditCommand(opts *globalOptions) *cobra.Command {
	var (
		title, content  string
		archived        bool
		categories      []string
		clearCategories bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note; only the given flags are applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var in client.UpdateNote
			flags := cmd.Flags()
			if flags.Changed("title") {
				in.Title = &title
			}
			if flags.Changed("content") {
				in.Content = &content
			}
			if flags.Changed("archived") {
				in.IsArchived = &archived
			}
			switch {
			case clearCategories && flags.Changed("category"):
				return fmt.Errorf("--category and --clear-categories are mutually exclusive")
			case clearCategories:
				refs := []client.CategoryRef{}
				in.Categories = &refs
			case flags.Changed("category"):
				refs := categoryRefs(categories)
				in.Categories = &refs
			}

			n, err := opts.client().UpdateNote(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), n)
			}
			printNote(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	cmd.Flags().BoolVar(&archived, "archived", false, "archive (true) or restore (false)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "replace categories; id or name, repeatable")
	cmd.Flags().BoolVar(&clearCategories, "clear-categories", false, "remove every category from the note")
	return cmd
}

func newNotesRemoveCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.client().DeleteNote(cmd.Context(), id); err != nil {
				return err
			}
			printDeleted(cmd.OutOrStdout(), "note", id)
			return nil
		},
	}
}

// categoryRefs treats numeric values as ids and everything else as names.
func categoryRefs(values []string) []client.CategoryRef {
	refs := make([]client.CategoryRef, 0, len(values))
	for _, v := range values {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			refs = append(refs, client.RefByID(id))
			continue
		}
		refs = append(refs, client.RefByName(v))
	}
	return refs
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
