package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/heartmarshall/mynotes-backend/pkg/client"
)

var (
	idColor       = color.New(color.FgHiBlack)
	titleColor    = color.New(color.Bold)
	archivedColor = color.New(color.FgYellow)
	categoryColor = color.New(color.FgCyan)
	okColor       = color.New(color.FgGreen)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printNoteList(w io.Writer, notes []client.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "no notes")
		return
	}
	for i := range notes {
		printNoteLine(w, &notes[i])
	}
}

func printNoteLine(w io.Writer, n *client.Note) {
	idColor.Fprintf(w, "%5d  ", n.ID)
	titleColor.Fprint(w, n.Title)
	if n.IsArchived {
		archivedColor.Fprint(w, " [archived]")
	}
	if len(n.Categories) > 0 {
		categoryColor.Fprintf(w, "  #%s", strings.Join(categoryNames(n.Categories), " #"))
	}
	fmt.Fprintln(w)
}

func printNote(w io.Writer, n *client.Note) {
	printNoteLine(w, n)
	idColor.Fprintf(w, "       updated %s\n\n", n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(w, n.Content)
}

func printCategories(w io.Writer, cats []client.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(w, "no categories")
		return
	}
	for _, c := range cats {
		idColor.Fprintf(w, "%5d  ", c.ID)
		categoryColor.Fprintln(w, c.Name)
	}
}

func printCreated(w io.Writer, kind string, id int64) {
	okColor.Fprintf(w, "created %s %d\n", kind, id)
}

func printDeleted(w io.Writer, kind string, id int64) {
	okColor.Fprintf(w, "deleted %s %d\n", kind, id)
}

func categoryNames(cats []client.Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}
