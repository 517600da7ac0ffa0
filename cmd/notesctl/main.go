// Command notesctl is a terminal client for the notes API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mynotes-backend/pkg/client"
)

type globalOptions struct {
	server  string
	timeout time.Duration
	json    bool
}

func (o *globalOptions) client() *client.Client {
	return client.New(o.server, client.WithTimeout(o.timeout))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "notesctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "notesctl",
		Short:         "Manage notes and categories from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("NOTES_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:3000"
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "API base URL (env NOTES_SERVER)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print raw JSON")

	root.AddCommand(
		newNotesCommand(opts),
		newCategoriesCommand(opts),
	)
	return root
}
