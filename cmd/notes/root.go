package main

import (
	"os"

	"notes-server/internal/client"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	server string
	api    *client.Client
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	defaultServer := os.Getenv("NOTES_SERVER")
	if defaultServer == "" {
		defaultServer = client.DefaultBaseURL
	}

	cmd := &cobra.Command{
		Use:           "notes",
		Short:         "Command-line client for the notes API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.api = client.New(opts.server, nil)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "notes API base URL (env NOTES_SERVER)")

	cmd.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newShowCmd(opts),
		newEditCmd(opts),
		newRmCmd(opts),
		newExportCmd(opts),
	)

	return cmd
}
