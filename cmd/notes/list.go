package main

import (
	"fmt"

	"notes-server/internal/ui"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := opts.api.ListNotes(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, "No notes found.")
				return nil
			}

			for _, note := range notes {
				fmt.Fprint(out, ui.FormatNoteListItem(note))
			}
			return nil
		},
	}
}
