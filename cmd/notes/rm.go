package main

import (
	"fmt"

	"notes-server/internal/ui"

	"github.com/spf13/cobra"
)

func newRmCmd(opts *rootOptions) *cobra.Command {
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

			note, err := opts.api.DeleteNote(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Deleted note #%d %q", note.ID, note.Title)))
			return nil
		},
	}
}
