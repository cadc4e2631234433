package main

import (
	"fmt"

	"notes-server/internal/ui"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			note, err := opts.api.GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.FormatNoteHeader(note))

			raw, _ := cmd.Flags().GetBool("raw")
			if raw {
				fmt.Fprintln(out, note.Content)
				return nil
			}
			fmt.Fprint(out, ui.FormatNoteContent(note.Content))
			return nil
		},
	}

	cmd.Flags().Bool("raw", false, "print content without markdown rendering")
	return cmd
}
