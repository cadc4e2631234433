package main

import (
	"fmt"

	"notes-server/internal/domain"
	"notes-server/internal/ui"

	"github.com/spf13/cobra"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Long:  `Replace a note's title and/or content. Fields not given keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := opts.api.GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}

			title := current.Title
			if cmd.Flags().Changed("title") {
				title, _ = cmd.Flags().GetString("title")
			}

			content := current.Content
			if cmd.Flags().Changed("content") || cmd.Flags().Changed("file") {
				content, err = readContent(cmd)
				if err != nil {
					return err
				}
			}

			note, err := opts.api.UpdateNote(cmd.Context(), id, title, content)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated note #%d", note.ID)))
			return nil
		},
	}

	cmd.Flags().StringP("title", "t", "", "new title")
	cmd.Flags().StringP("content", "c", "", "new content")
	cmd.Flags().StringP("file", "f", "", "read new content from file")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, ok := domain.ParseNoteID(raw)
	if !ok {
		return 0, fmt.Errorf("invalid note id %q", raw)
	}
	return id, nil
}
