package main

import (
	"fmt"
	"os"
	"strings"

	"notes-server/internal/ui"

	"github.com/spf13/cobra"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new note",
		Long:  `Create a note with the given title. Content comes from --content or --file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd)
			if err != nil {
				return err
			}

			note, err := opts.api.CreateNote(cmd.Context(), args[0], content)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Created note #%d", note.ID)))
			return nil
		},
	}

	cmd.Flags().StringP("content", "c", "", "note content")
	cmd.Flags().StringP("file", "f", "", "read content from file")
	return cmd
}

// readContent prefers --content over --file; both empty yields "".
func readContent(cmd *cobra.Command) (string, error) {
	content, _ := cmd.Flags().GetString("content")
	if content != "" {
		return content, nil
	}

	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return "", nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
