package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"notes-server/internal/domain"
	"notes-server/internal/ui"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ExportData struct {
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Server     string         `json:"server" yaml:"server"`
	Notes      []*domain.Note `json:"notes" yaml:"notes"`
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all notes",
		Long:  `Export every note to JSON or YAML, on stdout or into --output.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outputPath, _ := cmd.Flags().GetString("output")
			if format != "json" && format != "yaml" && format != "yml" {
				return fmt.Errorf("unknown format: %s", format)
			}

			notes, err := opts.api.ListNotes(cmd.Context())
			if err != nil {
				return err
			}

			data := &ExportData{
				ExportedAt: time.Now().UTC(),
				Server:     opts.server,
				Notes:      notes,
			}

			var out io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := writeExport(out, format, data); err != nil {
				return err
			}

			if outputPath != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputPath)))
			}
			return nil
		},
	}

	cmd.Flags().String("format", "json", "export format: json or yaml")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	return cmd
}

func writeExport(w io.Writer, format string, data *ExportData) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
