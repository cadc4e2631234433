// Package ui formats notes for the terminal.
package ui

import (
	"fmt"
	"strings"

	"notes-server/internal/domain"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

const timeLayout = "2006-01-02 15:04"

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatNoteListItem(note *domain.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", cyan(fmt.Sprintf("#%d", note.ID)), bold(note.Title)))
	sb.WriteString(fmt.Sprintf("       %s %s  %s %s\n",
		faint("Date:"), faint(note.Date),
		faint("Updated:"), faint(note.UpdatedAt.Local().Format(timeLayout))))

	return sb.String()
}

func FormatNoteHeader(note *domain.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(note.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Local().Format(timeLayout))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(note.UpdatedAt.Local().Format(timeLayout))))
	sb.WriteString(Separator())

	return sb.String()
}

// FormatNoteContent renders content as markdown, falling back to the raw
// text when the renderer is unavailable.
func FormatNoteContent(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content + "\n"
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return out
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
