package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format of Note.Date.
const DateLayout = "2006-01-02"

type Note struct {
	ID        int64     `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Date      string    `json:"date" yaml:"date"`
	CreatedAt time.Time `json:"createdAt" yaml:"created"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated"`
}

// NoteInput is the body of both create and update requests.
type NoteInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type DeleteNoteResponse struct {
	Message string `json:"message"`
	Note    *Note  `json:"note"`
}

type NoteEventType string

const (
	NoteCreated NoteEventType = "note_created"
	NoteUpdated NoteEventType = "note_updated"
	NoteDeleted NoteEventType = "note_deleted"
)

type NoteEvent struct {
	Type NoteEventType `json:"type"`
	Note *Note         `json:"note"`
}

// ParseNoteID accepts only positive base-10 integers. Anything else cannot
// name a stored note.
func ParseNoteID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
