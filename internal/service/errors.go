package service

import "errors"

var (
	ErrValidation   = errors.New("title and content are required")
	ErrNoteNotFound = errors.New("note not found")
)
