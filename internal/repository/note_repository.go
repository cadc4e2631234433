package repository

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"notes-server/internal/domain"
)

var ErrNotFound = errors.New("note not found")

type NoteRepository interface {
	Create(note *domain.Note) (*domain.Note, error)
	FindByID(id int64) (*domain.Note, error)
	List() ([]*domain.Note, error)
	Update(id int64, mutate func(note *domain.Note) error) (*domain.Note, error)
	Delete(id int64) (*domain.Note, error)
	Count() int
}

// memoryNoteRepository keeps notes in insertion order. The counter and the
// slice share one lock so ids stay unique under concurrent requests.
type memoryNoteRepository struct {
	mu     sync.RWMutex
	notes  []*domain.Note
	nextID int64
}

func NewNoteRepository() NoteRepository {
	return &memoryNoteRepository{
		notes:  make([]*domain.Note, 0),
		nextID: 1,
	}
}

func (r *memoryNoteRepository) Create(note *domain.Note) (*domain.Note, error) {
	if note == nil {
		return nil, errors.New("failed to create note: nil note")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *note
	stored.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, &stored)

	created := stored
	return &created, nil
}

func (r *memoryNoteRepository) FindByID(id int64) (*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("failed to find note %d: %w", id, ErrNotFound)
	}

	note := *r.notes[idx]
	return &note, nil
}

func (r *memoryNoteRepository) List() ([]*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*domain.Note, 0, len(r.notes))
	for _, n := range r.notes {
		note := *n
		notes = append(notes, &note)
	}

	return notes, nil
}

// Update applies mutate to a copy of the stored note while holding the write
// lock. The stored note is replaced only when mutate returns nil.
func (r *memoryNoteRepository) Update(id int64, mutate func(note *domain.Note) error) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("failed to update note %d: %w", id, ErrNotFound)
	}

	working := *r.notes[idx]
	if err := mutate(&working); err != nil {
		return nil, err
	}

	// id and createdAt belong to the store
	working.ID = r.notes[idx].ID
	working.CreatedAt = r.notes[idx].CreatedAt
	working.Date = r.notes[idx].Date
	*r.notes[idx] = working

	updated := working
	return &updated, nil
}

func (r *memoryNoteRepository) Delete(id int64) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("failed to delete note %d: %w", id, ErrNotFound)
	}

	removed := r.notes[idx]
	// slices.Delete zeroes the vacated tail slot
	r.notes = slices.Delete(r.notes, idx, idx+1)

	return removed, nil
}

func (r *memoryNoteRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

// indexOf must be called with r.mu held.
func (r *memoryNoteRepository) indexOf(id int64) int {
	for i, n := range r.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
