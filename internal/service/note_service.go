package service

import (
	"errors"
	"fmt"
	"time"

	"notes-server/internal/domain"
	"notes-server/internal/repository"

	"github.com/go-playground/validator/v10"
)

// EventPublisher receives note changes after they are committed.
type EventPublisher interface {
	PublishNoteEvent(event *domain.NoteEvent)
}

type NoteService struct {
	repo      repository.NoteRepository
	validate  *validator.Validate
	publisher EventPublisher
	now       func() time.Time
}

func NewNoteService(repo repository.NoteRepository, publisher EventPublisher) *NoteService {
	return &NoteService{
		repo:      repo,
		validate:  validator.New(),
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *NoteService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *NoteService) List() ([]*domain.Note, error) {
	notes, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Create(input *domain.NoteInput) (*domain.Note, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	note, err := s.repo.Create(&domain.Note{
		Title:     input.Title,
		Content:   input.Content,
		Date:      now.Format(domain.DateLayout),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.publish(domain.NoteCreated, note)
	return note, nil
}

func (s *NoteService) GetByID(id int64) (*domain.Note, error) {
	note, err := s.repo.FindByID(id)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return note, nil
}

// Update reports ErrNoteNotFound before it looks at the input, so an invalid
// body for a missing note is still a not-found.
func (s *NoteService) Update(id int64, input *domain.NoteInput) (*domain.Note, error) {
	note, err := s.repo.Update(id, func(n *domain.Note) error {
		if err := s.validateInput(input); err != nil {
			return err
		}

		now := s.now()
		if now.Before(n.UpdatedAt) {
			now = n.UpdatedAt
		}

		n.Title = input.Title
		n.Content = input.Content
		n.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	s.publish(domain.NoteUpdated, note)
	return note, nil
}

func (s *NoteService) Delete(id int64) (*domain.Note, error) {
	note, err := s.repo.Delete(id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	s.publish(domain.NoteDeleted, note)
	return note, nil
}

func (s *NoteService) Count() int {
	return s.repo.Count()
}

func (s *NoteService) validateInput(input *domain.NoteInput) error {
	if input == nil {
		return ErrValidation
	}
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func (s *NoteService) publish(eventType domain.NoteEventType, note *domain.Note) {
	if s.publisher == nil {
		return
	}
	event := *note
	s.publisher.PublishNoteEvent(&domain.NoteEvent{Type: eventType, Note: &event})
}

func translateRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNoteNotFound, err)
	}
	return err
}
