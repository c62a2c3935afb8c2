package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quicknote/notes-api/internal/api/metrics"
	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
)

// IdempotencyStore abstracts the replay store (Redis) used to make note
// creation safe to retry.
type IdempotencyStore interface {
	Get(ctx context.Context, ownerID, key string) (noteID string, found bool, err error)
	Save(ctx context.Context, ownerID, key, noteID string) error
}

// NoteService implements owner-scoped CRUD and search. The owner identity is
// the first argument of every operation; there is no unscoped entry point.
type NoteService struct {
	repo   ports.NoteRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, idem IdempotencyStore, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, idem: idem, logger: logger}
}

func (s *NoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	defer observe("list")()
	return s.repo.List(ctx, ownerID)
}

// Create validates and persists a new note. When input.IdemKey matches a key
// already recorded for this owner, the note created by the first request is
// returned and nothing is inserted.
func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	defer observe("create")()

	if err := domain.ValidateContent(input.Title, input.Text); err != nil {
		return nil, err
	}

	if input.IdemKey != "" && s.idem != nil {
		noteID, found, err := s.idem.Get(ctx, input.OwnerID, input.IdemKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if found {
			existing, err := s.repo.FindByID(ctx, input.OwnerID, noteID)
			if err == nil {
				metrics.NotesCreatedTotal.WithLabelValues("replay").Inc()
				s.logger.Info().Str("note_id", noteID).Msg("idempotent replay")
				return existing, nil
			}
			// Recorded note is gone (e.g. deleted since); fall through and
			// create a fresh one.
		}
	}

	now := time.Now().UTC()
	note, err := s.repo.Create(ctx, &domain.Note{
		Title:      input.Title,
		Text:       input.Text,
		OwnerID:    input.OwnerID,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create note")
		return nil, err
	}

	if input.IdemKey != "" && s.idem != nil {
		if err := s.idem.Save(ctx, input.OwnerID, input.IdemKey, note.ID); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record idempotency key")
		}
	}

	metrics.NotesCreatedTotal.WithLabelValues("new").Inc()
	s.logger.Info().Str("note_id", note.ID).Str("owner_id", note.OwnerID).Msg("note created")
	return note, nil
}

// Update rewrites title and text of an owned note. The repository applies
// the owner filter in the same operation as the write, so a note owned by
// someone else surfaces as domain.ErrNoteNotFound.
func (s *NoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	defer observe("update")()

	if err := domain.ValidateContent(input.Title, input.Text); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, input.OwnerID, input.NoteID, input.Title, input.Text, time.Now().UTC())
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	defer observe("delete")()

	if err := s.repo.Delete(ctx, ownerID, noteID); err != nil {
		return err
	}
	metrics.NotesDeletedTotal.Inc()
	return nil
}

// Search returns the owner's notes whose title contains query as a
// case-insensitive substring.
func (s *NoteService) Search(ctx context.Context, ownerID, query string) ([]domain.Note, error) {
	defer observe("search")()

	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrMissingQuery
	}
	return s.repo.SearchByTitle(ctx, ownerID, query)
}

// observe times an operation; call as `defer observe("op")()`.
func observe(op string) func() {
	start := time.Now()
	return func() {
		metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
