package ports

import (
	"context"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// CreateNoteInput carries everything needed to create a note. IdemKey is the
// optional Idempotency-Key header value; when a key has been seen before,
// the note created by the first request is returned instead of a new one.
type CreateNoteInput struct {
	OwnerID string
	Title   string
	Text    string
	IdemKey string
}

type UpdateNoteInput struct {
	OwnerID string
	NoteID  string
	Title   string
	Text    string
}

type NoteService interface {
	List(ctx context.Context, ownerID string) ([]domain.Note, error)
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
	Search(ctx context.Context, ownerID, query string) ([]domain.Note, error)
}
