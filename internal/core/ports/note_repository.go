package ports

import (
	"context"
	"time"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// NoteRepository persists notes. Every method takes the owner identity and
// applies it as part of the storage-level filter in the same operation that
// reads or mutates, so a note owned by someone else is indistinguishable
// from a note that does not exist (domain.ErrNoteNotFound either way).
type NoteRepository interface {
	List(ctx context.Context, ownerID string) ([]domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	FindByID(ctx context.Context, ownerID, noteID string) (*domain.Note, error)
	Update(ctx context.Context, ownerID, noteID, title, text string, modifiedAt time.Time) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
	SearchByTitle(ctx context.Context, ownerID, query string) ([]domain.Note, error)
}
