package ports

import (
	"context"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// AuthRepository defines the interface for account persistence. Create must
// enforce username uniqueness atomically at the storage layer and return
// domain.ErrUserExists when the name is taken.
type AuthRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}
