package ports

import (
	"context"

	"github.com/quicknote/notes-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, error)
}
