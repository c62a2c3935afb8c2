package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quicknote/notes-api/internal/api/metrics"
	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
	"github.com/quicknote/notes-api/internal/core/token"
)

const minPasswordLen = 5

// AuthService implements signup and login.
type AuthService struct {
	repo   ports.AuthRepository
	issuer *token.Issuer
	cost   int
	logger zerolog.Logger
}

// NewAuthService wires the credential store, token issuer, and bcrypt cost.
// A cost outside bcrypt's supported range falls back to the default.
func NewAuthService(repo ports.AuthRepository, issuer *token.Issuer, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, issuer: issuer, cost: bcryptCost, logger: logger}
}

// Signup creates an account with a bcrypt-hashed password. The username
// uniqueness check happens inside repo.Create, so two concurrent signups for
// the same name cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || len(password) < minPasswordLen {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", username).Msg("account created")
	return account, nil
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password both return domain.ErrInvalidCredentials so the
// response leaks nothing about which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	// Constant-time compare; a malformed stored hash reads as a mismatch.
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return "", domain.ErrInvalidCredentials
	}

	tkn, err := s.issuer.Issue(account.ID, account.Username)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("username", username).Msg("login succeeded")
	return tkn, nil
}
