package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")

// Account models a registered user. PasswordHash is a bcrypt digest and is
// never serialised into responses.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
