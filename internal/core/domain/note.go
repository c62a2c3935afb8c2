package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLen = 50
	MaxTextLen  = 300
)

var ErrInvalidNote = errors.New("invalid note")
var ErrNoteNotFound = errors.New("note not found")
var ErrMissingQuery = errors.New("search query missing")

// Note is a single user-owned note. OwnerID ties the note to the account
// that created it; every repository operation filters on it.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	OwnerID    string    `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ValidateContent checks the title and text limits shared by create and
// update. Lengths are counted in runes so multi-byte input is not penalised.
func ValidateContent(title, text string) error {
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return ErrInvalidNote
	}
	if text == "" || utf8.RuneCountInString(text) > MaxTextLen {
		return ErrInvalidNote
	}
	return nil
}
