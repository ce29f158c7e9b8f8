package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        string
	Name      string
	Email     string
	Password  password
	FirstName string
	LastName  string
	Mobile    string
	Birthday  string
	Gender    string
	Married   string
	IsAdmin   bool
	CreatedAt time.Time
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

// ProfileUpdate carries the full set of editable profile fields. Missing form
// fields default to the empty string and the whole set overwrites whatever is
// stored; there is no partial merge.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Mobile    string
	Birthday  string
	Gender    string
	Married   string
}

// DisplayName derives the user-facing name from the submitted first and last
// names, keeping the previous name when both are blank.
func (p ProfileUpdate) DisplayName(previous string) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return previous
	}

	return name
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, email, name string, update ProfileUpdate) error
	SetAdmin(ctx context.Context, email string) error
}
