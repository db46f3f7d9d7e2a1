package domain

import (
	"strings"
	"time"
)

type User struct {
	ID              string
	Email           string
	NormalizedEmail string // upper-cased Email, unique
	Username        string // same as Email for self-registered users
	PasswordHash    string // argon2id PHC string
	FirstName       string
	LastName        string
	Gender          string
	Age             int
	PhoneNumber     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizeEmail is the case-folded form used for uniqueness and lookups.
func NormalizeEmail(email string) string {
	return strings.ToUpper(strings.TrimSpace(email))
}

// DisplayName is the token "name" claim.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
