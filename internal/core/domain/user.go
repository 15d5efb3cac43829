package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	UserNameMinLen = 2
	UserNameMaxLen = 64

	PasswordMinLen = 6
)

// User models an account identity. PasswordHash never leaves the process:
// it is excluded from JSON and from every response mapper.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role. Safe on nil,
// which represents an anonymous principal.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the accepted role values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// NormalizeUserName trims surrounding whitespace.
func NormalizeUserName(userName string) string {
	return strings.TrimSpace(userName)
}

// NormalizeEmail lowercases and trims, matching how emails are stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidUserName reports whether the normalized username satisfies the
// length bounds. Lengths count runes, not bytes, so multibyte names are
// measured the way users perceive them.
func ValidUserName(userName string) bool {
	n := utf8.RuneCountInString(userName)
	return n >= UserNameMinLen && n <= UserNameMaxLen
}

// ValidPassword reports whether a raw password meets the minimum length.
func ValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= PasswordMinLen
}
