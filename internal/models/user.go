package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Email is unique case-insensitively;
// the repository layer enforces that via a unique index on lower(email).
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"not null" json:"email" validate:"required,email"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the only representation of a user ever sent to a client.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
