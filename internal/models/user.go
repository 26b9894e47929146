package models

import "time"

// Role names as stored in the roles table.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64      `json:"id" db:"id"`                 // Primary key
	Username     string     `json:"username" db:"username"`     // Unique username
	Email        string     `json:"email" db:"email"`           // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time  `json:"created_at" db:"created_at"` // Set once at creation
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"` // Refreshed by every patch
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`          // Soft-delete marker, unused in active flows
}

// PublicUser is the client-facing projection of a user.
// swagger:model PublicUser
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Roles     []string  `json:"roles,omitempty"`
}

// CreateUserDTO carries the fields needed to create an account.
// swagger:model CreateUserDTO
type CreateUserDTO struct {
	Username string `json:"username" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PatchUsernameDTO carries a username replacement.
// swagger:model PatchUsernameDTO
type PatchUsernameDTO struct {
	Username string `json:"username" validate:"required,max=20"`
}

// PatchEmailDTO carries an email replacement.
// swagger:model PatchEmailDTO
type PatchEmailDTO struct {
	Email string `json:"email" validate:"required,email"`
}

// PatchPasswordDTO carries a plaintext password to be re-hashed.
// swagger:model PatchPasswordDTO
type PatchPasswordDTO struct {
	Password string `json:"password" validate:"required"`
}
