package models

import "time"

// MaxTitleLength is the hard cap on note titles, enforced in the service.
const MaxTitleLength = 255

// NoteDB represents a note record in the database.
type NoteDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // At most MaxTitleLength characters
	Content   string    `json:"content" db:"content"`       // Free text, never NULL
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Set on create and every update
	UserID    int64     `json:"-" db:"user_id"`             // Owning user
}

// PublicNote is the client-facing projection of a note.
// swagger:model PublicNote
type PublicNote struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteDTO carries the fields for creating or replacing a note.
// Blank or absent title/content are coerced to the empty string by the
// service, never rejected.
// swagger:model CreateNoteDTO
type CreateNoteDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
