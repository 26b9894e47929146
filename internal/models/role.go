package models

// RoleDB represents a role record. Role rows are created lazily on first
// reference and are never deleted by user or note operations.
type RoleDB struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
