package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity. Title is the author's display name and is
// unique across the table; books reference authors by ID.
type Author struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
