package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 500
	MaxDescriptionLength = 10000
)

// genreRule validates a Genre value for ozzo-validation.
func genreRule(value interface{}) error {
	switch g := value.(type) {
	case Genre:
		if g != "" && !g.IsValid() {
			return validation.NewError("validation_invalid_genre", "must be a valid literary genre")
		}
	case *Genre:
		if g != nil && !g.IsValid() {
			return validation.NewError("validation_invalid_genre", "must be a valid literary genre")
		}
	}
	return nil
}

// CreateBookRequest - POST /api/books/
type CreateBookRequest struct {
	Title       string    `json:"title"`
	Genre       Genre     `json:"genre"`
	AuthorID    uuid.UUID `json:"author_id"`
	Copies      int       `json:"copies"`
	Description *string   `json:"description,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.By(genreRule),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
		),
		validation.Field(&r.Copies,
			validation.Required.Error("copies is required"),
			validation.Min(1).Error("copies must be a positive integer"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength),
		),
	)
}

func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:       r.Title,
		Genre:       r.Genre,
		AuthorID:    r.AuthorID,
		Copies:      r.Copies,
		Description: r.Description,
	}
}

// UpdateBookRequest - PUT /api/books/:id
// Pointer fields give PATCH behaviour: only what the caller sent is applied.
// The author reference is immutable once a book exists.
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Genre       *Genre  `json:"genre,omitempty"`
	Copies      *int    `json:"copies,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Genre,
			validation.By(genreRule),
		),
		validation.Field(&r.Copies,
			validation.Min(1).Error("copies must be a positive integer"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength),
		),
	)
}

// ApplyToEntity applies the patch to an existing book, field by field.
func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Genre != nil {
		b.Genre = *r.Genre
	}
	if r.Copies != nil {
		b.Copies = *r.Copies
	}
	if r.Description != nil {
		b.Description = r.Description
	}
}

// BookResponse is the wire representation of a book.
type BookResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Genre       Genre     `json:"genre"`
	AuthorID    uuid.UUID `json:"author_id"`
	Copies      int       `json:"copies"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Genre:       b.Genre,
		AuthorID:    b.AuthorID,
		Copies:      b.Copies,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
