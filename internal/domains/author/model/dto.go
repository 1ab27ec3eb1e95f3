package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const MaxTitleLength = 255

// CreateAuthorRequest - POST /api/authors/
type CreateAuthorRequest struct {
	Title string `json:"title"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
	)
}

// UpdateAuthorRequest - PUT /api/authors/:id
// Pointer fields so only the fields the caller actually sent are applied.
type UpdateAuthorRequest struct {
	Title *string `json:"title,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Length(1, MaxTitleLength),
		),
	)
}

// ApplyToEntity applies the patch to an existing author, field by field.
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Title != nil {
		a.Title = *r.Title
	}
}

// AuthorResponse is the wire representation of an author.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorStat is the book-count aggregate returned by the stat endpoints.
type AuthorStat struct {
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
	Books    int       `json:"books"`
}

func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Title:     a.Title,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Title: r.Title,
	}
}
