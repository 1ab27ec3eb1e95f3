package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DeliveryItem is one candidate record in a delivery batch, not yet resolved
// to a store row. Count is the number of copies being delivered.
type DeliveryItem struct {
	Title       string    `json:"title"`
	Genre       Genre     `json:"genre"`
	AuthorID    uuid.UUID `json:"author_id"`
	Count       int       `json:"count"`
	Description *string   `json:"description,omitempty"`
}

func (i DeliveryItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&i.Genre,
			validation.Required.Error("genre is required"),
			validation.By(genreRule),
		),
		validation.Field(&i.AuthorID,
			validation.Required.Error("author_id is required"),
		),
		validation.Field(&i.Count,
			validation.Required.Error("count is required"),
			validation.Min(1).Error("count must be a positive integer"),
		),
		validation.Field(&i.Description,
			validation.Length(0, MaxDescriptionLength),
		),
	)
}

// ToEntity converts the candidate into a book ready for insertion.
func (i *DeliveryItem) ToEntity() *Book {
	return &Book{
		Title:       i.Title,
		Genre:       i.Genre,
		AuthorID:    i.AuthorID,
		Copies:      i.Count,
		Description: i.Description,
	}
}

// DeliveryStatus is the resolution of one candidate.
type DeliveryStatus string

const (
	// DeliveryInserted - no existing row matched and a new one was created.
	DeliveryInserted DeliveryStatus = "inserted"
	// DeliveryMerged - an existing (author_id, title) row absorbed the count.
	DeliveryMerged DeliveryStatus = "merged"
	// DeliverySkipped - the referenced author does not exist; dropped quietly.
	DeliverySkipped DeliveryStatus = "skipped"
	// DeliveryFailed - validation or store fault for this item only.
	DeliveryFailed DeliveryStatus = "failed"
)

// DeliveryOutcome reports what happened to a single candidate.
type DeliveryOutcome struct {
	Index  int            `json:"index"`
	Title  string         `json:"title"`
	Status DeliveryStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
	BookID *uuid.UUID     `json:"book_id,omitempty"`
}

// DeliveryResult summarizes a whole batch. The batch succeeds even when
// individual items were skipped or failed.
type DeliveryResult struct {
	Message  string            `json:"message"`
	Total    int               `json:"total"`
	Inserted int               `json:"inserted"`
	Merged   int               `json:"merged"`
	Skipped  int               `json:"skipped"`
	Failed   int               `json:"failed"`
	Items    []DeliveryOutcome `json:"items"`
}

// Tally recomputes the summary counters from the per-item outcomes.
func (r *DeliveryResult) Tally() {
	r.Total = len(r.Items)
	r.Inserted, r.Merged, r.Skipped, r.Failed = 0, 0, 0, 0
	for _, item := range r.Items {
		switch item.Status {
		case DeliveryInserted:
			r.Inserted++
		case DeliveryMerged:
			r.Merged++
		case DeliverySkipped:
			r.Skipped++
		case DeliveryFailed:
			r.Failed++
		}
	}
}
