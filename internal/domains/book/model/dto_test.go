package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreIsValid(t *testing.T) {
	valid := []Genre{
		GenreFiction, GenreNonFiction, GenreFantasy, GenreScienceFiction,
		GenreMystery, GenreThriller, GenreRomance, GenreHorror,
		GenreBiography, GenreHistorical, GenreSelfHelp, GenreChildren,
		GenreClassics, GenrePoetry,
	}
	for _, g := range valid {
		assert.True(t, g.IsValid(), "genre %q should be valid", g)
	}

	assert.False(t, Genre("western").IsValid())
	assert.False(t, Genre("Fantasy").IsValid(), "genres are lowercase on the wire")
	assert.False(t, Genre("").IsValid())
}

func TestCreateBookRequestValidate(t *testing.T) {
	valid := CreateBookRequest{
		Title:    "A Wizard of Earthsea",
		Genre:    GenreFantasy,
		AuthorID: uuid.New(),
		Copies:   3,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateBookRequest)
	}{
		{"missing title", func(r *CreateBookRequest) { r.Title = "" }},
		{"title too long", func(r *CreateBookRequest) { r.Title = strings.Repeat("x", MaxTitleLength+1) }},
		{"missing genre", func(r *CreateBookRequest) { r.Genre = "" }},
		{"unknown genre", func(r *CreateBookRequest) { r.Genre = "western" }},
		{"missing author", func(r *CreateBookRequest) { r.AuthorID = uuid.Nil }},
		{"zero copies", func(r *CreateBookRequest) { r.Copies = 0 }},
		{"negative copies", func(r *CreateBookRequest) { r.Copies = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestUpdateBookRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateBookRequest{}.Validate(), "an empty patch is a no-op, not an error")

	title := "New Title"
	genre := GenreHorror
	copies := 2
	assert.NoError(t, UpdateBookRequest{Title: &title, Genre: &genre, Copies: &copies}.Validate())

	empty := ""
	assert.Error(t, UpdateBookRequest{Title: &empty}.Validate())

	bad := Genre("western")
	assert.Error(t, UpdateBookRequest{Genre: &bad}.Validate())

	zero := 0
	assert.Error(t, UpdateBookRequest{Copies: &zero}.Validate())
}

func TestUpdateBookRequestApplyToEntity(t *testing.T) {
	desc := "original description"
	book := Book{
		Title:       "Before",
		Genre:       GenreMystery,
		AuthorID:    uuid.New(),
		Copies:      4,
		Description: &desc,
	}

	copies := 9
	patch := UpdateBookRequest{Copies: &copies}
	patch.ApplyToEntity(&book)

	assert.Equal(t, 9, book.Copies)
	assert.Equal(t, "Before", book.Title)
	assert.Equal(t, GenreMystery, book.Genre)
	require.NotNil(t, book.Description)
	assert.Equal(t, "original description", *book.Description)
}

func TestDeliveryItemValidate(t *testing.T) {
	valid := DeliveryItem{
		Title:    "The Dispossessed",
		Genre:    GenreScienceFiction,
		AuthorID: uuid.New(),
		Count:    5,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Count = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.AuthorID = uuid.Nil
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Genre = "cooking"
	assert.Error(t, bad.Validate())
}

func TestDeliveryResultTally(t *testing.T) {
	r := DeliveryResult{Items: []DeliveryOutcome{
		{Status: DeliveryInserted},
		{Status: DeliveryInserted},
		{Status: DeliveryMerged},
		{Status: DeliverySkipped},
		{Status: DeliveryFailed},
	}}

	r.Tally()

	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 2, r.Inserted)
	assert.Equal(t, 1, r.Merged)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Failed)
}
