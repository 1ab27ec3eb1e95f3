package model

import (
	"time"

	"github.com/google/uuid"
)

// Genre is the fixed enumeration of literary genres.
type Genre string

const (
	GenreFiction        Genre = "fiction"
	GenreNonFiction     Genre = "non_fiction"
	GenreFantasy        Genre = "fantasy"
	GenreScienceFiction Genre = "science_fiction"
	GenreMystery        Genre = "mystery"
	GenreThriller       Genre = "thriller"
	GenreRomance        Genre = "romance"
	GenreHorror         Genre = "horror"
	GenreBiography      Genre = "biography"
	GenreHistorical     Genre = "historical"
	GenreSelfHelp       Genre = "self_help"
	GenreChildren       Genre = "children"
	GenreClassics       Genre = "classics"
	GenrePoetry         Genre = "poetry"
)

func (g Genre) IsValid() bool {
	switch g {
	case GenreFiction, GenreNonFiction, GenreFantasy, GenreScienceFiction,
		GenreMystery, GenreThriller, GenreRomance, GenreHorror,
		GenreBiography, GenreHistorical, GenreSelfHelp, GenreChildren,
		GenreClassics, GenrePoetry:
		return true
	}
	return false
}

func (g Genre) String() string {
	return string(g)
}

// Book is the domain entity. The natural key is (AuthorID, Title): no two
// books by the same author share a title. Copies is the inventory quantity
// and is always positive.
type Book struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
	Genre Genre     `json:"genre" db:"genre"`

	AuthorID uuid.UUID `json:"author_id" db:"author_id"`

	Copies      int     `json:"copies" db:"copies"`
	Description *string `json:"description" db:"description"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
