package model

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAuthorRequestValidate(t *testing.T) {
	assert.NoError(t, CreateAuthorRequest{Title: "N. K. Jemisin"}.Validate())
	assert.Error(t, CreateAuthorRequest{}.Validate())
	assert.Error(t, CreateAuthorRequest{Title: strings.Repeat("x", MaxTitleLength+1)}.Validate())
}

func TestUpdateAuthorRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateAuthorRequest{}.Validate(), "an empty patch is a no-op")

	title := "Renamed"
	assert.NoError(t, UpdateAuthorRequest{Title: &title}.Validate())

	empty := ""
	assert.Error(t, UpdateAuthorRequest{Title: &empty}.Validate())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{ErrAuthorNotFound, "AUTHOR_NOT_FOUND", http.StatusNotFound},
		{ErrDuplicateTitle, "DUPLICATE_TITLE", http.StatusBadRequest},
		{ErrAuthorHasBooks, "AUTHOR_HAS_BOOKS", http.StatusForbidden},
		{assert.AnError, "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, ToErrorCode(tt.err))
		assert.Equal(t, tt.status, ToHTTPStatus(tt.err))
	}
}
