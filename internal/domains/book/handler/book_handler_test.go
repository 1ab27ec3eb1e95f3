package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop-backend/internal/domains/book/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBookService struct {
	book  *model.Book
	books []model.Book
	err   error

	topLimit int
}

func (s *stubBookService) Create(context.Context, *model.CreateBookRequest) (*model.Book, error) {
	return s.book, s.err
}

func (s *stubBookService) GetByID(context.Context, uuid.UUID) (*model.Book, error) {
	return s.book, s.err
}

func (s *stubBookService) GetAll(context.Context) ([]model.Book, error) {
	return s.books, s.err
}

func (s *stubBookService) Update(context.Context, uuid.UUID, *model.UpdateBookRequest) (*model.Book, error) {
	return s.book, s.err
}

func (s *stubBookService) Delete(context.Context, uuid.UUID) error {
	return s.err
}

func (s *stubBookService) TopByCopies(_ context.Context, limit int) ([]model.Book, error) {
	s.topLimit = limit
	return s.books, s.err
}

func newBookRouter(s *stubBookService) *gin.Engine {
	h := NewBookHandler(s)
	r := gin.New()
	r.GET("/api/books/", h.GetAll)
	r.POST("/api/books/", h.Create)
	r.GET("/api/books/copies/", h.TopByCopies)
	r.GET("/api/books/:id", h.GetByID)
	r.PUT("/api/books/:id", h.Update)
	r.DELETE("/api/books/:id", h.Delete)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestBookCreate(t *testing.T) {
	authorID := uuid.New()
	stub := &stubBookService{
		book: &model.Book{ID: uuid.New(), Title: "Kindred", Genre: model.GenreFiction, AuthorID: authorID, Copies: 2},
	}
	r := newBookRouter(stub)

	body := `{"title": "Kindred", "genre": "fiction", "author_id": "` + authorID.String() + `", "copies": 2}`
	w := doRequest(t, r, http.MethodPost, "/api/books/", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Kindred", data["title"])
	assert.Equal(t, float64(2), data["copies"])
}

func TestBookCreateRejectsUnknownGenre(t *testing.T) {
	r := newBookRouter(&stubBookService{})

	body := `{"title": "Kindred", "genre": "cooking", "author_id": "` + uuid.NewString() + `", "copies": 2}`
	w := doRequest(t, r, http.MethodPost, "/api/books/", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookCreateMissingAuthorIsBadRequest(t *testing.T) {
	r := newBookRouter(&stubBookService{err: model.ErrAuthorNotFound})

	body := `{"title": "Orphan", "genre": "fiction", "author_id": "` + uuid.NewString() + `", "copies": 1}`
	w := doRequest(t, r, http.MethodPost, "/api/books/", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	errObj := envelope["error"].(map[string]interface{})
	assert.Equal(t, "AUTHOR_NOT_FOUND", errObj["code"])
}

func TestBookGetByIDNotFound(t *testing.T) {
	r := newBookRouter(&stubBookService{err: model.ErrBookNotFound})

	w := doRequest(t, r, http.MethodGet, "/api/books/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookUpdateRejectsEmptyTitle(t *testing.T) {
	r := newBookRouter(&stubBookService{})

	w := doRequest(t, r, http.MethodPut, "/api/books/"+uuid.NewString(), `{"title": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookTopByCopies(t *testing.T) {
	stub := &stubBookService{
		books: []model.Book{
			{ID: uuid.New(), Title: "Most Stocked", Genre: model.GenreFantasy, AuthorID: uuid.New(), Copies: 90},
			{ID: uuid.New(), Title: "Second", Genre: model.GenreFantasy, AuthorID: uuid.New(), Copies: 40},
		},
	}
	r := newBookRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/books/copies/?top=2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, stub.topLimit)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Most Stocked", first["title"])
}

func TestBookTopByCopiesDefaultsWithoutParam(t *testing.T) {
	stub := &stubBookService{}
	r := newBookRouter(stub)

	w := doRequest(t, r, http.MethodGet, "/api/books/copies/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, stub.topLimit, "handler passes zero, the service applies the default")
}

func TestBookTopByCopiesRejectsBadParam(t *testing.T) {
	r := newBookRouter(&stubBookService{})

	for _, q := range []string{"top=abc", "top=0", "top=-3"} {
		w := doRequest(t, r, http.MethodGet, "/api/books/copies/?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q should be rejected", q)
	}
}

func TestBookDelete(t *testing.T) {
	r := newBookRouter(&stubBookService{})

	w := doRequest(t, r, http.MethodDelete, "/api/books/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Book deleted")
}
