package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshop-backend/internal/domains/author/model"
	"bookshop-backend/internal/domains/author/service"
	"bookshop-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(service service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// GetAll - GET /api/authors/
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]*model.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		resp = append(resp, a.ToResponse())
	}

	response.Success(c, http.StatusOK, resp)
}

// Create - POST /api/authors/
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID - GET /api/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, author.ToResponse())
}

// Update - PUT /api/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /api/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"detail": "Author deleted"})
}

// GetStats - GET /api/authors/stat
func (h *AuthorHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if stats == nil {
		stats = []model.AuthorStat{}
	}

	response.Success(c, http.StatusOK, stats)
}

// GetStatByID - GET /api/authors/:id/stat
func (h *AuthorHandler) GetStatByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	stat, err := h.service.GetStatByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stat)
}

func (h *AuthorHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("author handler error")
		response.InternalServerError(c, "internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
