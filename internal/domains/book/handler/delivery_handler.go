package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/internal/domains/book/service"
	"bookshop-backend/internal/shared/response"
)

type DeliveryHandler struct {
	service service.DeliveryServiceInterface
}

func NewDeliveryHandler(service service.DeliveryServiceInterface) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

// Deliver - POST /api/books/delivery
// Body: a JSON array of candidate records. The endpoint is deliberately
// permissive: items that cannot be resolved are reported in the per-item
// outcome list, and the call itself still succeeds.
func (h *DeliveryHandler) Deliver(c *gin.Context) {
	var items []model.DeliveryItem
	if err := c.ShouldBindJSON(&items); err != nil {
		response.BadRequest(c, "request body must be a JSON array of delivery items")
		return
	}

	log.Info().
		Str("request_id", c.GetString("request_id")).
		Int("items", len(items)).
		Msg("delivery batch received")

	result, err := h.service.Deliver(c.Request.Context(), items)
	if err != nil {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("delivery batch fault")
		response.InternalServerError(c, "delivery failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}
