package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/shared/response"
)

// Handler translates HTTP requests into book service calls. Every write
// failure collapses to 406 "Invalid data"; the concrete cause is logged
// before it is swallowed.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// List - GET /books
func (h *Handler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("list books failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Create - POST /books
func (h *Handler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("create book: malformed body")
		response.Error(c, http.StatusNotAcceptable, "Invalid data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("create book failed")
		response.Error(c, http.StatusNotAcceptable, "Invalid data")
		return
	}

	response.Success(c, http.StatusCreated, created)
}
