package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/publisher/model"
	"bookshelf-backend/internal/domains/publisher/service"
	"bookshelf-backend/internal/shared/response"
)

// Handler translates HTTP requests into publisher service calls. Every
// failure collapses to the endpoint's fixed generic body; the concrete cause
// is logged before it is swallowed.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetByID - GET /publishers/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Publisher not found")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Int64("publisher_id", id).
			Str("request_id", c.GetString("request_id")).
			Msg("get publisher failed")
		response.Error(c, http.StatusNotFound, "Publisher not found")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Create - POST /publishers
func (h *Handler) Create(c *gin.Context) {
	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("create publisher: malformed body")
		response.Error(c, http.StatusNotAcceptable, "Invalid data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("create publisher failed")
		response.Error(c, http.StatusNotAcceptable, "Invalid data")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ListAuthors - GET /publishers/:id/authors
func (h *Handler) ListAuthors(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Publisher not found")
		return
	}

	authors, err := h.service.ListAuthors(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Int64("publisher_id", id).
			Str("request_id", c.GetString("request_id")).
			Msg("list publisher authors failed")
		response.Error(c, http.StatusNotFound, "Publisher not found")
		return
	}

	response.Success(c, http.StatusOK, authors)
}
