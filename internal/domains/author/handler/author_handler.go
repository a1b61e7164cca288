package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/author/service"
	"bookshelf-backend/internal/shared/response"
)

// Handler translates HTTP requests into author service calls. Every failure
// on these endpoints collapses to the fixed "Author not found" / "Invalid
// data" bodies; the concrete cause is logged before it is swallowed.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetByID - GET /authors/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Int64("author_id", id).
			Str("request_id", c.GetString("request_id")).
			Msg("get author failed")
		response.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Create - POST /authors
func (h *Handler) Create(c *gin.Context) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("create author: malformed body")
		response.Error(c, http.StatusNotAcceptable, "Invalid data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("create author failed")
		response.Error(c, http.StatusNotAcceptable, "Invalid data")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Delete - DELETE /author/:id
// Path is singular; existing clients depend on it.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	if err := h.service.DeleteCascade(c.Request.Context(), id); err != nil {
		log.Warn().Err(err).Int64("author_id", id).
			Str("request_id", c.GetString("request_id")).
			Msg("delete author failed")
		response.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	response.NoContent(c)
}

// ListPublishers - GET /authors/:id/publishers
func (h *Handler) ListPublishers(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	publishers, err := h.service.ListPublishers(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Int64("author_id", id).
			Str("request_id", c.GetString("request_id")).
			Msg("list author publishers failed")
		response.Error(c, http.StatusNotFound, "Author not found")
		return
	}

	response.Success(c, http.StatusOK, publishers)
}
