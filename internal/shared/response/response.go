package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the fixed error shape of the API: a single generic message,
// never field-level detail.
type ErrorBody struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
