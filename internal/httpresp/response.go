package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// EmptyList writes the legacy empty-collection response: 404 with an empty
// data array, so clients can tell "nothing here" from a real failure.
func EmptyList(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{
		Status:  false,
		Message: message,
		Data:    []any{},
	})
}
