// README: Base handler utilities (JSON envelope helpers).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope is the response shape the front-end expects on every API call.
type envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`
	Raw     *string `json:"raw,omitempty"`
	Detail  string  `json:"detail,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, envelope{Success: false, Error: msg})
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
