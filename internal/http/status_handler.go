package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusHandler responde los endpoints de estado del servicio.
type StatusHandler struct {
	version string
}

func NewStatusHandler(version string) *StatusHandler {
	return &StatusHandler{version: version}
}

// Root maneja GET /.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "WhatsApp CRM Backend is running!",
		"status":  "success",
		"version": h.version,
	})
}

// Health maneja GET /health.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Backend server is operational",
	})
}

// APITest maneja GET /api/test.
func (h *StatusHandler) APITest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":        "This is a test endpoint",
		"api_version": "v1",
	})
}
