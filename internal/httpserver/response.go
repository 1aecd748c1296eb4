package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope matches the wire format the frontend consumes: every response is
// either {"success":true,"data":...} or {"success":false,"error":...}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Error: message})
}
