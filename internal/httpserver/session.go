package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func newSessionHandler(svc sessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, err := svc.Start(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to create cart session")
			return
		}
		respondOK(c, creds)
	}
}
