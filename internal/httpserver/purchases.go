package httpserver

import (
	"errors"
	"net/http"

	"creatim-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

func purchasesHandler(svc purchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		pwd := c.Query("pwd")
		if sessionID == "" || pwd == "" {
			respondError(c, http.StatusBadRequest, "Missing session_id or pwd parameters")
			return
		}

		var phone *string
		if p := c.Query("phone"); p != "" {
			phone = &p
		}

		view, err := svc.Get(c.Request.Context(), sessionID, pwd, phone)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "Invalid session credentials")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondOK(c, view)
	}
}
