package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"creatim-shop/internal/domain"
	sessionsvc "creatim-shop/internal/service/session"
	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Cart         string    `json:"cart"`
	Phone        *int64    `json:"phone"`
	Submitted    bool      `json:"submitted"`
	DateModified time.Time `json:"date_modified"`
}

type updateCartRequest struct {
	SessionID string          `json:"session_id"`
	Pwd       string          `json:"pwd"`
	Cart      json.RawMessage `json:"cart"`
	Phone     *string         `json:"phone"`
}

func getCartHandler(svc sessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		pwd := c.Query("pwd")
		if sessionID == "" || pwd == "" {
			respondError(c, http.StatusBadRequest, "Missing session_id or pwd parameters")
			return
		}

		cart, err := svc.GetCart(c.Request.Context(), sessionID, pwd)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusUnauthorized, "Invalid session credentials")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondOK(c, cartResponse{
			Cart:         cart.Content,
			Phone:        cart.Phone,
			Submitted:    cart.Submitted,
			DateModified: cart.DateModified,
		})
	}
}

func updateCartHandler(svc sessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.SessionID == "" || req.Pwd == "" {
			respondError(c, http.StatusBadRequest, "Missing session_id or pwd in request body")
			return
		}
		if len(req.Cart) == 0 {
			respondError(c, http.StatusBadRequest, "Missing cart data in request body")
			return
		}

		if req.Phone != nil && *req.Phone != "" && !isDigits(*req.Phone) {
			respondError(c, http.StatusBadRequest, "Phone number must contain only digits")
			return
		}

		// A submitted cart is rejected here; the store itself would reset and
		// accept, but the public API makes clients start over explicitly.
		submitted, err := svc.IsSubmitted(c.Request.Context(), req.SessionID, req.Pwd)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if submitted {
			respondError(c, http.StatusForbidden, "Cannot update cart. This cart has already been submitted.")
			return
		}

		content := serializedCart(req.Cart)
		if err := svc.UpdateCart(c.Request.Context(), req.SessionID, req.Pwd, content); err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "Invalid session credentials or update failed")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		var phone *int64
		if req.Phone != nil {
			if err := svc.UpdatePhone(c.Request.Context(), req.SessionID, req.Pwd, *req.Phone); err != nil {
				if errors.Is(err, sessionsvc.ErrInvalidPhone) {
					respondError(c, http.StatusBadRequest, "Phone number must contain only digits")
					return
				}
				respondError(c, http.StatusInternalServerError, "Internal server error")
				return
			}
			if *req.Phone != "" {
				if n, err := strconv.ParseInt(*req.Phone, 10, 64); err == nil {
					phone = &n
				}
			}
		}

		respondMessage(c, gin.H{"cart": content, "phone": phone}, "Cart updated successfully")
	}
}

// serializedCart keeps the stored blob identical to what the client sent: a
// JSON string payload is stored unquoted, anything else verbatim.
func serializedCart(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
