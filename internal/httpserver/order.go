package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"creatim-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

// smsThanksMessage is queued for the customer after a successful submission.
const smsThanksMessage = "Thank you for your order! Your order will be processed as soon as possible by our team. - Creatim"

type submitOrderRequest struct {
	SessionID     string `json:"session_id"`
	Pwd           string `json:"pwd"`
	CustomerPhone string `json:"customer_phone"`
}

type orderResponse struct {
	OrderID       int64                      `json:"order_id"`
	OrderNumber   int64                      `json:"order_number"`
	Status        string                     `json:"status"`
	TotalPrice    int64                      `json:"total_price"`
	Articles      []domain.OrderArticle      `json:"articles"`
	Subscriptions []domain.OrderSubscription `json:"subscriptions"`
	Phone         string                     `json:"phone"`
}

func submitOrderHandler(sessions sessionService, orders orderService, sms smsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.SessionID == "" || req.Pwd == "" {
			respondError(c, http.StatusBadRequest, "Missing session_id or pwd in request body")
			return
		}

		// The cart's stored phone wins; the request body is the fallback.
		phone := req.CustomerPhone
		if cart, err := sessions.GetCart(c.Request.Context(), req.SessionID, req.Pwd); err == nil && cart.Phone != nil {
			phone = strconv.FormatInt(*cart.Phone, 10)
		}
		if phone == "" {
			respondError(c, http.StatusBadRequest, "Phone number is required to submit an order")
			return
		}
		if !isDigits(phone) {
			respondError(c, http.StatusBadRequest, "Phone number must contain only digits")
			return
		}

		ord, err := orders.Submit(c.Request.Context(), req.SessionID, req.Pwd, phone)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrEmptyCart) {
				respondError(c, http.StatusBadRequest, "Failed to submit order. Invalid session or empty cart.")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		// Best effort; the order stands even if the notification cannot be queued.
		if phoneInt, err := strconv.ParseInt(phone, 10, 64); err == nil {
			sms.Store(c.Request.Context(), phoneInt, smsThanksMessage)
		}

		respondMessage(c, orderResponse{
			OrderID:       ord.ID,
			OrderNumber:   ord.OrderNumber,
			Status:        ord.Status,
			TotalPrice:    ord.Price,
			Articles:      ord.Articles,
			Subscriptions: ord.Subscriptions,
			Phone:         phone,
		}, "Order submitted successfully")
	}
}

func listOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		pwd := c.Query("pwd")
		if sessionID == "" || pwd == "" {
			respondError(c, http.StatusBadRequest, "Missing session_id or pwd parameters")
			return
		}

		list, err := orders.History(c.Request.Context(), sessionID, pwd)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "Invalid session credentials")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]orderResponse, 0, len(list))
		for _, ord := range list {
			resp = append(resp, orderResponse{
				OrderID:       ord.ID,
				OrderNumber:   ord.OrderNumber,
				Status:        ord.Status,
				TotalPrice:    ord.Price,
				Articles:      ord.Articles,
				Subscriptions: ord.Subscriptions,
				Phone:         ord.CustomerPhone,
			})
		}
		respondOK(c, resp)
	}
}
