package domain

import "time"

// Order statuses. Only the transition to StatusProcessed exists, and it is
// performed by the ops surface, never by this backend.
const (
	StatusNeedsProcessing = "NEEDS TO BE PROCESSED"
	StatusProcessed       = "PROCESSED"
)

// Order is an immutable record of one submitted cart. The article and
// subscription lists are snapshots taken at submission time; later catalog
// edits do not affect them.
type Order struct {
	ID            int64
	OrderNumber   int64
	CustomerPhone string
	Status        string
	Price         int64
	Articles      []OrderArticle
	Subscriptions []OrderSubscription
	SessionID     string
	DateCreated   time.Time
}

// OrderArticle is an article line frozen into an order.
type OrderArticle struct {
	ID     int64  `json:"id"`
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
}

// OrderSubscription is a subscription line frozen into an order.
type OrderSubscription struct {
	ID          int64  `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// PurchaseView aggregates a session's processed orders: article amounts summed
// across every matching order, subscriptions taken from the newest order only.
type PurchaseView struct {
	Articles      []PurchasedArticle      `json:"articles"`
	Subscriptions []PurchasedSubscription `json:"subscriptions"`
}

type PurchasedArticle struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

type PurchasedSubscription struct {
	ID int64 `json:"id"`
}
