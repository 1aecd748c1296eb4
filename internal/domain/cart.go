package domain

import (
	"encoding/json"
	"time"
)

// Cart is one anonymous shopping session. The (Session, Pwd) pair is the only
// credential; whoever holds both tokens owns the cart.
type Cart struct {
	Session      string
	Pwd          string
	Content      string
	Phone        *int64
	Submitted    bool
	DateModified time.Time
	Items        []LineItem
}

// LineItem references either an article or a subscription. The two id spaces
// are independent; which catalog an id belongs to is resolved at order time.
type LineItem struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

// ParseCartLines decodes the stored cart blob into line items. An empty blob
// is an empty cart, not an error.
func ParseCartLines(blob string) ([]LineItem, error) {
	if blob == "" {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// EncodeCartLines serializes line items into the blob form carts store.
func EncodeCartLines(items []LineItem) (string, error) {
	if items == nil {
		items = []LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
