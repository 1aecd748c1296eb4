package domain

import "time"

// Article is a physical catalog item. Prices are minor currency units.
type Article struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	SupplierEmail string    `json:"supplier_email,omitempty"`
	DateCreated   time.Time `json:"date_created"`
}

// Subscription is a recurring package, physical or digital.
type Subscription struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Physical    bool      `json:"physical"`
	DateCreated time.Time `json:"date_created"`
}
