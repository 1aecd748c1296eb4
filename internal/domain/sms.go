package domain

import "time"

// SMSMessage is a queued notification row. Dispatch happens outside this
// backend; Sent stays NULL until the sender picks the row up.
type SMSMessage struct {
	ID            int64      `json:"id"`
	CustomerPhone int64      `json:"customer_phone"`
	Content       string     `json:"content"`
	Created       time.Time  `json:"created"`
	Sent          *time.Time `json:"sent,omitempty"`
}
