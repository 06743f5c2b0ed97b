package models

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
)

// ShippingAddress is a postal address for a printed-copy order.
type ShippingAddress struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

// ShippingDetails is the recipient for a printed-copy order.
type ShippingDetails struct {
	Name    string          `json:"name"`
	Address ShippingAddress `json:"address"`
}

// Order is a printed-copy purchase of a published comic. Amount is in minor
// currency units.
type Order struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	ComicID         string           `json:"comicId"`
	Amount          int64            `json:"amount"`
	Currency        string           `json:"currency"`
	Status          string           `json:"status"`
	ShippingDetails *ShippingDetails `json:"shippingDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
