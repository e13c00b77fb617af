package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the lifecycle states of an order. Any status may be
// set from any other; no transition rules are enforced.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidReference marks a write whose foreign key points at a row that
// does not exist. It is always wrapped with the entity name and offending id.
var ErrInvalidReference = errors.New("referenced entity not found")

// Order is a purchase placed by a user. Notes is optional.
type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
