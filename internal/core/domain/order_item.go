package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOrderItemNotFound = errors.New("order item not found")

// OrderItem is a single line on an order. It is the one entity without an
// updated_at column.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
}
