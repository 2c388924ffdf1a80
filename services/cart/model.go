package cart

import (
	"context"

	"github.com/grocerly/shopcore/services/catalog"
	"github.com/grocerly/shopcore/services/orders"
)

// Line is a product plus quantity inside the cart.
// Invariants: quantity >= 1, at most one line per product id.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// OrderRecorder captures the checkout snapshot. Implemented by the orders
// store; the cart is its only caller.
type OrderRecorder interface {
	Record(c context.Context, items []orders.Line, total string) (string, error)
}
