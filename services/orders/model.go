package orders

import "github.com/grocerly/shopcore/services/catalog"

// Line is one product of an order snapshot, frozen at checkout time.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Order is an immutable checkout snapshot: the cart lines as they were at
// checkout time plus the computed total. Orders are append-only per scope
// and are never mutated or deleted afterwards; deleting the owning
// location only detaches them from the current view.
type Order struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Items []Line `json:"items"`
	Total string `json:"total"`
}

const dateLayout = "2006-01-02"
