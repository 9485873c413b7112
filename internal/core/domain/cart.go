package domain

import "errors"

var ErrCartNotFound = errors.New("cart not found")

// CartLine references a product by id; product data is never denormalized
// into the stored cart. Invariant: a cart holds at most one line per product,
// adding an already-present product increments its quantity instead.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is the persisted shape: one cart per user, created lazily on the
// first add.
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

// ResolvedLine is a cart line with its product snapshot joined in at read
// time, so price or description changes show up on the next fetch.
type ResolvedLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ResolvedCart is the view returned by every cart operation.
type ResolvedCart struct {
	UserID string         `json:"user_id"`
	Items  []ResolvedLine `json:"items"`
	Total  float64        `json:"total"`
}
