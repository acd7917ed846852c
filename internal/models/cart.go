// internal/models/cart.go
package models

// CartItem is one line in the shopper's bag. ID is a session-local identifier
// generated when the line is created; merging is decided by the
// (ProductID, Size, Color) identity key, never by ID.
//
// Title, Price and Image are snapshots taken at add time. A catalog reload
// mid-session does not retroactively change lines already in the cart.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// SameSelection reports whether the line matches the identity key of an
// add-to-cart candidate.
func (i *CartItem) SameSelection(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}
