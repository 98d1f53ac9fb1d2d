package structs

import "github.com/google/uuid"

// ProductSnapshot is the denormalized copy of a product taken when it is
// added to a cart. Later price edits in the catalog do not reprice carts.
type ProductSnapshot struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    uint64    `json:"price"`
	ImageURL string    `json:"image_url,omitempty"`
}

// CartItem is one line entry in a cart, keyed by product. A cart holds at
// most one item per distinct product id; quantity is always >= 1.
type CartItem struct {
	ID        string           `json:"id"`
	ProductID uuid.UUID        `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductSnapshot `json:"product,omitempty"`
}
