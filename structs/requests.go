package structs

import "github.com/google/uuid"

// CartAddRequest adds a product to the cart. Quantity must be positive;
// non-positive quantities are rejected, not clamped.
type CartAddRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// CartUpdateRequest sets an absolute quantity for a cart line. A quantity of
// zero or less removes the line.
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// WhatsAppOrderRequest asks for the pre-filled order message for a product.
type WhatsAppOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// WhatsAppOrder is the rendered hand-off: the free-text message plus the
// wa.me deep link the client opens. Nothing is persisted server-side.
type WhatsAppOrder struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type TrendingCreateRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// TrendingActiveRequest toggles whether a trending entry shows on the
// storefront.
type TrendingActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// ReorderRequest moves a trending entry one rank up or down.
type ReorderRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}
