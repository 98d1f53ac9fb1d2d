package cart

import (
	"errors"
	"net/http"

	"luxehaven_server/lib"
	"luxehaven_server/services"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// cartToken returns the caller's cart token, minting a fresh one when the
// header is absent. The token is always echoed back so the client can store it.
func (crm *CartRoutesManager) cartToken(w http.ResponseWriter, r *http.Request) string {
	token := r.Header.Get(CartTokenHeader)
	if token == "" {
		token = uuid.NewString()
	}
	w.Header().Set(CartTokenHeader, token)
	return token
}

func (crm *CartRoutesManager) sendCart(w http.ResponseWriter, items []structs.CartItem) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items":       items,
			"total_items": services.TotalItems(items),
			"total_price": services.TotalPrice(items),
		}),
		gecho.Send(),
	)
}

// FetchCart handles GET /cart. An unknown or corrupt cart reads as empty.
func (crm *CartRoutesManager) FetchCart(w http.ResponseWriter, r *http.Request) {
	token := crm.cartToken(w, r)
	items := crm.cartService.GetCart(r.Context(), token)
	crm.sendCart(w, items)
}

// AddItem handles POST /cart/items. Adding a product already in the cart
// merges quantities onto the existing line.
func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.CartAddRequest](r)
	if err != nil {
		crm.logger.Warn("Invalid cart add request", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequest"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	product, err := crm.productService.GetProductByID(ctx, body.ProductID, true)
	if err != nil {
		crm.logger.Error("Failed to fetch product for cart", gecho.Field("product_id", body.ProductID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToAdd"),
			gecho.Send(),
		)
		return
	}
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.notFound"),
			gecho.Send(),
		)
		return
	}

	token := crm.cartToken(w, r)
	items, err := crm.cartService.AddToCart(ctx, token, product, body.Quantity)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidQuantity) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.cart.invalidQuantity"),
				gecho.Send(),
			)
			return
		}
		crm.logger.Error("Failed to persist cart", gecho.Field("token", token), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToAdd"),
			gecho.Send(),
		)
		return
	}

	crm.sendCart(w, items)
}

// UpdateItem handles PATCH /cart/items/{productId}. The quantity is absolute;
// zero or less removes the line.
func (crm *CartRoutesManager) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CartUpdateRequest](r)
	if err != nil {
		crm.logger.Warn("Invalid cart update request", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.invalidRequest"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	token := crm.cartToken(w, r)
	items, err := crm.cartService.UpdateQuantity(ctx, token, productID, body.Quantity)
	if err != nil {
		crm.logger.Error("Failed to persist cart", gecho.Field("token", token), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToUpdate"),
			gecho.Send(),
		)
		return
	}

	crm.sendCart(w, items)
}

// RemoveItem handles DELETE /cart/items/{productId}. Removing an absent
// product leaves the cart unchanged.
func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	token := crm.cartToken(w, r)
	items, err := crm.cartService.RemoveFromCart(ctx, token, productID)
	if err != nil {
		crm.logger.Error("Failed to persist cart", gecho.Field("token", token), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToRemove"),
			gecho.Send(),
		)
		return
	}

	crm.sendCart(w, items)
}

// ClearCart handles DELETE /cart, emptying the cart in one call.
func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	token := crm.cartToken(w, r)

	if err := crm.cartService.ClearCart(r.Context(), token); err != nil {
		crm.logger.Error("Failed to clear cart", gecho.Field("token", token), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cart.failedToClear"),
			gecho.Send(),
		)
		return
	}

	crm.sendCart(w, []structs.CartItem{})
}
