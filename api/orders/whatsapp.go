package orders

import (
	"net/http"

	"luxehaven_server/lib"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
)

// BuildWhatsAppOrder handles POST /orders/whatsapp. No order is persisted;
// the response carries a pre-filled message and a wa.me deep link the client
// opens to finish the purchase over chat.
func (orm *OrderRoutesManager) BuildWhatsAppOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.WhatsAppOrderRequest](r)
	if err != nil {
		orm.logger.Warn("Invalid WhatsApp order request", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidRequest"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	product, err := orm.productService.GetProductByID(ctx, body.ProductID, false)
	if err != nil {
		orm.logger.Error("Failed to fetch product for order", gecho.Field("product_id", body.ProductID), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.orders.failedToBuild"),
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

	order := orm.orderService.BuildWhatsAppOrder(product, body.Quantity)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"order": order,
		}),
		gecho.Send(),
	)
}
