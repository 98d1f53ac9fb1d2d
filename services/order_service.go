package services

import (
	"fmt"
	"luxehaven_server/structs"
	"luxehaven_server/structs/tables"
	"net/url"
	"strings"

	"github.com/MonkyMars/gecho"
)

// OrderService renders the WhatsApp order hand-off: a pre-filled free-text
// message and a wa.me deep link addressed to the shop contact. Orders are
// user-confirmed in the chat and are not persisted server-side.
type OrderService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config) *OrderService {
	return &OrderService{
		logger: logger,
		cfg:    cfg,
	}
}

// BuildWhatsAppOrder renders the order message for one product and quantity
func (os *OrderService) BuildWhatsAppOrder(product *tables.Product, quantity int) *structs.WhatsAppOrder {
	currency := os.cfg.Shop.Currency
	total := product.Price * uint64(quantity)

	message := fmt.Sprintf(`Hello! I'm interested in ordering this product:

*%s*
Price: %s %s
Quantity: %d
Total: %s %s

%s

Please let me know about availability and delivery options.`,
		product.Title,
		currency, FormatAmount(product.Price),
		quantity,
		currency, FormatAmount(total),
		product.Description,
	)

	return &structs.WhatsAppOrder{
		Message: message,
		Link:    os.deepLink(message),
	}
}

func (os *OrderService) deepLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", os.cfg.Shop.WhatsAppNumber, url.QueryEscape(message))
}

// FormatAmount renders a minor-unit-free amount with thousands separators,
// e.g. 1250000 -> "1,250,000"
func FormatAmount(amount uint64) string {
	digits := fmt.Sprintf("%d", amount)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
