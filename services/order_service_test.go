package services

import (
	"net/url"
	"strings"
	"testing"

	"luxehaven_server/structs"
	"luxehaven_server/structs/tables"

	"github.com/google/uuid"
)

func testOrderService() *OrderService {
	cfg := &structs.Config{
		Shop: &structs.ShopConfig{
			WhatsAppNumber: "254722240558",
			Currency:       "KSH",
		},
	}
	return NewOrderService(testLogger(), cfg)
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12500, "12,500"},
		{999999, "999,999"},
		{1250000, "1,250,000"},
	}

	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildWhatsAppOrderMessage(t *testing.T) {
	os := testOrderService()
	product := &tables.Product{
		ID:          uuid.New(),
		Title:       "Midnight Oud",
		Description: "A deep amber oud for evening wear.",
		Price:       12500,
	}

	order := os.BuildWhatsAppOrder(product, 2)

	for _, fragment := range []string{
		"*Midnight Oud*",
		"Price: KSH 12,500",
		"Quantity: 2",
		"Total: KSH 25,000",
		"A deep amber oud for evening wear.",
		"availability and delivery options",
	} {
		if !strings.Contains(order.Message, fragment) {
			t.Fatalf("message missing %q:\n%s", fragment, order.Message)
		}
	}
}

func TestBuildWhatsAppOrderDeepLink(t *testing.T) {
	os := testOrderService()
	product := &tables.Product{
		ID:    uuid.New(),
		Title: "Rose & Pepper",
		Price: 9000,
	}

	order := os.BuildWhatsAppOrder(product, 1)

	if !strings.HasPrefix(order.Link, "https://wa.me/254722240558?text=") {
		t.Fatalf("unexpected link prefix: %s", order.Link)
	}

	// The encoded text must decode back to the exact message
	parsed, err := url.Parse(order.Link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != order.Message {
		t.Fatalf("link text does not round-trip:\ngot:  %q\nwant: %q", got, order.Message)
	}
}
