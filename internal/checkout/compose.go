package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sherlinsilvia14/MKV-co/internal/domain/cart"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

var (
	ErrMissingAddress = errors.New("missing address")
	ErrEmptyCart      = errors.New("cart is empty")
)

// Order is a rendered order message and the WhatsApp deep link carrying it.
// Opening the link is the caller's business; composing mutates nothing.
type Order struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Composer renders order messages targeting the shop's WhatsApp contact.
type Composer struct {
	Contact string // destination number, static configuration
	BaseURL string // public site base, used for product links
}

// ComposeCartOrder renders every cart line numbered with its line total,
// followed by the subtotal, delivery address and generation time.
func (cp Composer) ComposeCartOrder(crt *cart.Cart, address string, at time.Time) (Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Order{}, ErrMissingAddress
	}
	if crt.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString("*New Order Request*\n\n")
	for i, ln := range crt.Lines() {
		fmt.Fprintf(&b, "*%d. %s*\n   - Qty: %d\n   - Price: ₹%s\n   - Total: ₹%s\n\n",
			i+1, ln.Name, ln.Quantity, amount(ln.Price), amount(ln.Price*float64(ln.Quantity)))
	}
	fmt.Fprintf(&b, "*Order Subtotal: ₹%s*\n\n", amount(crt.Subtotal()))
	fmt.Fprintf(&b, "*Customer Address:* %s\n\n", address)
	fmt.Fprintf(&b, "*Time:* %s", at.Format(time.RFC1123))

	text := b.String()
	return Order{Text: text, URL: cp.link(text)}, nil
}

// ComposeSingleItemOrder is the buy-now path from the product detail view:
// one product, one quantity, plus a link back to the product page.
func (cp Composer) ComposeSingleItemOrder(p product.Product, qty int, address string) (Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Order{}, ErrMissingAddress
	}
	if qty < 1 {
		qty = 1
	}

	text := fmt.Sprintf(
		"*Order Request*\n\n*Product:* %s\n*Price:* ₹%s\n*Quantity:* %d\n*Total:* ₹%s\n\n*Customer Address:* %s\n\n*Product Link:* %s/product/%d",
		p.Name, amount(p.Price), qty, amount(p.Price*float64(qty)), address,
		strings.TrimRight(cp.BaseURL, "/"), p.ID,
	)
	return Order{Text: text, URL: cp.link(text)}, nil
}

func (cp Composer) link(text string) string {
	u := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + cp.Contact}
	q := url.Values{}
	q.Set("text", text)
	u.RawQuery = q.Encode()
	return u.String()
}

// amount echoes the computed value without imposing extra rounding.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
