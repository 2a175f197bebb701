package cart

import "github.com/Sherlinsilvia14/MKV-co/internal/domain/product"

// Line holds a snapshot of the product's display fields captured when it was
// added, so later catalog changes do not rewrite an open cart.
type Line struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Cart keeps at most one line per product id, in insertion order. It is
// session-scoped, single-writer state; no locking.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddOrIncrement merges into an existing line for the same product, otherwise
// appends a new one. Quantities below 1 are treated as 1.
func (c *Cart) AddOrIncrement(p product.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  qty,
	})
}

// DecrementOrRemove drops the quantity by one, removing the line when it
// would reach zero. Unknown ids are a no-op.
func (c *Cart) DecrementOrRemove(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
			return
		}
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
}

// Remove deletes the whole line regardless of quantity.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal is the single source of truth for the cart total.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, ln := range c.lines {
		sum += ln.Price * float64(ln.Quantity)
	}
	return sum
}

// ItemCount sums quantities, not distinct lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, ln := range c.lines {
		n += ln.Quantity
	}
	return n
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
