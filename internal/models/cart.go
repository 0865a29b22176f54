package models

import "sync"

// CartLine pairs a product with the quantity currently in the cart.
// OrderLineID is zero until the line is materialized into a persisted order.
type CartLine struct {
	OrderLineID int     `json:"order_line_id,omitempty"`
	Product     Product `json:"product"`
	Quantity    int     `json:"quantity"`
}

// Cart holds the lines of one shopping session, in insertion order, with at
// most one line per product ID.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
	dirty bool
}

func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from previously snapshotted lines.
func RestoreCart(lines []CartLine) *Cart {
	c := NewCart()
	c.lines = append(c.lines, lines...)
	return c
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line. No upper bound is enforced against current stock.
func (c *Cart) AddItem(product Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dirty = true
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
}

// RemoveLine drops every line matching the product's ID. Removing a product
// that is not in the cart is a no-op.
func (c *Cart) RemoveLine(product Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != product.ID {
			kept = append(kept, line)
		}
	}
	if len(kept) != len(c.lines) {
		c.dirty = true
	}
	c.lines = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lines) > 0 {
		c.dirty = true
	}
	c.lines = nil
}

// GetTotalValue sums the unit price of each line. Quantity is intentionally
// not part of the sum; historical behavior callers rely on.
func (c *Cart) GetTotalValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Product.Price
	}
	return total
}

// GetAverageValue returns the arithmetic mean of the line unit prices, or 0
// for an empty cart. Like GetTotalValue it is not quantity weighted.
func (c *Cart) GetAverageValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return 0
	}
	var total float64
	for _, line := range c.lines {
		total += line.Product.Price
	}
	return total / float64(len(c.lines))
}

// Lines returns a snapshot of the current lines in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Dirty reports whether the cart's lines changed since it was created or
// restored. Session backends that hold detached snapshots must only write a
// cart back when this is set, or a stale snapshot can undo changes another
// path made to the stored cart.
func (c *Cart) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Len reports the number of lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}
