package caja

import (
	"fmt"
	"iter"
)

// Line is one product/quantity pairing within a cart.
//
// The name, price and cost are snapshots taken when the line was added:
// later catalog edits do not retroactively change the pricing of a sale in
// progress.
type Line struct {
	ProductID string
	Name      string
	Price     Money
	Cost      Money
	Qty       int
}

// Cart is the transient set of line items being assembled into one sale.
//
// A cart is never persisted: it is created empty when entering the sale
// flow and discarded on navigation away or cleared by a successful commit.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart { return &Cart{} }

// Len returns the number of lines in the cart.
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns an iterator that yields each line in order.
func (c *Cart) Lines() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, l := range c.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// AddLine adds qty units of the given catalog product to the cart.
//
// The quantity is checked against the product's current stock, not against
// quantities already reserved by other lines; the commit re-validates
// everything anyway. If a line for the product already exists its quantity
// is incremented, no duplicate line is created.
func (c *Cart) AddLine(catalog *Catalog, id string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("add line: %w: quantity %d must be at least 1", ErrValidation, qty)
	}
	p, ok := catalog.Get(id)
	if !ok {
		return fmt.Errorf("add line: %w: no product with id %q", ErrNotFound, id)
	}
	if qty > p.Stock() {
		return fmt.Errorf("add line: %w: product %q has %d in stock, requested %d", ErrInsufficientStock, p.Name(), p.Stock(), qty)
	}
	for i, l := range c.lines {
		if l.ProductID == id {
			c.lines[i].Qty += qty
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Cost:      p.Cost(),
		Qty:       qty,
	})
	return nil
}

// SetLineQty sets the quantity of the given line. A quantity of zero
// removes the line (a cart never holds empty lines). The new quantity is
// deliberately not checked against stock; only the commit validates it.
func (c *Cart) SetLineQty(line, qty int) error {
	if line < 0 || line >= len(c.lines) {
		return fmt.Errorf("set line quantity: %w: no line %d", ErrNotFound, line)
	}
	if qty < 0 {
		return fmt.Errorf("set line quantity: %w: quantity %d is negative", ErrValidation, qty)
	}
	if qty == 0 {
		return c.RemoveLine(line)
	}
	c.lines[line].Qty = qty
	return nil
}

// RemoveLine deletes the given line from the cart.
func (c *Cart) RemoveLine(line int) error {
	if line < 0 || line >= len(c.lines) {
		return fmt.Errorf("remove line: %w: no line %d", ErrNotFound, line)
	}
	c.lines = append(c.lines[:line], c.lines[line+1:]...)
	return nil
}

// Total returns the sum of qty times unit price over all lines.
func (c *Cart) Total() Money {
	var total Money
	for _, l := range c.lines {
		total = total.Add(l.Price.MulQty(l.Qty))
	}
	return total
}

// Cost returns the sum of qty times unit cost over all lines.
func (c *Cart) Cost() Money {
	var cost Money
	for _, l := range c.lines {
		cost = cost.Add(l.Cost.MulQty(l.Qty))
	}
	return cost
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = c.lines[:0] }
