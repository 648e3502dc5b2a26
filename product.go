package caja

import (
	"fmt"
	"strings"
)

// Product is one sellable item of the catalog: a name, the unit cost paid
// for it, the unit price it sells for, and the units left in stock.
//
// A product is identified by a stable generated ID, assigned by the catalog
// when the product is first added. Cart lines and sale records reference
// that ID, never the catalog position, so catalog deletions and reorders
// cannot make them point at the wrong product.
type Product struct {
	id    string
	name  string
	cost  Money
	price Money
	stock int
}

// NewProduct creates a product with no ID yet. The catalog assigns one on Add.
func NewProduct(name string, cost, price Money, stock int) Product {
	return Product{name: strings.TrimSpace(name), cost: cost, price: price, stock: stock}
}

func (p Product) ID() string   { return p.id }
func (p Product) Name() string { return p.name }
func (p Product) Cost() Money  { return p.cost }
func (p Product) Price() Money { return p.price }
func (p Product) Stock() int   { return p.stock }

// Validate checks the product invariants: non-empty name, non-negative cost
// and price, non-negative stock.
func (p Product) Validate() error {
	if p.name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.cost.IsNegative() {
		return fmt.Errorf("%w: product %q has a negative cost %s", ErrValidation, p.name, p.cost)
	}
	if p.price.IsNegative() {
		return fmt.Errorf("%w: product %q has a negative price %s", ErrValidation, p.name, p.price)
	}
	if p.stock < 0 {
		return fmt.Errorf("%w: product %q has a negative stock %d", ErrValidation, p.name, p.stock)
	}
	return nil
}
