package caja

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// Catalog is the mutable set of sellable products and their stock levels.
//
// Products keep their insertion order, the order the shopkeeper entered
// them. Lookups go through the generated product ID.
//
// The catalog itself never touches the store; persisted mutations go
// through the [Register].
type Catalog struct {
	currency string
	products []Product
	index    map[string]int // product id -> position in products
}

// NewCatalog creates an empty catalog whose prices display in the given
// currency.
func NewCatalog(currency string) *Catalog {
	return &Catalog{
		currency: currency,
		products: make([]Product, 0),
		index:    make(map[string]int),
	}
}

// Currency returns the display currency of the catalog prices.
func (c *Catalog) Currency() string { return c.currency }

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

// Get returns the product with the given ID.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// ByName returns the first product with the given name. Names are the
// shopkeeper's labels and are not forced unique; the ID is the real key.
func (c *Catalog) ByName(name string) (Product, bool) {
	for _, p := range c.products {
		if p.name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Products returns an iterator that yields each product in insertion order.
func (c *Catalog) Products() iter.Seq2[int, Product] {
	return func(yield func(int, Product) bool) {
		for i, p := range c.products {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Add validates the product, assigns it a stable ID, stamps the catalog
// currency on its amounts and appends it. It returns the stored product.
func (c *Catalog) Add(p Product) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	p.id = uuid.NewString()
	p.cost = p.cost.WithCurrency(c.currency)
	p.price = p.price.WithCurrency(c.currency)
	c.index[p.id] = len(c.products)
	c.products = append(c.products, p)
	return p, nil
}

// Update replaces the product with the given ID in place, keeping its ID
// and position.
func (c *Catalog) Update(id string, p Product) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("update product: %w: no product with id %q", ErrNotFound, id)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.id = id
	p.cost = p.cost.WithCurrency(c.currency)
	p.price = p.price.WithCurrency(c.currency)
	c.products[i] = p
	return nil
}

// Remove deletes the product with the given ID. Cart lines referencing it
// survive (they carry their own snapshot) but will fail commit-time
// validation.
func (c *Catalog) Remove(id string) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("remove product: %w: no product with id %q", ErrNotFound, id)
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	delete(c.index, id)
	// reindex the tail that shifted left.
	for j := i; j < len(c.products); j++ {
		c.index[c.products[j].id] = j
	}
	return nil
}

// DecrementStock subtracts qty units from the product's stock. The stock
// never goes negative.
func (c *Catalog) DecrementStock(id string, qty int) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("decrement stock: %w: no product with id %q", ErrNotFound, id)
	}
	if qty < 0 {
		return fmt.Errorf("decrement stock: %w: quantity %d is negative", ErrValidation, qty)
	}
	p := c.products[i]
	if qty > p.stock {
		return fmt.Errorf("decrement stock: %w: product %q has %d in stock, requested %d", ErrInsufficientStock, p.name, p.stock, qty)
	}
	c.products[i].stock -= qty
	return nil
}

// restock adds units back to a product's stock. It is only used to undo a
// commit whose persistence failed, so memory stays consistent with storage.
func (c *Catalog) restock(id string, qty int) {
	if i, ok := c.index[id]; ok {
		c.products[i].stock += qty
	}
}

// insertAt puts a product back at a given position, undoing a removal
// whose persistence failed.
func (c *Catalog) insertAt(i int, p Product) {
	c.products = append(c.products[:i], append([]Product{p}, c.products[i:]...)...)
	for j := i; j < len(c.products); j++ {
		c.index[c.products[j].id] = j
	}
}
