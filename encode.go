package caja

import (
	"encoding/json"
	"fmt"

	"github.com/cajaferia/caja/date"
)

// This file contains the codecs between the in-memory catalog/ledger and
// the store values. The wire format keeps the original application's shape:
// bare numbers for amounts, "cash"/"transfer" for pay methods, ISO day
// strings for dates. Amounts are written with all their digits, no rounding.

// jproduct is the product object read from and written to the store.
// Money (un)marshals as a bare number, so amounts keep the original store
// shape.
type jproduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cost  Money  `json:"cost"`
	Price Money  `json:"price"`
	Stock int    `json:"stock"`
}

// jitem and jsale are the sale objects read from and written to the store.
type jitem struct {
	Product   string `json:"product"`
	ProductID string `json:"id,omitempty"`
	Qty       int    `json:"qty"`
}

type jsale struct {
	Items []jitem   `json:"items"`
	Total Money     `json:"total"`
	Cost  Money     `json:"cost"`
	Pay   PayMethod `json:"pay"`
	Date  date.Date `json:"date"`
}

// decodeCatalog builds a catalog from the raw "products" store value. A nil
// value is an absent key and yields an empty catalog.
func decodeCatalog(raw json.RawMessage, currency string) (*Catalog, error) {
	c := NewCatalog(currency)
	if raw == nil {
		return c, nil
	}

	var jproducts []jproduct
	if err := json.Unmarshal(raw, &jproducts); err != nil {
		return nil, fmt.Errorf("cannot parse the products store value: %w", err)
	}
	for _, jp := range jproducts {
		p := Product{
			id:    jp.ID,
			name:  jp.Name,
			cost:  jp.Cost.WithCurrency(currency),
			price: jp.Price.WithCurrency(currency),
			stock: jp.Stock,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product %q in store: %w", jp.Name, err)
		}
		if jp.ID == "" {
			return nil, fmt.Errorf("invalid product %q in store: %w: missing id", jp.Name, ErrValidation)
		}
		if _, exists := c.index[p.id]; exists {
			return nil, fmt.Errorf("invalid product %q in store: %w: duplicate id %q", jp.Name, ErrValidation, jp.ID)
		}
		c.index[p.id] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// encodeCatalog renders the catalog as the "products" store value.
func encodeCatalog(c *Catalog) (json.RawMessage, error) {
	jproducts := make([]jproduct, 0, c.Len())
	for _, p := range c.Products() {
		jproducts = append(jproducts, jproduct{
			ID:    p.id,
			Name:  p.name,
			Cost:  p.cost,
			Price: p.price,
			Stock: p.stock,
		})
	}
	data, err := json.Marshal(jproducts)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal products: %w", err)
	}
	return data, nil
}

// decodeLedger builds a ledger from the raw "sales" store value. A nil
// value is an absent key and yields an empty ledger.
func decodeLedger(raw json.RawMessage, currency string) (*Ledger, error) {
	l := NewLedger()
	if raw == nil {
		return l, nil
	}

	var jsales []jsale
	if err := json.Unmarshal(raw, &jsales); err != nil {
		return nil, fmt.Errorf("cannot parse the sales store value: %w", err)
	}
	for i, js := range jsales {
		s := Sale{
			Total: js.Total.WithCurrency(currency),
			Cost:  js.Cost.WithCurrency(currency),
			Pay:   js.Pay,
			Date:  js.Date,
		}
		for _, ji := range js.Items {
			if ji.Qty < 1 {
				return nil, fmt.Errorf("invalid sale %d in store: %w: item %q has quantity %d", i, ErrValidation, ji.Product, ji.Qty)
			}
			s.Items = append(s.Items, SaleItem{Product: ji.Product, ProductID: ji.ProductID, Qty: ji.Qty})
		}
		l.sales = append(l.sales, s)
	}
	return l, nil
}

// encodeLedger renders the ledger as the "sales" store value.
func encodeLedger(l *Ledger) (json.RawMessage, error) {
	jsales := make([]jsale, 0, l.Len())
	for _, s := range l.Sales() {
		js := jsale{
			Total: s.Total,
			Cost:  s.Cost,
			Pay:   s.Pay,
			Date:  s.Date,
		}
		for _, it := range s.Items {
			js.Items = append(js.Items, jitem{Product: it.Product, ProductID: it.ProductID, Qty: it.Qty})
		}
		jsales = append(jsales, js)
	}
	data, err := json.Marshal(jsales)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal sales: %w", err)
	}
	return data, nil
}
