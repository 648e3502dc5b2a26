package caja

import (
	"encoding/json"
	"fmt"

	"github.com/cajaferia/caja/date"
	"github.com/cajaferia/caja/store"
)

// Register owns the whole application state: the catalog, the ledger and
// the store they persist to. Every mutation that must survive a restart
// goes through it; the register writes the affected entities through to the
// store before reporting success.
//
// There are no ambient globals: callers hold a *Register and pass carts to
// it.
type Register struct {
	store    store.Store
	currency string
	catalog  *Catalog
	ledger   *Ledger
	today    func() date.Date
}

// Open loads a register from the store. Missing keys load as an empty
// catalog and an empty ledger.
func Open(s store.Store, currency string) (*Register, error) {
	rawProducts, err := s.Get(store.ProductsKey)
	if err != nil {
		return nil, fmt.Errorf("cannot read products: %w", err)
	}
	catalog, err := decodeCatalog(rawProducts, currency)
	if err != nil {
		return nil, err
	}

	rawSales, err := s.Get(store.SalesKey)
	if err != nil {
		return nil, fmt.Errorf("cannot read sales: %w", err)
	}
	ledger, err := decodeLedger(rawSales, currency)
	if err != nil {
		return nil, err
	}

	return &Register{
		store:    s,
		currency: currency,
		catalog:  catalog,
		ledger:   ledger,
		today:    date.Today,
	}, nil
}

// Catalog returns the live catalog. Treat it as read-only: mutations that
// must persist go through the register methods.
func (r *Register) Catalog() *Catalog { return r.catalog }

// Ledger returns the live ledger. Treat it as read-only.
func (r *Register) Ledger() *Ledger { return r.ledger }

// Currency returns the display currency of the register.
func (r *Register) Currency() string { return r.currency }

// AddProduct validates and appends a product to the catalog and persists
// it. It returns the stored product, carrying its generated ID.
func (r *Register) AddProduct(p Product) (Product, error) {
	stored, err := r.catalog.Add(p)
	if err != nil {
		return Product{}, err
	}
	if err := r.saveCatalog(); err != nil {
		// undo so memory stays consistent with storage.
		r.catalog.Remove(stored.id)
		return Product{}, err
	}
	return stored, nil
}

// UpdateProduct replaces the product with the given ID and persists the
// catalog.
func (r *Register) UpdateProduct(id string, p Product) error {
	previous, ok := r.catalog.Get(id)
	if !ok {
		return fmt.Errorf("update product: %w: no product with id %q", ErrNotFound, id)
	}
	if err := r.catalog.Update(id, p); err != nil {
		return err
	}
	if err := r.saveCatalog(); err != nil {
		r.catalog.Update(id, previous)
		return err
	}
	return nil
}

// RemoveProduct deletes the product with the given ID and persists the
// catalog.
func (r *Register) RemoveProduct(id string) error {
	i, ok := r.catalog.index[id]
	if !ok {
		return fmt.Errorf("remove product: %w: no product with id %q", ErrNotFound, id)
	}
	removed := r.catalog.products[i]
	r.catalog.Remove(id)
	if err := r.saveCatalog(); err != nil {
		r.catalog.insertAt(i, removed)
		return err
	}
	return nil
}

// Commit turns the cart into a sale: it re-validates every line against the
// current stock, decrements the stock of every line's product, appends a
// sale dated today to the ledger, persists catalog and ledger in one store
// transaction and clears the cart.
//
// The two effects are all-or-nothing: on any validation or persistence
// failure the catalog, the ledger and the cart are left exactly as they
// were.
func (r *Register) Commit(cart *Cart, pay PayMethod) (Sale, error) {
	if cart.Len() == 0 {
		return Sale{}, fmt.Errorf("commit: %w", ErrEmptyCart)
	}

	// Re-validation is mandatory: line quantities may have been edited
	// without a stock check since they were added.
	for _, line := range cart.Lines() {
		p, ok := r.catalog.Get(line.ProductID)
		if !ok {
			return Sale{}, fmt.Errorf("commit: %w: product %q is gone from the catalog", ErrNotFound, line.Name)
		}
		if line.Qty > p.Stock() {
			return Sale{}, fmt.Errorf("commit: %w: product %q has %d in stock, cart wants %d", ErrInsufficientStock, p.Name(), p.Stock(), line.Qty)
		}
	}

	sale := Sale{
		Total: cart.Total().WithCurrency(r.currency),
		Cost:  cart.Cost().WithCurrency(r.currency),
		Pay:   pay,
		Date:  r.today(),
	}
	for _, line := range cart.Lines() {
		// every line validated above, decrement cannot fail.
		r.catalog.DecrementStock(line.ProductID, line.Qty)
		sale.Items = append(sale.Items, SaleItem{Product: line.Name, ProductID: line.ProductID, Qty: line.Qty})
	}
	r.ledger.Append(sale)

	if err := r.save(); err != nil {
		// roll the in-memory mutation back so memory matches storage.
		r.ledger.Remove(r.ledger.Len() - 1)
		for _, line := range cart.Lines() {
			r.catalog.restock(line.ProductID, line.Qty)
		}
		return Sale{}, fmt.Errorf("commit: %w", err)
	}

	cart.Clear()
	return sale, nil
}

// VoidSale deletes the sale at the given ledger position and persists the
// ledger. The stock sold by that sale is not restored: a void corrects the
// ledger, it does not process a refund.
func (r *Register) VoidSale(i int) error {
	sale, err := r.ledger.Sale(i)
	if err != nil {
		return err
	}
	r.ledger.Remove(i)
	if err := r.saveLedger(); err != nil {
		r.ledger.insertAt(i, sale)
		return err
	}
	return nil
}

// Report computes the daily summary for the given day.
func (r *Register) Report(day date.Date) DayReport {
	return NewDayReport(r.ledger, day)
}

// Save rewrites both store keys from the in-memory state. Used by the fmt
// command to canonicalize the store file.
func (r *Register) Save() error { return r.save() }

func (r *Register) saveCatalog() error {
	raw, err := encodeCatalog(r.catalog)
	if err != nil {
		return err
	}
	return r.store.Set(store.ProductsKey, raw)
}

func (r *Register) saveLedger() error {
	raw, err := encodeLedger(r.ledger)
	if err != nil {
		return err
	}
	return r.store.Set(store.SalesKey, raw)
}

// save persists catalog and ledger as one store transaction.
func (r *Register) save() error {
	rawProducts, err := encodeCatalog(r.catalog)
	if err != nil {
		return err
	}
	rawSales, err := encodeLedger(r.ledger)
	if err != nil {
		return err
	}
	return r.store.SetAll(map[string]json.RawMessage{
		store.ProductsKey: rawProducts,
		store.SalesKey:    rawSales,
	})
}
