package caja

import (
	"errors"
	"testing"
)

func TestCatalog_Add(t *testing.T) {
	c := NewCatalog("EUR")

	stored, err := c.Add(NewProduct(" Bread ", M(1, ""), M(2, ""), 10))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if stored.ID() == "" {
		t.Error("Add() did not assign an id")
	}
	if stored.Name() != "Bread" {
		t.Errorf("Add() kept name %q, want trimmed \"Bread\"", stored.Name())
	}
	if stored.Price().Currency() != "EUR" {
		t.Errorf("Add() stamped currency %q, want EUR", stored.Price().Currency())
	}

	got, ok := c.Get(stored.ID())
	if !ok {
		t.Fatal("Get() does not find the added product")
	}
	if got.Stock() != 10 {
		t.Errorf("stock = %d, want 10", got.Stock())
	}

	// duplicate names are allowed, each gets its own id.
	other, err := c.Add(NewProduct("Bread", M(1, ""), M(2, ""), 3))
	if err != nil {
		t.Fatalf("Add() of a duplicate name failed: %v", err)
	}
	if other.ID() == stored.ID() {
		t.Error("two products share an id")
	}
}

func TestCatalog_AddValidates(t *testing.T) {
	c := NewCatalog("EUR")
	tests := []struct {
		name    string
		product Product
	}{
		{"empty name", NewProduct("", M(1, ""), M(2, ""), 1)},
		{"blank name", NewProduct("   ", M(1, ""), M(2, ""), 1)},
		{"negative cost", NewProduct("Bread", M(-1, ""), M(2, ""), 1)},
		{"negative price", NewProduct("Bread", M(1, ""), M(-2, ""), 1)},
		{"negative stock", NewProduct("Bread", M(1, ""), M(2, ""), -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Add(tt.product); !errors.Is(err, ErrValidation) {
				t.Errorf("Add() = %v, want ErrValidation", err)
			}
		})
	}
	if c.Len() != 0 {
		t.Errorf("catalog has %d products after rejected adds, want 0", c.Len())
	}
}

func TestCatalog_Update(t *testing.T) {
	c := NewCatalog("EUR")
	stored, _ := c.Add(NewProduct("Bread", M(1, ""), M(2, ""), 10))
	c.Add(NewProduct("Milk", M(0.5, ""), M(1, ""), 5))

	if err := c.Update(stored.ID(), NewProduct("Sourdough", M(1.2, ""), M(2.5, ""), 8)); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	got, ok := c.Get(stored.ID())
	if !ok {
		t.Fatal("Update() changed the product id")
	}
	if got.Name() != "Sourdough" {
		t.Errorf("name = %q, want Sourdough", got.Name())
	}

	// position is preserved: the product list keeps insertion order.
	for i, p := range c.Products() {
		if p.ID() == stored.ID() && i != 0 {
			t.Errorf("updated product moved to position %d, want 0", i)
		}
	}

	if err := c.Update("no-such-id", NewProduct("X", M(1, ""), M(1, ""), 1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown id) = %v, want ErrNotFound", err)
	}
}

func TestCatalog_Remove(t *testing.T) {
	c := NewCatalog("EUR")
	bread, _ := c.Add(NewProduct("Bread", M(1, ""), M(2, ""), 10))
	milk, _ := c.Add(NewProduct("Milk", M(0.5, ""), M(1, ""), 5))
	honey, _ := c.Add(NewProduct("Honey", M(3, ""), M(6, ""), 2))

	if err := c.Remove(bread.ID()); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("catalog has %d products, want 2", c.Len())
	}

	// the survivors are still found after the reindex.
	for _, id := range []string{milk.ID(), honey.ID()} {
		if _, ok := c.Get(id); !ok {
			t.Errorf("Get(%q) fails after removing another product", id)
		}
	}
	if _, ok := c.Get(bread.ID()); ok {
		t.Error("removed product still found")
	}

	if err := c.Remove(bread.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() twice = %v, want ErrNotFound", err)
	}
}

func TestCatalog_DecrementStock(t *testing.T) {
	c := NewCatalog("EUR")
	bread, _ := c.Add(NewProduct("Bread", M(1, ""), M(2, ""), 10))

	tests := []struct {
		name      string
		qty       int
		wantErr   error
		wantStock int
	}{
		{"partial", 3, nil, 7},
		{"to zero", 7, nil, 0},
		{"below zero", 1, ErrInsufficientStock, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.DecrementStock(bread.ID(), tt.qty); !errors.Is(err, tt.wantErr) {
				t.Errorf("DecrementStock(%d) = %v, want %v", tt.qty, err, tt.wantErr)
			}
			if got, _ := c.Get(bread.ID()); got.Stock() != tt.wantStock {
				t.Errorf("stock = %d, want %d", got.Stock(), tt.wantStock)
			}
		})
	}

	if err := c.DecrementStock(bread.ID(), -1); !errors.Is(err, ErrValidation) {
		t.Errorf("DecrementStock(-1) = %v, want ErrValidation", err)
	}
	if err := c.DecrementStock("no-such-id", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("DecrementStock(unknown id) = %v, want ErrNotFound", err)
	}
}

func TestCatalog_ByName(t *testing.T) {
	c := NewCatalog("EUR")
	first, _ := c.Add(NewProduct("Bread", M(1, ""), M(2, ""), 10))
	c.Add(NewProduct("Bread", M(1, ""), M(3, ""), 4))

	got, ok := c.ByName("Bread")
	if !ok {
		t.Fatal("ByName() does not find the product")
	}
	if got.ID() != first.ID() {
		t.Error("ByName() does not return the first match")
	}
	if _, ok := c.ByName("Caviar"); ok {
		t.Error("ByName() found a product that does not exist")
	}
}
