package caja

import (
	"errors"
	"strings"
	"testing"
)

func TestExportCatalog(t *testing.T) {
	c := NewCatalog("EUR")
	c.Add(NewProduct("Bread", M(1, ""), M(2, ""), 10))
	c.Add(NewProduct("Milk", M(0.5, ""), M(1.2, ""), 5))

	var b strings.Builder
	if err := ExportCatalog(&b, c); err != nil {
		t.Fatalf("ExportCatalog() failed: %v", err)
	}

	want := `{"name":"Bread","cost":1,"price":2,"stock":10}
{"name":"Milk","cost":0.5,"price":1.2,"stock":5}
`
	if b.String() != want {
		t.Errorf("ExportCatalog() = %q, want %q", b.String(), want)
	}
}

// The default mapping reads the export format back, as a JSONL stream or as
// a plain JSON array.
func TestImportProducts_DefaultMapping(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "jsonl stream",
			input: `{"name":"Bread","cost":1,"price":2,"stock":10}
{"name":"Milk","cost":0.5,"price":1.2,"stock":5}`,
		},
		{
			name:  "json array",
			input: `[{"name":"Bread","cost":1,"price":2,"stock":10},{"name":"Milk","cost":0.5,"price":1.2,"stock":5}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := ImportProducts(strings.NewReader(tt.input), DefaultImportMapping())
			if err != nil {
				t.Fatalf("ImportProducts() failed: %v", err)
			}
			if len(products) != 2 {
				t.Fatalf("imported %d products, want 2", len(products))
			}
			if products[0].Name() != "Bread" || products[0].Stock() != 10 {
				t.Errorf("first product = %q stock %d, want Bread stock 10", products[0].Name(), products[0].Stock())
			}
			if want := M(1.2, ""); !products[1].Price().Equal(want) {
				t.Errorf("second price = %s, want %s", products[1].Price(), want)
			}
			if products[0].ID() != "" {
				t.Error("imported products must not carry ids; the register assigns them")
			}
		})
	}
}

// A supplier price list with its own shape maps through jsonpath.
func TestImportProducts_SupplierMapping(t *testing.T) {
	input := `{
	  "updated": "2026-08-27",
	  "items": [
	    {"label": "Bread", "buy": 1, "sell": 2, "units": 10},
	    {"label": "Milk", "buy": 0.5, "sell": 1.2, "units": 5}
	  ]
	}`
	mapping := ImportMapping{
		Rows:  "$.items",
		Name:  "$.label",
		Cost:  "$.buy",
		Price: "$.sell",
		Stock: "$.units",
	}

	products, err := ImportProducts(strings.NewReader(input), mapping)
	if err != nil {
		t.Fatalf("ImportProducts() failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("imported %d products, want 2", len(products))
	}
	if products[1].Name() != "Milk" || products[1].Stock() != 5 {
		t.Errorf("second product = %q stock %d, want Milk stock 5", products[1].Name(), products[1].Stock())
	}
	if want := M(0.5, ""); !products[1].Cost().Equal(want) {
		t.Errorf("second cost = %s, want %s", products[1].Cost(), want)
	}
}

func TestImportProducts_Rejects(t *testing.T) {
	m := DefaultImportMapping()
	tests := []struct {
		name  string
		input string
	}{
		{"missing field", `[{"name":"Bread","cost":1,"stock":10}]`},
		{"string amount", `[{"name":"Bread","cost":"one","price":2,"stock":10}]`},
		{"fractional stock", `[{"name":"Bread","cost":1,"price":2,"stock":2.5}]`},
		{"empty name", `[{"name":"","cost":1,"price":2,"stock":10}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportProducts(strings.NewReader(tt.input), m); !errors.Is(err, ErrValidation) {
				t.Errorf("ImportProducts() = %v, want ErrValidation", err)
			}
		})
	}
}
