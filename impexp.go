package caja

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the catalog import/export format.
// Export is a JSONL stream, one product per line, human readable and easy
// to merge. Import additionally accepts arbitrary supplier price lists:
// jsonpath expressions locate the product fields inside whatever JSON
// shape the supplier ships.

// ExportCatalog exports the catalog to 'w' in the import/export format.
//
// The format is a JSONL file where each line is a JSON object with the
// properties 'name', 'cost', 'price' and 'stock'. IDs are not exported:
// the importing register assigns its own.
func ExportCatalog(w io.Writer, c *Catalog) error {
	type jrow struct {
		Name  string `json:"name"`
		Cost  Money  `json:"cost"`
		Price Money  `json:"price"`
		Stock int    `json:"stock"`
	}

	for _, p := range c.Products() {
		data, err := json.Marshal(jrow{
			Name:  p.Name(),
			Cost:  p.Cost(),
			Price: p.Price(),
			Stock: p.Stock(),
		})
		if err != nil {
			return fmt.Errorf("cannot marshal product %q: %w", p.Name(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write catalog export: %w", err)
		}
	}
	return nil
}

// ImportMapping holds the jsonpath expressions that locate product fields
// in a supplier price list. Rows selects the product objects; the field
// paths are evaluated relative to each row.
type ImportMapping struct {
	Rows  string
	Name  string
	Cost  string
	Price string
	Stock string
}

// DefaultImportMapping reads the export format back: a plain array (or
// JSONL stream) of {name, cost, price, stock} objects.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Rows:  "$",
		Name:  "$.name",
		Cost:  "$.cost",
		Price: "$.price",
		Stock: "$.stock",
	}
}

// ImportProducts reads a product list from 'r' using the mapping and
// returns the products, validated but without IDs; add them to a register
// to assign IDs and persist.
//
// The input may be a single JSON document or a JSONL stream; JSONL lines
// are gathered into one array before the Rows path is applied.
func ImportProducts(r io.Reader, m ImportMapping) ([]Product, error) {
	jdoc, err := decodeImportDocument(r)
	if err != nil {
		return nil, err
	}

	jrows, err := jsonpath.Get(m.Rows, jdoc)
	if err != nil {
		return nil, fmt.Errorf("cannot select product rows with %q: %w", m.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a single object is accepted as a one-row list.
		rows = []any{jrows}
	}

	products := make([]Product, 0, len(rows))
	for i, row := range rows {
		name, err := pluckString(row, m.Name)
		if err != nil {
			return nil, fmt.Errorf("row %d: name: %w", i, err)
		}
		cost, err := pluckAmount(row, m.Cost)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): cost: %w", i, name, err)
		}
		price, err := pluckAmount(row, m.Price)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): price: %w", i, name, err)
		}
		stock, err := pluckInt(row, m.Stock)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): stock: %w", i, name, err)
		}

		p := NewProduct(name, cost, price, stock)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// decodeImportDocument parses the input as one JSON document, falling back
// to gathering a JSONL stream into an array.
func decodeImportDocument(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import data: %w", err)
	}

	var jdoc any
	if err := json.Unmarshal(data, &jdoc); err == nil {
		return jdoc, nil
	}

	// not a single document, try JSONL.
	var rows []any
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var jrow any
		if err := json.Unmarshal([]byte(line), &jrow); err != nil {
			return nil, fmt.Errorf("cannot parse import line %q: %w", line, err)
		}
		rows = append(rows, jrow)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read import data: %w", err)
	}
	return rows, nil
}

// pluck evaluates a jsonpath against a row. jsonpath is never clear about
// whether it returns a list of one answer or a single answer, so a
// one-element list is unwrapped.
func pluck(row any, path string) (any, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("%w: no value at %q", ErrValidation, path)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func pluckString(row any, path string) (string, error) {
	jval, err := pluck(row, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%w: value at %q is not a string: %v", ErrValidation, path, jval)
	}
	return s, nil
}

func pluckAmount(row any, path string) (Money, error) {
	jval, err := pluck(row, path)
	if err != nil {
		return Money{}, err
	}
	f, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("%w: value at %q is not a number: %v", ErrValidation, path, jval)
	}
	return MoneyFromFloat(f, "")
}

func pluckInt(row any, path string) (int, error) {
	jval, err := pluck(row, path)
	if err != nil {
		return 0, err
	}
	f, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: value at %q is not a number: %v", ErrValidation, path, jval)
	}
	if f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: value at %q is not an integral quantity: %v", ErrValidation, path, f)
	}
	return int(f), nil
}
