// Package store provides the key-value persistence port of the register:
// a synchronous, single-writer store mapping string keys to JSON values.
//
// Two keys exist today, [ProductsKey] and [SalesKey]. A missing key is not
// an error; consumers treat it as an empty sequence. There is no schema
// versioning.
package store

import "encoding/json"

// Keys used by the register.
const (
	ProductsKey = "products"
	SalesKey    = "sales"
)

// Store is the persistence port.
//
// SetAll writes several keys as one logical transaction: either all of them
// reach stable storage or none does. The register relies on this to keep
// the catalog decrement and the ledger append of a sale commit atomic.
type Store interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(key string) (json.RawMessage, error)
	// Set writes a single key.
	Set(key string, value json.RawMessage) error
	// SetAll writes all given keys in one transaction.
	SetAll(values map[string]json.RawMessage) error
}
