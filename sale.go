package caja

import (
	"encoding/json"
	"fmt"

	"github.com/cajaferia/caja/date"
)

// PayMethod defines how a sale was paid.
type PayMethod int

const (
	// Cash is a payment in cash at the register.
	Cash PayMethod = iota
	// Transfer is a bank transfer payment.
	Transfer
)

func (m PayMethod) String() string {
	switch m {
	case Cash:
		return "cash"
	case Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// ParsePayMethod parses a string into a PayMethod.
func ParsePayMethod(s string) (PayMethod, error) {
	switch s {
	case "cash":
		return Cash, nil
	case "transfer":
		return Transfer, nil
	default:
		return 0, fmt.Errorf("%w: unknown pay method %q", ErrValidation, s)
	}
}

func (m PayMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PayMethod) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParsePayMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// SaleItem records one product/quantity pairing of a committed sale. The
// product name is kept alongside the ID so the history stays readable even
// after the product is deleted from the catalog.
type SaleItem struct {
	Product   string
	ProductID string
	Qty       int
}

// Sale is one committed sale: the sold items, the amounts computed from the
// cart snapshot at commit time, the pay method and the calendar day.
//
// A sale is immutable once appended to the ledger; the only allowed change
// is whole-entry deletion, the void use case.
type Sale struct {
	Items []SaleItem
	Total Money
	Cost  Money
	Pay   PayMethod
	Date  date.Date
}

// Profit returns total minus cost.
func (s Sale) Profit() Money { return s.Total.Sub(s.Cost) }

// Qty returns the total number of units sold.
func (s Sale) Qty() int {
	var qty int
	for _, it := range s.Items {
		qty += it.Qty
	}
	return qty
}
