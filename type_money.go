package caja

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents an exact monetary value.
//
// The currency is weak: a Money with an empty currency combines freely with
// any other, which keeps amounts loaded from the bare-number store format
// usable before the register stamps its display currency on them.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// MoneyFromFloat converts a float into a Money, rejecting non-finite values.
// It is the constructor to use for numbers coming from untrusted input.
func MoneyFromFloat(value float64, currency string) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: amount %v is not a finite number", ErrValidation, value)
	}
	return M(value, currency), nil
}

// ParseMoney parses a decimal amount like "12.50".
func ParseMoney(str, currency string) (Money, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a number", ErrValidation, str)
	}
	return Money{value: value, cur: currency}, nil
}

// currency returns the money's full currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the exact amount as a decimal, in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) Currency() string     { return m.cur }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// MulQty scales the amount by an integral quantity.
func (m Money) MulQty(qty int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(qty))), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// WithCurrency returns a copy of m denominated in the given currency.
func (m Money) WithCurrency(currency string) Money {
	m.cur = currency
	return m
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON persists the amount as a bare number with all its digits, the
// format the original store uses. The currency is a display concern and is
// never persisted.
func (m Money) MarshalJSON() ([]byte, error) {
	// not m.value.MarshalJSON(): decimal quotes its numbers by default.
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads a bare number into a currency-less Money.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	m.cur = ""
	return m.value.UnmarshalJSON(bytes)
}
