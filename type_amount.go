package bankbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary quantity with no attached currency.
//
// The ledger stores a single bare decimal per record; whether it counts for
// or against the balance is decided by the record category alone.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from common numeric types. Mostly useful in tests.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	default:
		return decimal.Zero
	}
}

// String returns the canonical decimal text form, e.g. "12.5" for "12.50".
func (a Amount) String() string { return a.value.String() }

// StringFixed returns the amount rounded to two decimal places, for display.
func (a Amount) StringFixed() string { return a.value.StringFixed(2) }

func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }

// Format renders the amount in the given ISO currency (e.g. "$1,234.50" for
// "USD"). An empty or unknown currency code falls back to StringFixed.
func (a Amount) Format(currency string) string {
	if currency == "" || money.GetCurrency(currency) == nil {
		return a.StringFixed()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}
