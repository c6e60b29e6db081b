package mymoney

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of decimal places kept by divisions that do
// not terminate.
const divisionPrecision = 32

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value, kept exact.
//
// The portfolio is single-currency: the currency is only a display concern.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from any numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses an exact decimal amount like "6000" or "12.5".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

// Decimal returns the exact value of m.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String returns the exact decimal representation of m.
func (m Money) String() string { return m.value.String() }

// Floor returns m rounded down to whole units.
func (m Money) Floor() Money { return Money{value: m.value.Floor()} }

// Display returns m formatted in the given currency, e.g. "₹6,000.00".
func (m Money) Display(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }

// Share returns m * part / whole.
//
// The multiplication happens first so that terminating ratios stay exact.
// Other ratios are rounded at divisionPrecision (32) decimal places.
func (m Money) Share(part, whole Money) Money {
	return Money{value: m.value.Mul(part.value).DivRound(whole.value, divisionPrecision)}
}

// Sum returns the sum of all amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MarshalJSON writes the exact amount as a json string.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
