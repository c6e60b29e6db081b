package mymoney

import "github.com/shopspring/decimal"

// Percent is an exact percentage, 12.5 means 12.5%.
type Percent struct {
	value decimal.Decimal
}

// P creates a Percent from any numeric value.
func P[T float64 | int | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a percentage without its "%" sign, like "-3.5".
func ParsePercent(s string) (Percent, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, err
	}
	return Percent{value: v}, nil
}

// Of returns p percent of m. The result is exact.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Shift(-2)}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}
