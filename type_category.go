package mymoney

import (
	"fmt"
	"strings"
)

// Category is one of the fixed asset classes of a portfolio.
type Category int

const (
	// Equity is the stock market fund.
	Equity Category = iota
	// Debt is the bond market fund.
	Debt
	// Gold is the gold fund.
	Gold
)

// categories lists every Category in display order.
var categories = [...]Category{Equity, Debt, Gold}

// Categories returns every Category in display order.
func Categories() []Category { return categories[:] }

func (c Category) String() string {
	switch c {
	case Equity:
		return "EQUITY"
	case Debt:
		return "DEBT"
	case Gold:
		return "GOLD"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category, case is ignored.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown fund category: %q", s)
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
