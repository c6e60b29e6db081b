package mymoney

import (
	"github.com/google/go-cmp/cmp"
)

// testYear is the portfolio year used in tests.
const testYear = 2025

// equalMoney compares Money by value, 220 equals 220.00.
var equalMoney = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// balances is a helper for test to create a full balance map in display order.
func balances(equity, debt, gold float64) map[Category]Money {
	return map[Category]Money{Equity: M(equity), Debt: M(debt), Gold: M(gold)}
}

// rates is a helper for test to create a full change map in display order.
func rates(equity, debt, gold float64) map[Category]Percent {
	return map[Category]Percent{Equity: P(equity), Debt: P(debt), Gold: P(gold)}
}

// eventsOf returns the kinds of all records of f, in chronological order.
func eventsOf(f *Fund) []EventKind {
	var kinds []EventKind
	for r := range f.Records() {
		kinds = append(kinds, r.Event)
	}
	return kinds
}
