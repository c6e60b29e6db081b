package mymoney

import (
	"iter"
	"time"

	"github.com/etnz/mymoney/date"
)

// Record is an immutable entry of a fund audit trail.
type Record struct {
	Month   date.Month // Month is the month and year the record belongs to.
	Event   EventKind  // Event is the kind of event recorded.
	Amount  Money      // Amount is the signed delta applied, the full amount for Allocate.
	Balance Money      // Balance is the fund balance right after this record.
}

// MarshalJSON implements the json.Marshaler interface for Record.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("month", r.Month)
	w.Append("event", r.Event)
	w.Append("amount", r.Amount)
	w.Append("balance", r.Balance)
	return w.MarshalJSON()
}

// Fund owns the chronological balance history of one Category.
//
// A Fund starts uninitialized, with a zero balance and no records. It becomes
// initialized once, on its first successful Initialize.
type Fund struct {
	category    Category
	initialized bool
	start       date.Month
	current     Money
	history     date.History[Record]
}

// NewFund creates an uninitialized fund.
func NewFund(c Category) *Fund {
	return &Fund{category: c}
}

// Category returns the fund category.
func (f *Fund) Category() Category { return f.category }

// Initialized reports whether the fund has received its allocation.
func (f *Fund) Initialized() bool { return f.initialized }

// Start returns the month of the allocation, zero if uninitialized.
func (f *Fund) Start() date.Month { return f.start }

// Initialize records the allocation of the fund.
//
// It does nothing if the fund is already initialized or if amount is negative.
func (f *Fund) Initialize(amount Money, on date.Month) {
	if f.initialized || amount.IsNegative() {
		return
	}
	f.initialized = true
	f.start = on
	f.current = amount
	f.history.Append(on, Record{Month: on, Event: Allocate, Amount: amount, Balance: amount})
}

// Apply adds a signed amount to the balance and records it.
//
// It does nothing if the fund is not initialized. Allocate is not a
// transaction and is ignored too, see Initialize.
func (f *Fund) Apply(on date.Month, kind EventKind, amount Money) {
	if !f.initialized {
		return
	}
	switch kind {
	case Allocate:
		return
	case MonthlyChange, MonthlySIP, Rebalance:
		f.current = f.current.Add(amount)
		f.history.Append(on, Record{Month: on, Event: kind, Amount: amount, Balance: f.current})
	default:
		return
	}
}

// Initial returns the allocated amount, zero if uninitialized.
func (f *Fund) Initial() Money {
	if !f.initialized {
		return Money{}
	}
	for _, r := range f.history.Values() {
		if r.Event == Allocate {
			return r.Amount
		}
	}
	return Money{}
}

// Current returns the running balance, zero if uninitialized.
func (f *Fund) Current() Money { return f.current }

// BalanceAsOf returns the balance of the last record of the most recent month
// matching the calendar month m, whatever its year.
func (f *Fund) BalanceAsOf(m time.Month) (Money, bool) {
	for on, r := range f.history.Backward() {
		if on.Month() == m {
			return r.Balance, true
		}
	}
	return Money{}, false
}

// Last returns the most recent record, false if uninitialized.
func (f *Fund) Last() (Record, bool) {
	_, r, ok := f.history.Latest()
	return r, ok
}

// LastOf returns the most recent record of the given kind.
func (f *Fund) LastOf(kind EventKind) (Record, bool) {
	for _, r := range f.history.Backward() {
		if r.Event == kind {
			return r, true
		}
	}
	return Record{}, false
}

// Records returns an iterator over all records in chronological order.
func (f *Fund) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range f.history.Values() {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of records.
func (f *Fund) Len() int { return f.history.Len() }
