package mymoney

import (
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/etnz/mymoney/date"
)

// DefaultRebalanceMonths are the calendar months after which a contribution is
// withheld until the portfolio is rebalanced.
var DefaultRebalanceMonths = []time.Month{time.June, time.December}

// Portfolio owns one Fund per Category and the recurring contribution schedule.
//
// A Portfolio is not safe for concurrent use.
type Portfolio struct {
	epoch           date.Month
	rebalanceMonths []time.Month
	funds           map[Category]*Fund
	schedule        map[Category]Money
}

// NewPortfolio creates a portfolio with every fund uninitialized and a zero
// contribution schedule.
//
// Every allocation is recorded in January of year. If rebalanceMonths is
// empty DefaultRebalanceMonths are used.
func NewPortfolio(year int, rebalanceMonths ...time.Month) *Portfolio {
	if len(rebalanceMonths) == 0 {
		rebalanceMonths = DefaultRebalanceMonths
	}
	p := &Portfolio{
		epoch:           date.FirstMonthOf(year),
		rebalanceMonths: slices.Clone(rebalanceMonths),
		funds:           make(map[Category]*Fund),
		schedule:        make(map[Category]Money),
	}
	for _, c := range Categories() {
		p.funds[c] = NewFund(c)
		p.schedule[c] = Money{}
	}
	return p
}

// Epoch returns the month every allocation is recorded in.
func (p *Portfolio) Epoch() date.Month { return p.epoch }

// RebalanceMonths returns the mandatory rebalance calendar months.
func (p *Portfolio) RebalanceMonths() []time.Month { return slices.Clone(p.rebalanceMonths) }

// Fund returns the fund of category c, nil once the portfolio is cleared.
func (p *Portfolio) Fund(c Category) *Fund { return p.funds[c] }

// Funds returns an iterator over the funds in display order.
func (p *Portfolio) Funds() iter.Seq[*Fund] {
	return func(yield func(*Fund) bool) {
		for _, c := range Categories() {
			f, ok := p.funds[c]
			if !ok {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Allocate initializes the fund of category c with amount.
//
// A negative amount is silently skipped.
func (p *Portfolio) Allocate(c Category, amount Money) {
	if amount.IsNegative() {
		return
	}
	if f := p.funds[c]; f != nil {
		f.Initialize(amount, p.epoch)
	}
}

// SetSchedule replaces the whole contribution schedule.
//
// Categories missing from schedule contribute zero.
func (p *Portfolio) SetSchedule(schedule map[Category]Money) {
	next := make(map[Category]Money, len(categories))
	for _, c := range Categories() {
		next[c] = schedule[c]
	}
	p.schedule = next
}

// Schedule returns a copy of the contribution schedule.
func (p *Portfolio) Schedule() map[Category]Money { return maps.Clone(p.schedule) }

// ApplyChange applies the market change of calendar month m to every category present in rates.
//
// Each category is processed independently: a change that is not in sequence
// with the category history is skipped. After a change the contribution of the
// following month is applied, unless the change happened in a mandatory
// rebalance month.
func (p *Portfolio) ApplyChange(m time.Month, rates map[Category]Percent) {
	for _, c := range Categories() {
		rate, ok := rates[c]
		if !ok {
			continue
		}
		f := p.funds[c]
		if f == nil {
			continue
		}
		on, ok := p.changeMonth(f, m)
		if !ok {
			continue
		}
		f.Apply(on, MonthlyChange, rate.Of(f.Current()))
		p.contributeUnlessAwaitingRebalance(f)
	}
}

// changeMonth resolves the month and year a change for calendar month m is
// recorded in.
func (p *Portfolio) changeMonth(f *Fund, m time.Month) (date.Month, bool) {
	if lastChange, ok := f.LastOf(MonthlyChange); ok {
		next := lastChange.Month.Next()
		return next, next.Month() == m
	}
	last, ok := f.Last()
	if !ok || last.Month.Month() != m {
		return date.Month{}, false
	}
	return last.Month, true
}

// awaitingRebalance reports whether the last record of f is a change in a
// mandatory rebalance month.
func (p *Portfolio) awaitingRebalance(f *Fund) bool {
	last, ok := f.Last()
	return ok && last.Event == MonthlyChange && p.isRebalanceMonth(last.Month.Month())
}

func (p *Portfolio) isRebalanceMonth(m time.Month) bool { return slices.Contains(p.rebalanceMonths, m) }

// contributeUnlessAwaitingRebalance records the contribution for the month
// following the last record of f.
func (p *Portfolio) contributeUnlessAwaitingRebalance(f *Fund) {
	if p.awaitingRebalance(f) {
		return
	}
	last, ok := f.Last()
	if !ok {
		return
	}
	f.Apply(last.Month.Next(), MonthlySIP, p.schedule[f.Category()])
}

// Balance returns the balance of every fund at the end of the most recent
// calendar month m.
//
// Categories with no record in m are absent from the result. If no category
// has one, Balance returns false.
func (p *Portfolio) Balance(m time.Month) (map[Category]Money, bool) {
	balances := make(map[Category]Money)
	for f := range p.Funds() {
		if b, ok := f.BalanceAsOf(m); ok {
			balances[f.Category()] = b
		}
	}
	if len(balances) == 0 {
		return nil, false
	}
	return balances, true
}

// rebalanceMonth returns the month of the first fund whose last change
// happened in a mandatory rebalance month.
func (p *Portfolio) rebalanceMonth() (date.Month, bool) {
	for f := range p.Funds() {
		if lastChange, ok := f.LastOf(MonthlyChange); ok && p.isRebalanceMonth(lastChange.Month.Month()) {
			return lastChange.Month, true
		}
	}
	return date.Month{}, false
}

// Rebalance restores the initial allocation weights across the funds.
//
// It returns the balances right after the rebalance, or false if no fund's
// last change happened in a mandatory rebalance month. Every fund then gets
// the contribution of the month following its last record, as after a change.
// The withheld ones are released that way.
func (p *Portfolio) Rebalance() (map[Category]Money, bool) {
	on, ok := p.rebalanceMonth()
	if !ok {
		return nil, false
	}
	var totalInitial, totalCurrent Money
	for f := range p.Funds() {
		totalInitial = totalInitial.Add(f.Initial())
		totalCurrent = totalCurrent.Add(f.Current())
	}
	if totalInitial.IsZero() {
		// weights are undefined
		return nil, false
	}

	balances := make(map[Category]Money)
	for f := range p.Funds() {
		if !f.Initialized() {
			continue
		}
		target := totalCurrent.Share(f.Initial(), totalInitial)
		f.Apply(on, Rebalance, target.Sub(f.Current()))
		balances[f.Category()] = f.Current()
	}
	for f := range p.Funds() {
		p.contributeUnlessAwaitingRebalance(f)
	}
	return balances, true
}

// Clear discards every fund. The portfolio must not be used afterwards.
func (p *Portfolio) Clear() {
	clear(p.funds)
}
