package renderer

import (
	"slices"

	"github.com/etnz/mymoney"
	"github.com/etnz/mymoney/date"
)

// History is the data of the history report.
// Numbers keep their exact decimal types, so that templates can pick a
// rendering (Display, String etc.).
type History struct {
	// Year of the portfolio epoch.
	Year int `json:"year"`
	// Currency used to display amounts.
	Currency string `json:"currency"`
	// Schedule is the monthly contribution of every category.
	Schedule []HistoryContribution `json:"schedule"`
	// Funds lists the initialized funds in display order.
	Funds []HistoryFund `json:"funds"`
	// Total is the sum of the current balances.
	Total mymoney.Money `json:"total"`
}

// HistoryContribution is a line of the contribution schedule.
type HistoryContribution struct {
	Category mymoney.Category `json:"category"`
	Amount   mymoney.Money    `json:"amount"`
}

// HistoryFund is the audit trail of a single fund.
type HistoryFund struct {
	Category mymoney.Category `json:"category"`
	Start    date.Month       `json:"start"`
	Initial  mymoney.Money    `json:"initial"`
	Current  mymoney.Money    `json:"current"`
	Records  []mymoney.Record `json:"records"`
}

// NewHistory collects the report data of p.
func NewHistory(p *mymoney.Portfolio, currency string) *History {
	h := &History{
		Year:     p.Epoch().Year(),
		Currency: currency,
	}
	schedule := p.Schedule()
	for _, c := range mymoney.Categories() {
		h.Schedule = append(h.Schedule, HistoryContribution{Category: c, Amount: schedule[c]})
	}
	var currents []mymoney.Money
	for f := range p.Funds() {
		if !f.Initialized() {
			continue
		}
		currents = append(currents, f.Current())
		h.Funds = append(h.Funds, HistoryFund{
			Category: f.Category(),
			Start:    f.Start(),
			Initial:  f.Initial(),
			Current:  f.Current(),
			Records:  slices.Collect(f.Records()),
		})
	}
	h.Total = mymoney.Sum(currents...)
	return h
}
