package mymoney

import (
	"strings"
	"time"
)

// CommandType is a typed string for identifying instructions.
type CommandType string

// Command types, as they appear in instruction lines.
const (
	CmdAllocate  CommandType = "ALLOCATE"
	CmdSIP       CommandType = "SIP"
	CmdChange    CommandType = "CHANGE"
	CmdBalance   CommandType = "BALANCE"
	CmdRebalance CommandType = "REBALANCE"
)

// CannotRebalance is the output of a rebalance that cannot proceed.
const CannotRebalance = "CANNOT_REBALANCE"

// Instruction defines the common interface for all strongly-typed instructions
// a Portfolio can execute.
type Instruction interface {
	What() CommandType // What returns the command type of the instruction.
	// Execute runs the instruction against p and returns the output line, if any.
	Execute(p *Portfolio) (output string, ok bool)
}

// AllocateCmd initializes every fund.
type AllocateCmd struct {
	Amounts map[Category]Money
}

func (AllocateCmd) What() CommandType { return CmdAllocate }

func (c AllocateCmd) Execute(p *Portfolio) (string, bool) {
	for _, cat := range Categories() {
		if amount, ok := c.Amounts[cat]; ok {
			p.Allocate(cat, amount)
		}
	}
	return "", false
}

// SIPCmd replaces the monthly contribution schedule.
type SIPCmd struct {
	Amounts map[Category]Money
}

func (SIPCmd) What() CommandType { return CmdSIP }

func (c SIPCmd) Execute(p *Portfolio) (string, bool) {
	p.SetSchedule(c.Amounts)
	return "", false
}

// ChangeCmd applies the market changes of a calendar month.
type ChangeCmd struct {
	Month time.Month
	Rates map[Category]Percent
}

func (ChangeCmd) What() CommandType { return CmdChange }

func (c ChangeCmd) Execute(p *Portfolio) (string, bool) {
	p.ApplyChange(c.Month, c.Rates)
	return "", false
}

// BalanceCmd reports the balances at the end of a calendar month.
type BalanceCmd struct {
	Month time.Month
}

func (BalanceCmd) What() CommandType { return CmdBalance }

func (c BalanceCmd) Execute(p *Portfolio) (string, bool) {
	balances, ok := p.Balance(c.Month)
	if !ok {
		return "", false
	}
	return FormatBalances(balances), true
}

// RebalanceCmd restores the initial allocation weights.
type RebalanceCmd struct{}

func (RebalanceCmd) What() CommandType { return CmdRebalance }

func (RebalanceCmd) Execute(p *Portfolio) (string, bool) {
	balances, ok := p.Rebalance()
	if !ok {
		return CannotRebalance, true
	}
	return FormatBalances(balances), true
}

// FormatBalances renders balances floored to whole units, in display order,
// separated by single spaces. Absent categories are skipped.
func FormatBalances(balances map[Category]Money) string {
	values := make([]string, 0, len(categories))
	for _, c := range Categories() {
		if b, ok := balances[c]; ok {
			values = append(values, b.Floor().String())
		}
	}
	return strings.Join(values, " ")
}
