// Package mymoney tracks a simulated investment portfolio split across a fixed
// set of fund categories (equity, debt and gold).
//
// The portfolio is driven by a stream of instructions:
//   - ALLOCATE: the one-time initial deposit of every fund.
//   - SIP: the recurring monthly contribution schedule.
//   - CHANGE: the market driven percentage change of a month.
//   - BALANCE: the balance of every fund at the end of a month.
//   - REBALANCE: restores the initial allocation weights.
//
// Every fund keeps an immutable, chronological audit trail of records. Market
// changes must arrive in unbroken monthly sequence, and the contribution that
// follows a change in a mandatory rebalance month (June and December by
// default) is withheld until the portfolio is rebalanced.
//
// All arithmetic is exact decimal arithmetic, only displayed balances are
// floored to whole units.
//
// This package serves as the foundational logic for the `mymoney`
// command-line tool.
package mymoney
