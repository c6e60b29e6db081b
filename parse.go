package mymoney

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/etnz/mymoney/date"
)

// ErrUnknownInstruction is returned for lines that are not a valid instruction.
var ErrUnknownInstruction = errors.New("unknown instruction")

const (
	amountPattern  = `(\d+)`
	percentPattern = `(-?\d{1,2}(?:\.\d+)?)%`
	monthPattern   = `([A-Z]+)`
)

var (
	allocateRe  = regexp.MustCompile(`^ALLOCATE\s+` + amountPattern + `\s+` + amountPattern + `\s+` + amountPattern + `$`)
	sipRe       = regexp.MustCompile(`^SIP\s+` + amountPattern + `\s+` + amountPattern + `\s+` + amountPattern + `$`)
	changeRe    = regexp.MustCompile(`^CHANGE\s+` + percentPattern + `\s+` + percentPattern + `\s+` + percentPattern + `\s+` + monthPattern + `$`)
	balanceRe   = regexp.MustCompile(`^BALANCE\s+` + monthPattern + `$`)
	rebalanceRe = regexp.MustCompile(`^REBALANCE$`)
)

// ParseInstruction parses a single instruction line.
//
// Values are given in display order (equity, debt, gold). Any line that does
// not fully match an instruction returns an error wrapping ErrUnknownInstruction.
func ParseInstruction(line string) (Instruction, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrUnknownInstruction)
	}

	switch CommandType(fields[0]) {
	case CmdAllocate:
		amounts, err := parseAmounts(allocateRe, line)
		if err != nil {
			return nil, err
		}
		return AllocateCmd{Amounts: amounts}, nil
	case CmdSIP:
		amounts, err := parseAmounts(sipRe, line)
		if err != nil {
			return nil, err
		}
		return SIPCmd{Amounts: amounts}, nil
	case CmdChange:
		return parseChange(line)
	case CmdBalance:
		m := balanceRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, line)
		}
		month, err := parseMonth(m[1])
		if err != nil {
			return nil, err
		}
		return BalanceCmd{Month: month}, nil
	case CmdRebalance:
		if !rebalanceRe.MatchString(line) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, line)
		}
		return RebalanceCmd{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, line)
	}
}

// parseAmounts extracts one amount per category from line.
func parseAmounts(re *regexp.Regexp, line string) (map[Category]Money, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, line)
	}
	amounts := make(map[Category]Money, len(categories))
	for i, c := range Categories() {
		// the pattern guarantees a valid number.
		a, err := ParseMoney(m[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid amount %q: %v", ErrUnknownInstruction, m[i+1], err)
		}
		amounts[c] = a
	}
	return amounts, nil
}

func parseChange(line string) (Instruction, error) {
	m := changeRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstruction, line)
	}
	rates := make(map[Category]Percent, len(categories))
	for i, c := range Categories() {
		r, err := ParsePercent(m[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid percentage %q: %v", ErrUnknownInstruction, m[i+1], err)
		}
		rates[c] = r
	}
	month, err := parseMonth(m[len(categories)+1])
	if err != nil {
		return nil, err
	}
	return ChangeCmd{Month: month, Rates: rates}, nil
}

// parseMonth only accepts upper case month names.
func parseMonth(name string) (time.Month, error) {
	month, err := date.ParseCalendarMonth(name)
	if err != nil || strings.ToUpper(month.String()) != name {
		return 0, fmt.Errorf("%w: invalid month %q", ErrUnknownInstruction, name)
	}
	return month, nil
}
