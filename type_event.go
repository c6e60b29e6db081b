package mymoney

import "fmt"

// EventKind is the kind of event a Record relates.
type EventKind int

const (
	// Allocate is the one-time initializing deposit, always the first record of a fund.
	Allocate EventKind = iota
	// MonthlyChange is a market driven percentage adjustment of the balance.
	MonthlyChange
	// MonthlySIP is the recurring fixed contribution.
	MonthlySIP
	// Rebalance is the weight restoring adjustment.
	Rebalance
)

func (k EventKind) String() string {
	switch k {
	case Allocate:
		return "ALLOCATE"
	case MonthlyChange:
		return "MONTHLY_CHANGE"
	case MonthlySIP:
		return "MONTHLY_SIP"
	case Rebalance:
		return "REBALANCE"
	default:
		return "unknown"
	}
}

// ParseEventKind parses the String() form of an EventKind.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range []EventKind{Allocate, MonthlyChange, MonthlySIP, Rebalance} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind: %q", s)
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EventKind) UnmarshalText(text []byte) error {
	v, err := ParseEventKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
