package mymoney

import (
	"fmt"
	"io"
)

// EncodeJournal writes the audit trail of every fund of p as JSONL, one record
// per line, funds in display order and records in chronological order.
//
// Each line holds the fields "fund", "month", "event", "amount" and "balance"
// in that order. Amounts are exact decimal strings.
func EncodeJournal(w io.Writer, p *Portfolio) error {
	for f := range p.Funds() {
		for r := range f.Records() {
			var o jsonObjectWriter
			o.Append("fund", f.Category())
			o.EmbedFrom(r)
			line, err := o.MarshalJSON()
			if err != nil {
				return fmt.Errorf("cannot encode %v record of %v: %w", f.Category(), r.Month, err)
			}
			line = append(line, '\n')
			if _, err := w.Write(line); err != nil {
				return fmt.Errorf("cannot write journal: %w", err)
			}
		}
	}
	return nil
}
