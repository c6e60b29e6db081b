package mymoney

import (
	"slices"
	"testing"
	"time"

	"github.com/etnz/mymoney/date"
)

func TestFund_Uninitialized(t *testing.T) {
	f := NewFund(Equity)
	if f.Initialized() {
		t.Errorf("NewFund().Initialized() = true, want false")
	}
	if !f.Initial().IsZero() || !f.Current().IsZero() {
		t.Errorf("NewFund() Initial() = %v, Current() = %v, want 0, 0", f.Initial(), f.Current())
	}
	if _, ok := f.Last(); ok {
		t.Errorf("NewFund().Last() ok = true, want false")
	}
	if _, ok := f.BalanceAsOf(time.January); ok {
		t.Errorf("NewFund().BalanceAsOf(January) ok = true, want false")
	}

	// transactions require an initialized fund
	f.Apply(date.New(testYear, time.January), MonthlySIP, M(500))
	if f.Len() != 0 || !f.Current().IsZero() {
		t.Errorf("Apply() on uninitialized fund recorded Len() = %v, Current() = %v", f.Len(), f.Current())
	}
}

func TestFund_Initialize(t *testing.T) {
	jan := date.New(testYear, time.January)

	testCases := []struct {
		name        string
		amounts     []float64
		wantInit    bool
		wantInitial float64
	}{
		{name: "once", amounts: []float64{200}, wantInit: true, wantInitial: 200},
		{name: "zero is a valid allocation", amounts: []float64{0}, wantInit: true, wantInitial: 0},
		{name: "negative is skipped", amounts: []float64{-10}, wantInit: false, wantInitial: 0},
		{name: "first success wins", amounts: []float64{-10, 300, 999}, wantInit: true, wantInitial: 300},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFund(Debt)
			for _, a := range tc.amounts {
				f.Initialize(M(a), jan)
			}
			if f.Initialized() != tc.wantInit {
				t.Errorf("Initialized() = %v, want %v", f.Initialized(), tc.wantInit)
			}
			if !f.Initial().Equal(M(tc.wantInitial)) {
				t.Errorf("Initial() = %v, want %v", f.Initial(), tc.wantInitial)
			}
			if !f.Current().Equal(M(tc.wantInitial)) {
				t.Errorf("Current() = %v, want %v", f.Current(), tc.wantInitial)
			}
			wantLen := 0
			if tc.wantInit {
				wantLen = 1
			}
			if f.Len() != wantLen {
				t.Errorf("Len() = %v, want %v", f.Len(), wantLen)
			}
		})
	}
}

func TestFund_Apply(t *testing.T) {
	jan, feb := date.New(testYear, time.January), date.New(testYear, time.February)
	f := NewFund(Gold)
	f.Initialize(M(200), jan)

	f.Apply(jan, MonthlyChange, M(20))
	f.Apply(jan, Allocate, M(1000)) // ignored, not a transaction
	f.Apply(feb, MonthlySIP, M(500))
	f.Apply(feb, MonthlyChange, M(-72))

	if want := M(648); !f.Current().Equal(want) {
		t.Errorf("Current() = %v, want %v", f.Current(), want)
	}
	if want := M(200); !f.Initial().Equal(want) {
		t.Errorf("Initial() = %v, want %v", f.Initial(), want)
	}
	if got, want := eventsOf(f), []EventKind{Allocate, MonthlyChange, MonthlySIP, MonthlyChange}; !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}

	// every record carries the balance as of that record
	wantBalances := []Money{M(200), M(220), M(720), M(648)}
	i := 0
	for r := range f.Records() {
		if !r.Balance.Equal(wantBalances[i]) {
			t.Errorf("record[%d].Balance = %v, want %v", i, r.Balance, wantBalances[i])
		}
		i++
	}
}

func TestFund_BalanceIsTheSumOfItsRecords(t *testing.T) {
	f := NewFund(Equity)
	on := date.New(testYear, time.January)
	f.Initialize(M(1000), on)
	for i, delta := range []float64{12.5, -3.25, 500, 0, -900.75, 77} {
		on = on.Add(i % 2)
		f.Apply(on, []EventKind{MonthlyChange, MonthlySIP, Rebalance}[i%3], M(delta))
	}

	sum := f.Initial()
	for r := range f.Records() {
		if r.Event != Allocate {
			sum = sum.Add(r.Amount)
		}
	}
	if !sum.Equal(f.Current()) {
		t.Errorf("Initial() + amounts = %v, want Current() %v", sum, f.Current())
	}
	last, _ := f.Last()
	if !last.Balance.Equal(f.Current()) {
		t.Errorf("Last().Balance = %v, want Current() %v", last.Balance, f.Current())
	}
}

func TestFund_BalanceAsOf(t *testing.T) {
	f := NewFund(Equity)
	f.Initialize(M(100), date.New(2024, time.January))
	f.Apply(date.New(2024, time.January), MonthlyChange, M(10))      // 110
	f.Apply(date.New(2024, time.March), MonthlySIP, M(10))           // 120
	f.Apply(date.New(2025, time.January), MonthlyChange, M(30))      // 150
	f.Apply(date.New(2025, time.January), MonthlySIP, M(50))         // 200
	f.Apply(date.New(2025, time.February), MonthlyChange, M(-100.5)) // 99.5

	testCases := []struct {
		month  time.Month
		want   Money
		wantOK bool
	}{
		{month: time.January, want: M(200), wantOK: true}, // most recent January, last record
		{month: time.February, want: M(99.5), wantOK: true},
		{month: time.March, want: M(120), wantOK: true}, // only in 2024
		{month: time.April, wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.month.String(), func(t *testing.T) {
			got, ok := f.BalanceAsOf(tc.month)
			if ok != tc.wantOK {
				t.Fatalf("BalanceAsOf(%v) ok = %v, want %v", tc.month, ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("BalanceAsOf(%v) = %v, want %v", tc.month, got, tc.want)
			}
		})
	}
}

func TestFund_LastOf(t *testing.T) {
	jan, feb := date.New(testYear, time.January), date.New(testYear, time.February)
	f := NewFund(Debt)
	f.Initialize(M(100), jan)
	f.Apply(jan, MonthlyChange, M(1))
	f.Apply(feb, MonthlySIP, M(2))
	f.Apply(feb, MonthlyChange, M(3))
	f.Apply(feb, MonthlySIP, M(4))

	last, ok := f.LastOf(MonthlyChange)
	if !ok || last.Month != feb || !last.Amount.Equal(M(3)) {
		t.Errorf("LastOf(MonthlyChange) = %v, %v want the february change of 3", last, ok)
	}
	last, ok = f.LastOf(MonthlySIP)
	if !ok || !last.Amount.Equal(M(4)) {
		t.Errorf("LastOf(MonthlySIP) = %v, %v want the contribution of 4", last, ok)
	}
	if _, ok := f.LastOf(Rebalance); ok {
		t.Errorf("LastOf(Rebalance) ok = true, want false")
	}
	if r, _ := f.Last(); r.Event != MonthlySIP || !r.Balance.Equal(M(110)) {
		t.Errorf("Last() = %v, want the last contribution with balance 110", r)
	}
}
