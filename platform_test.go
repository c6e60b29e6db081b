package mymoney

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/phuslu/log"
)

// newTestPlatform returns a platform over a fresh portfolio pinned to testYear.
func newTestPlatform() *Platform {
	pl := NewPlatform(NewPortfolio(testYear))
	pl.Logger = &log.Logger{Level: log.ErrorLevel, Writer: &log.IOWriter{Writer: io.Discard}}
	return pl
}

func TestPlatform_Run(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "balance and rebalance",
			input: `ALLOCATE 6000 3000 1000
SIP 2000 1000 500
CHANGE 4.00% 10.00% 2.00% JANUARY
CHANGE -10.00% 40.00% 0.00% FEBRUARY
CHANGE 12.50% 12.50% 12.50% MARCH
CHANGE 8.00% -3.00% 7.00% APRIL
CHANGE 13.00% 21.00% 10.50% MAY
CHANGE 10.00% 8.00% -5.00% JUNE
BALANCE MARCH
REBALANCE
`,
			want: "10593 7897 2272\n23622 11811 3937\n",
		},
		{
			name: "repeated rebalance",
			input: `ALLOCATE 6000 3000 1000
SIP 2000 1000 500
CHANGE 4.00% 10.00% 2.00% JANUARY
CHANGE -10.00% 40.00% 0.00% FEBRUARY
CHANGE 12.50% 12.50% 12.50% MARCH
CHANGE 8.00% -3.00% 7.00% APRIL
CHANGE 13.00% 21.00% 10.50% MAY
CHANGE 10.00% 8.00% -5.00% JUNE
REBALANCE
REBALANCE
BALANCE AUGUST
BALANCE JULY
`,
			want: "23622 11811 3937\n25722 12861 4287\n27722 13861 4787\n25622 12811 4437\n",
		},
		{
			name: "not enough data to rebalance",
			input: `ALLOCATE 8000 6000 3500
SIP 3000 2000 1000
CHANGE 11.00% 9.00% 4.00% JANUARY
CHANGE -6.00% 21.00% -3.00% FEBRUARY
CHANGE 12.50% 18.00% 12.50% MARCH
CHANGE 23.00% -3.00% 7.00% APRIL
BALANCE MARCH
BALANCE APRIL
REBALANCE
`,
			want: "15938 14553 6188\n23293 16056 7691\nCANNOT_REBALANCE\n",
		},
		{
			name: "no contribution schedule",
			input: `ALLOCATE 8000 6000 3500
CHANGE 11.00% 9.00% 4.00% JANUARY
BALANCE JANUARY
BALANCE FEBRUARY
BALANCE MARCH
`,
			// the zero contribution is recorded in february, march has nothing
			want: "8880 6540 3640\n8880 6540 3640\n",
		},
		{
			name: "invalid lines are skipped",
			input: `ALLOCATE 8000 6000 3500
this is not an instruction

SIP 3000 2000 1000
BALANCE JANUARY
`,
			want: "8000 6000 3500\n",
		},
		{
			name:  "no allocation",
			input: "SIP 1 2 3\nBALANCE JANUARY\nREBALANCE\n",
			want:  "CANNOT_REBALANCE\n",
		},
		{
			name:  "no trailing newline",
			input: "ALLOCATE 1 2 3\nBALANCE JANUARY",
			want:  "1 2 3\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pl := newTestPlatform()
			var out bytes.Buffer
			if err := pl.Run(context.Background(), strings.NewReader(tc.input), &out); err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if got := out.String(); got != tc.want {
				t.Errorf("Run() output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPlatform_Execute(t *testing.T) {
	pl := newTestPlatform()
	steps := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{line: "ALLOCATE 6000 3000 1000"},
		{line: "BALANCE JANUARY", want: "6000 3000 1000", wantOK: true},
		{line: "garbage"},
		{line: "BALANCE DECEMBER"},
		{line: "REBALANCE", want: CannotRebalance, wantOK: true},
	}
	for _, s := range steps {
		got, ok := pl.Execute(s.line)
		if got != s.want || ok != s.wantOK {
			t.Errorf("Execute(%q) = %q, %v want %q, %v", s.line, got, ok, s.want, s.wantOK)
		}
	}
}

func TestPlatform_RunCancelled(t *testing.T) {
	pl := newTestPlatform()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := pl.Run(ctx, strings.NewReader("ALLOCATE 1 2 3\nBALANCE JANUARY\n"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
	if out.Len() != 0 {
		t.Errorf("Run() wrote %q after cancellation", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPlatform_RunWriteError(t *testing.T) {
	pl := newTestPlatform()
	err := pl.Run(context.Background(), strings.NewReader("ALLOCATE 1 2 3\nBALANCE JANUARY\n"), failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Run() error = %v, want a write error on line 2", err)
	}
}

func TestPlatform_Shutdown(t *testing.T) {
	pl := newTestPlatform()
	pl.Execute("ALLOCATE 1 2 3")
	pl.Shutdown()

	if got, ok := pl.Execute("BALANCE JANUARY"); ok {
		t.Errorf("Execute() after Shutdown() = %q, want no output", got)
	}
	// shutting down twice is harmless
	pl.Shutdown()
}
