package mymoney

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/phuslu/log"
)

// Platform feeds instruction lines to a Portfolio and collects their output.
type Platform struct {
	portfolio *Portfolio
	// Logger receives the platform events, it defaults to log.DefaultLogger.
	Logger *log.Logger
}

// NewPlatform creates a platform driving p.
func NewPlatform(p *Portfolio) *Platform {
	return &Platform{portfolio: p, Logger: &log.DefaultLogger}
}

// Portfolio returns the driven portfolio.
func (pl *Platform) Portfolio() *Portfolio { return pl.portfolio }

// Execute parses and executes a single line.
//
// Lines that are not valid instructions are skipped, they never produce an
// output.
func (pl *Platform) Execute(line string) (output string, ok bool) {
	ins, err := ParseInstruction(line)
	if err != nil {
		pl.Logger.Debug().Err(err).Msg("skipping line")
		return "", false
	}
	output, ok = ins.Execute(pl.portfolio)
	pl.Logger.Debug().Str("command", string(ins.What())).Bool("output", ok).Msg("executed instruction")
	return output, ok
}

// Run executes every line read from r, in order, and writes each output line to w.
//
// It stops at the end of r, on the first I/O error, or when ctx is done.
func (pl *Platform) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	var lines, outputs int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lines++
		output, ok := pl.Execute(scanner.Text())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, output); err != nil {
			return fmt.Errorf("cannot write output of line %d: %w", lines, err)
		}
		outputs++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read line %d: %w", lines+1, err)
	}
	pl.Logger.Info().Int("lines", lines).Int("outputs", outputs).Msg("instructions processed")
	return nil
}

// Shutdown discards the portfolio state.
func (pl *Platform) Shutdown() {
	pl.portfolio.Clear()
}
