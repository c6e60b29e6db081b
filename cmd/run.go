package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/mymoney"
	"github.com/etnz/mymoney/config"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/phuslu/log"
)

type runCmd struct {
	journal string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run an instruction file and print the results" }
func (*runCmd) Usage() string {
	return `mymoney run [-journal <file>] <input>

  Executes every instruction of the input file ("-" for the standard input)
  and prints one line per BALANCE or REBALANCE result.
  Invalid lines are ignored.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.journal, "journal", "", "write the audit trail of every fund to this JSONL file")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one input file is required")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	pl, status := startPlatform(ctx, cfg, f.Arg(0), stdout)
	if pl == nil {
		return status
	}
	defer pl.Shutdown()

	if c.journal != "" {
		if err := writeJournal(c.journal, pl.Portfolio()); err != nil {
			pl.Logger.Error().Err(err).Str("journal", c.journal).Msg("cannot export journal")
			fmt.Fprintf(os.Stderr, "Error writing journal %q: %v\n", c.journal, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// startPlatform configures a platform from cfg and runs the input file on it,
// printing results to w. On failure it returns a nil platform and the exit status.
func startPlatform(ctx context.Context, cfg *config.Config, input string, w io.Writer) (*mymoney.Platform, subcommands.ExitStatus) {
	logger := newLogger(cfg)
	logger.Context = log.NewContext(nil).Str("run", uuid.NewString()).Value()

	pl, err := newPlatform(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	r, err := openInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading instructions: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	defer r.Close()

	logger.Info().Str("input", input).Int("year", cfg.Year()).Msg("starting run")
	if err := pl.Run(ctx, r, w); err != nil {
		logger.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "Error running %q: %v\n", input, err)
		return nil, subcommands.ExitFailure
	}
	return pl, subcommands.ExitSuccess
}

// writeJournal exports the audit trail of p into the file name.
func writeJournal(name string, p *mymoney.Portfolio) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return mymoney.EncodeJournal(f, p)
}
