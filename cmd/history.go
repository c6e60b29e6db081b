package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/mymoney/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	raw bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the audit trail of every fund" }
func (*historyCmd) Usage() string {
	return `mymoney history [-raw] <input>

  Executes every instruction of the input file ("-" for the standard input),
  then displays every record of every fund, with its balance.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one input file is required")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	// results of the run are not part of the report.
	pl, status := startPlatform(ctx, cfg, f.Arg(0), io.Discard)
	if pl == nil {
		return status
	}
	defer pl.Shutdown()

	doc := renderer.RenderHistory(pl.Portfolio(), cfg.Display.Currency)
	if c.raw {
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc, cfg.Display.Style)
	return subcommands.ExitSuccess
}
