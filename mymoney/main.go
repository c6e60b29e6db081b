// Command mymoney runs a three fund portfolio ledger.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/mymoney/cmd"
	"github.com/etnz/mymoney/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("mymoney")

	commander := subcommands.NewCommander(flag.CommandLine, "mymoney")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
// It is a no-op unless the shell asks for completions (COMP_LINE is set).
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
		Sub: map[string]*complete.Command{
			"run": {
				Flags: map[string]complete.Predictor{"journal": predict.Files("*.jsonl")},
				Args:  predict.Files("*"),
			},
			"history": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Files("*"),
			},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
