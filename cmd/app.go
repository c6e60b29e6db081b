// Package cmd implements the CLI application to run a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/mymoney"
	"github.com/etnz/mymoney/config"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/phuslu/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "portfolio")
	c.Register(&historyCmd{}, "portfolio")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// ConfigFile is the path to the optional TOML configuration file.
var ConfigFile = flag.String("config", "", "Path to the TOML configuration file")

// stdout is where results are printed.
var stdout io.Writer = os.Stdout

// stdin is read for the "-" input.
var stdin io.Reader = os.Stdin

// loadConfig loads the .env file, if any, then the configuration.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env file: %w", err)
	}
	return config.LoadFromFile(*ConfigFile)
}

// newLogger creates the stderr logger described by cfg.
func newLogger(cfg *config.Config) *log.Logger {
	logger := &log.Logger{
		Level:      log.ParseLevel(cfg.Logging.Level),
		TimeFormat: "15:04:05",
	}
	if cfg.Logging.Format == "json" {
		logger.TimeFormat = ""
		logger.Writer = &log.IOWriter{Writer: os.Stderr}
	} else {
		logger.Writer = &log.ConsoleWriter{Writer: os.Stderr}
	}
	return logger
}

// newPlatform creates a platform over a fresh portfolio configured by cfg.
func newPlatform(cfg *config.Config, logger *log.Logger) (*mymoney.Platform, error) {
	months, err := cfg.Months()
	if err != nil {
		return nil, err
	}
	pl := mymoney.NewPlatform(mymoney.NewPortfolio(cfg.Year(), months...))
	pl.Logger = logger
	return pl, nil
}

// openInput opens the instruction file name, "-" is the standard input.
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open instruction file: %w", err)
	}
	return f, nil
}

// printMarkdown renders doc for the terminal in the given glamour style.
// The raw markdown is printed if it cannot be rendered.
func printMarkdown(doc, style string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(stdout, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Fprint(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}
