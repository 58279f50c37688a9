package main

// This is a single-pass parser and evaluator for minilang programs.

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ltungv/minilang/internal/config"
	"github.com/ltungv/minilang/internal/lexer"
	"github.com/ltungv/minilang/internal/minilang"
)

const (
	exitSyntaxError   = 65
	exitSemanticError = 70
)

func main() {
	app := &cli.App{
		Name:      "minilang",
		Usage:     "Parse and evaluate a minilang program, then print its symbol table",
		ArgsUsage: "[script]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load settings from a TOML or YAML file",
				EnvVars: []string{"MINILANG_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Don't print the production trace",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Symbol dump format: text, yaml or toml",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Don't colorize the output",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	filename, in := "<stdin>", c.App.Reader
	if c.Args().Len() > 1 {
		return errors.New("Usage: minilang [script]")
	}
	if c.Args().Len() == 1 {
		filename = c.Args().First()
		f, err := os.Open(filename)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()
		in = f
	}

	status, err := execute(cfg, filename, in, c.App.Writer, c.App.ErrWriter)
	if err != nil {
		return err
	}
	if status != 0 {
		return cli.Exit("", status)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.Bool("quiet") {
		cfg.Trace.Enabled = false
	}
	if c.Bool("no-color") {
		cfg.Trace.Color = false
	}
	if c.IsSet("format") {
		cfg.Dump.Format = c.String("format")
	}
	return cfg, cfg.Validate()
}

// execute parses the program read from in, writes the trace and the symbol
// table to out and errors to errOut. It returns the process exit status.
func execute(cfg *config.Config, filename string, in io.Reader, out, errOut io.Writer) (int, error) {
	source, err := lexer.New(filename, in)
	if err != nil {
		return 0, err
	}

	var reporter minilang.Reporter
	if cfg.Trace.Color {
		reporter = minilang.NewColorReporter(errOut)
	} else {
		reporter = minilang.NewSimpleReporter(errOut)
	}
	var tracer *minilang.Tracer
	if cfg.Trace.Enabled {
		tracer = minilang.NewTracer(out, cfg.Trace.Indent, cfg.Trace.Color)
	}

	symbols := minilang.NewSymbolTable()
	parser := minilang.NewParser(source, symbols, reporter, tracer)
	if err := parser.Parse(); err == nil && cfg.Dump.Banner {
		fmt.Fprint(out, "\n=== Parse successful ===\n\n")
	}
	if err := symbols.Dump(out, cfg.DumpFormat()); err != nil {
		return 0, errors.Wrap(err, "dumping symbols")
	}

	switch {
	case reporter.HadSemanticError():
		return exitSemanticError, nil
	case reporter.HadError():
		return exitSyntaxError, nil
	}
	return 0, nil
}
