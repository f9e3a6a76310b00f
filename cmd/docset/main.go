// Command docset builds Dash docsets from documentation sites.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docset"
	dochttp "github.com/fwojciec/docset/http"
	docslog "github.com/fwojciec/docset/slog"
	"github.com/fwojciec/docset/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for all HTTP traffic. Replaced in end-to-end tests.
	Fetcher docset.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docset"),
		kong.Description("Build Dash docsets from documentation sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docset --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Service logging is suppressed unless --verbose; progress output
	// goes to stdout either way.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = dochttp.NewFetcher()
	}
	deps.Fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	deps.Versions = docslog.NewLoggingVersionService(dochttp.NewVersionService(), logger)
	deps.Nav = docslog.NewLoggingNavService(&yaml.NavService{Fetcher: deps.Fetcher}, logger)

	return kongCtx.Run(deps)
}
