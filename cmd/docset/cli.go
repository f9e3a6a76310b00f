package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/sources"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Fetcher  docset.Fetcher
	Versions docset.VersionService
	Nav      docset.NavService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" help:"Build a docset for a source"`
	Sources SourcesCmd `cmd:"" help:"List the available documentation sources"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Source      string `arg:"" help:"Source name (see 'docset sources')"`
	Version     string `help:"Version to package (versioned sources only); defaults to the latest release"`
	Workers     int    `short:"w" default:"4" help:"Concurrent download workers for page-list sources"`
	OutputDir   string `short:"o" default:"." env:"DOCSET_OUTPUT_DIR" help:"Directory for the .docset bundle and archive"`
	MaxPages    int    `default:"1000" help:"Page limit for mirrored sources"`
	Icon        string `type:"existingfile" help:"PNG icon to copy into the docset root; an @2x sibling is copied when present"`
	NoBundleCSS bool   `help:"Skip bundling the site's compiled stylesheet; pages load it from the CDN"`
	NoArchive   bool   `help:"Skip writing the .tgz archive"`
	Fresh       bool   `help:"Discard any existing bundle before building"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBUNDLE\tMODE\tURL")
	for _, src := range sources.All() {
		mode := "mirror"
		if len(src.NavURLs) > 0 {
			mode = "nav"
		}
		fmt.Fprintf(tw, "%s\t%s.docset\t%s\t%s\n", src.Name, src.Bundle, mode, src.BaseURL)
	}
	return tw.Flush()
}
