package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docset"
	"github.com/fwojciec/docset/archive"
	"github.com/fwojciec/docset/crawl"
	"github.com/fwojciec/docset/etree"
	"github.com/fwojciec/docset/fs"
	"github.com/fwojciec/docset/goquery"
	docslog "github.com/fwojciec/docset/slog"
	"github.com/fwojciec/docset/sources"
	"github.com/fwojciec/docset/sqlite"
)

// Run executes the build command: crawl, index, package.
func (c *BuildCmd) Run(deps *Dependencies) error {
	src, err := sources.Lookup(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
		fmt.Fprintf(deps.Stderr, "Hint: run 'docset sources' to list the available sources\n")
		return err
	}

	version := c.Version
	if version == "" && src.Versioned() {
		version, err = deps.Versions.LatestVersion(deps.Ctx, src)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
			return err
		}
	}

	if version != "" {
		fmt.Fprintf(deps.Stdout, "Building %s %s\n", src.Name, version)
	} else {
		fmt.Fprintf(deps.Stdout, "Building %s\n", src.Name)
	}

	bundle := fs.NewBundle(c.OutputDir, src.Bundle)
	if c.Fresh {
		if err := bundle.Remove(); err != nil {
			return fmt.Errorf("failed to remove existing bundle: %w", err)
		}
	}
	if err := bundle.Scaffold(); err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}

	if err := etree.NewPlistWriter().WriteFile(bundle.PlistPath(), src, version); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}

	src, result, err := c.crawl(deps, src, version, bundle)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Downloaded %d pages (%s), %d cached, %d failed\n",
		result.Downloaded, crawl.FormatBytes(result.Bytes), result.Cached, result.Failed)

	if src.StyleFile != "" && src.ChromeCSS != "" {
		if err := appendThemeCSS(bundle, src); err != nil {
			return fmt.Errorf("failed to write theme CSS: %w", err)
		}
	}

	if c.Icon != "" {
		if err := copyIcons(bundle, c.Icon); err != nil {
			return fmt.Errorf("failed to write icon: %w", err)
		}
	}

	stats, err := c.index(deps, src, bundle)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d pages, %d entries\n", stats.Pages, stats.Entries)

	if c.NoArchive {
		fmt.Fprintf(deps.Stdout, "Done: %s\n", bundle.DocsetDir())
		return nil
	}

	archivePath := filepath.Join(c.OutputDir, archive.ArchiveName(bundle.DocsetDir()))
	if err := archive.WriteTGZ(archivePath, bundle.DocsetDir()); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Done: %s\n", archivePath)

	return nil
}

// crawl mirrors or page-crawls the source into the bundle. For
// navigation-tree sources the resolved page list is merged into a copy
// of the source so the indexer can use the navigation titles.
func (c *BuildCmd) crawl(deps *Dependencies, src *docset.Source, version string, bundle *fs.Bundle) (*docset.Source, *crawl.Result, error) {
	var cssFile string
	if src.CompiledCSSFile != "" && !c.NoBundleCSS {
		cssFile = c.bundleCompiledCSS(deps, src, version, bundle)
	}

	crawler := &crawl.Crawler{
		Fetcher:   deps.Fetcher,
		Gate:      crawl.NewAdaptiveGate(),
		Domains:   crawl.NewDomainLimiter(2.0),
		Processor: &goquery.Processor{CompiledCSSFile: cssFile},
		Links:     goquery.NewLinkExtractor(),
		Store:     bundle,
		Workers:   c.Workers,
		MaxPages:  c.MaxPages,
		Logger:    deps.Logger,
	}

	progress := c.progressFunc(deps)

	if len(src.NavURLs) > 0 {
		pages, err := deps.Nav.Pages(deps.Ctx, src, version)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docset.ErrorMessage(err))
			return nil, nil, err
		}

		merged := *src
		merged.Pages = append(append([]docset.Page{}, src.Pages...), pages...)

		result, err := crawler.CrawlPages(deps.Ctx, &merged, version, pages, progress)
		if err != nil {
			return nil, nil, err
		}
		return &merged, result, nil
	}

	result, err := crawler.Mirror(deps.Ctx, src, progress)
	if err != nil {
		return nil, nil, err
	}
	return src, result, nil
}

// index rebuilds the search index from the pages on disk.
func (c *BuildCmd) index(deps *Dependencies, src *docset.Source, bundle *fs.Bundle) (*goquery.Stats, error) {
	db := sqlite.NewDB(bundle.DBPath())
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("failed to open search index: %w", err)
	}
	defer db.Close()

	indexer := &goquery.Indexer{
		Walker: bundle,
		Store:  bundle,
		Index:  docslog.NewLoggingIndexService(sqlite.NewIndexService(db), deps.Logger),
	}
	return indexer.Build(deps.Ctx, src)
}

// progressFunc prints one line per page to stdout and failures to stderr.
func (c *BuildCmd) progressFunc(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			if event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
			}
		case crawl.ProgressDownloaded:
			fmt.Fprintf(deps.Stdout, "  get %s\n", crawl.TruncateURL(event.URL, 70))
		case crawl.ProgressCached:
			fmt.Fprintf(deps.Stdout, "  cached %s\n", crawl.TruncateURL(event.URL, 70))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 70), event.Error)
		}
	}
}

// bundleCompiledCSS downloads the site's compiled stylesheet into
// Documents so pages render offline. The fingerprinted URL is taken
// from the index page. Returns the bundled filename, or the empty
// string when the stylesheet cannot be located or saved; page links
// are then left pointing at the CDN.
func (c *BuildCmd) bundleCompiledCSS(deps *Dependencies, src *docset.Source, version string, bundle *fs.Bundle) string {
	if bundle.HasPage(src.CompiledCSSFile) {
		return src.CompiledCSSFile
	}

	indexURL := src.PageURLFor(version, strings.TrimSuffix(src.IndexFile, ".html"))
	html, err := deps.Fetcher.Fetch(deps.Ctx, indexURL)
	if err != nil {
		deps.Logger.Warn("compiled stylesheet lookup failed", "url", indexURL, "err", err)
		return ""
	}

	cssURL, ok := goquery.FindStylesheetURL(html, indexURL, src.CompiledCSSMatch)
	if !ok {
		deps.Logger.Warn("compiled stylesheet link not found", "url", indexURL)
		return ""
	}

	css, err := deps.Fetcher.Fetch(deps.Ctx, cssURL)
	if err != nil {
		deps.Logger.Warn("compiled stylesheet download failed", "url", cssURL, "err", err)
		return ""
	}
	if err := bundle.WriteResource(src.CompiledCSSFile, []byte(css)); err != nil {
		deps.Logger.Warn("compiled stylesheet write failed", "file", src.CompiledCSSFile, "err", err)
		return ""
	}

	fmt.Fprintf(deps.Stdout, "Bundled %s (%s)\n", src.CompiledCSSFile, crawl.FormatBytes(len(css)))
	return src.CompiledCSSFile
}

// copyIcons writes the icon next to Contents, along with its @2x
// retina sibling when one sits beside the given file.
func copyIcons(bundle *fs.Bundle, icon string) error {
	data, err := os.ReadFile(icon)
	if err != nil {
		return err
	}
	if err := bundle.WriteIcon("icon.png", data); err != nil {
		return err
	}

	ext := filepath.Ext(icon)
	data, err = os.ReadFile(strings.TrimSuffix(icon, ext) + "@2x" + ext)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return bundle.WriteIcon("icon@2x.png", data)
}

// appendThemeCSS appends the chrome-hiding CSS to the source's theme
// stylesheet, once.
func appendThemeCSS(bundle *fs.Bundle, src *docset.Source) error {
	existing, err := bundle.ReadPage(src.StyleFile)
	if err == nil && strings.Contains(existing, src.ChromeCSS) {
		return nil
	}
	return bundle.AppendToResource(src.StyleFile, []byte("\n"+src.ChromeCSS))
}
