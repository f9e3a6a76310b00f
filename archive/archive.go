// Package archive packages a docset bundle into the .tgz form Dash
// feeds expect.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteTGZ archives the directory at srcDir into a gzipped tarball at
// dstPath. Entries are stored relative to srcDir's parent so the
// archive unpacks to a single <name>.docset directory. macOS metadata
// files are excluded.
func WriteTGZ(dstPath, srcDir string) error {
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	parent := filepath.Dir(srcDir)

	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Name() == ".DS_Store" {
			return nil
		}

		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if info.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", srcDir, err)
	}

	// Flush tar and gzip before the file closes so a partial archive
	// never looks complete.
	if err := tw.Close(); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return out.Close()
}

// ArchiveName returns the conventional archive filename for a bundle,
// e.g. "Claude_API.docset" becomes "Claude_API.tgz".
func ArchiveName(docsetDir string) string {
	base := filepath.Base(docsetDir)
	return strings.TrimSuffix(base, ".docset") + ".tgz"
}
