// Package etree writes the Info.plist metadata file Dash reads from a
// docset bundle.
package etree

import (
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/docset"
)

const plistDoctype = `plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// PlistWriter renders a source's bundle metadata as plist XML.
type PlistWriter struct{}

// NewPlistWriter creates a PlistWriter.
func NewPlistWriter() *PlistWriter {
	return &PlistWriter{}
}

// WriteFile renders the Info.plist for a source and writes it to path.
// The fallback URL has its {version} placeholder expanded.
func (w *PlistWriter) WriteFile(path string, src *docset.Source, version string) error {
	data, err := w.Render(src, version)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Render returns the Info.plist XML for a source.
func (w *PlistWriter) Render(src *docset.Source, version string) ([]byte, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE " + plistDoctype)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString(dict, "CFBundleIdentifier", src.Identifier)
	addString(dict, "CFBundleName", src.DisplayName)
	addString(dict, "DocSetPlatformFamily", src.Platform)
	addBool(dict, "isDashDocset", true)
	addString(dict, "dashIndexFilePath", src.IndexFile)
	addString(dict, "DashDocSetFamily", "dashtoc")
	addBool(dict, "isJavaScriptEnabled", src.JavaScript)
	if src.FallbackURL != "" {
		addString(dict, "DashDocSetFallbackURL", src.FallbackURLFor(version))
	}
	if src.Keyword != "" {
		addString(dict, "DashDocSetKeyword", src.Keyword)
		addString(dict, "DashDocSetPluginKeyword", src.Keyword)
	}
	if src.FullText {
		addBool(dict, "DashDocSetDefaultFTSEnabled", true)
	}

	doc.Indent(4)
	return doc.WriteToBytes()
}

func addString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func addBool(dict *etree.Element, key string, value bool) {
	dict.CreateElement("key").SetText(key)
	if value {
		dict.CreateElement("true")
	} else {
		dict.CreateElement("false")
	}
}
