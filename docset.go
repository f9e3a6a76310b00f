// Package docset provides a generator for Dash documentation bundles.
// It mirrors public documentation sites, injects Dash table-of-contents
// anchors into the downloaded HTML, builds the SQLite search index, and
// packages the result as a .docset bundle plus a compressed archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package docset
