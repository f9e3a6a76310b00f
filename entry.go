package docset

import "context"

// EntryType is a Dash-supported search index category.
type EntryType string

// Entry types used by the built-in sources. Dash recognizes a fixed
// vocabulary; these are the members this generator emits.
const (
	TypeGuide       EntryType = "Guide"
	TypeSection     EntryType = "Section"
	TypeMethod      EntryType = "Method"
	TypeClass       EntryType = "Class"
	TypeFunction    EntryType = "Function"
	TypeAttribute   EntryType = "Attribute"
	TypeParameter   EntryType = "Parameter"
	TypeValue       EntryType = "Value"
	TypeType        EntryType = "Type"
	TypeError       EntryType = "Error"
	TypeEvent       EntryType = "Event"
	TypeSample      EntryType = "Sample"
	TypeLibrary     EntryType = "Library"
	TypeSetting     EntryType = "Setting"
	TypeResource    EntryType = "Resource"
	TypeCommand     EntryType = "Command"
	TypeEnvironment EntryType = "Environment"
)

// Entry is one row of the Dash search index. Path is relative to the
// bundle's Documents directory and may carry a "#anchor" fragment.
type Entry struct {
	Name string    `json:"name"`
	Type EntryType `json:"type"`
	Path string    `json:"path"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.Type == "" {
		return Errorf(EINVALID, "entry type required")
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	return nil
}

// IndexService manages the Dash search index.
type IndexService interface {
	// Reset drops and recreates the searchIndex table. The index is
	// always rebuilt from the on-disk bundle so it stays consistent with
	// whatever files are present.
	Reset(ctx context.Context) error

	// CreateEntry inserts a single entry. Duplicate (name, type, path)
	// triples are silently ignored.
	CreateEntry(ctx context.Context, entry *Entry) error

	// CreateEntries inserts a batch of entries, ignoring duplicates.
	CreateEntries(ctx context.Context, entries []*Entry) error

	// CountEntries returns the number of rows in the index.
	CountEntries(ctx context.Context) (int, error)
}
