// Package zotero maps raw Zotero web API records onto typed entities and
// serializes them back into the JSON shape the proxy exposes.
//
// Every constructor is total over JSON objects: a missing or malformed field
// resolves to its documented default, never to an error. The only failure
// is a top-level value that is not a JSON object at all (ErrNotMapping).
package zotero

// Default values for fields absent from a record.
const (
	DefaultRole        = "author"
	DefaultKey         = "unknown"
	DefaultTitle       = "(no title given)"
	DefaultItemType    = "unknown"
	DefaultContentType = "application/octet-stream"
)

// Author is one creator of a library item.
type Author struct {
	Role      string
	FirstName string
	LastName  *string
}

// Attachment is the primary file linked from a library item.
type Attachment struct {
	ByteSize  int64
	MediaType *string
	Href      *string
	// Key is the last path segment of Href.
	Key *string
}

// AttachmentMetadata describes a stored attachment item. ParentKey refers
// to the owning LibraryItem by key.
type AttachmentMetadata struct {
	Key         string
	ParentKey   *string
	ContentHash *string
	ModifiedAt  *string
	Title       string
	Filename    string
	ContentType string
	Tags        []string
}

// LibraryItem is a bibliographic record.
type LibraryItem struct {
	Key      string
	Title    string
	ItemType string

	Date                *string
	DOI                 *string
	ISBN                *string
	ISSN                *string
	Publisher           *string
	Pages               *string
	ConferenceName      *string
	ProceedingsTitle    *string
	PublicationTitle    *string
	JournalAbbreviation *string
	URL                 *string
	Volume              *string
	Series              *string
	Issue               *string

	Authors []Author
	// Attachments holds at most one element: the record's primary
	// attachment link.
	Attachments []Attachment
	Tags        []string
}
