package zotero

import "encoding/json"

// The serialized shapes below fix the key names and their order in the
// JSON surface. LibraryItem keeps the Zotero API's camelCase for the fields
// it shares with the API; the other entities use plain lowercase keys.
// Existing consumers depend on both.

// SerializedAuthor is the JSON form of an Author.
type SerializedAuthor struct {
	Type      string  `json:"type"`
	FirstName string  `json:"firstname"`
	LastName  *string `json:"lastname"`
}

// SerializedAttachment is the JSON form of an Attachment.
type SerializedAttachment struct {
	ByteSize int64   `json:"bytesize"`
	Type     *string `json:"type"`
	Href     *string `json:"href"`
	Key      *string `json:"key"`
}

// SerializedAttachmentMetadata is the JSON form of an AttachmentMetadata.
type SerializedAttachmentMetadata struct {
	Key         string   `json:"key"`
	Parent      *string  `json:"parent"`
	FileHash    *string  `json:"file_hash"`
	MTime       *string  `json:"mtime"`
	Title       string   `json:"title"`
	Filename    string   `json:"filename"`
	ContentType string   `json:"content_type"`
	Tags        []string `json:"tags"`
}

// SerializedLibraryItem is the JSON form of a LibraryItem.
type SerializedLibraryItem struct {
	Key                 string                 `json:"key"`
	Title               string                 `json:"title"`
	Type                string                 `json:"type"`
	Date                *string                `json:"date"`
	DOI                 *string                `json:"doi"`
	ISBN                *string                `json:"isbn"`
	ISSN                *string                `json:"issn"`
	Publisher           *string                `json:"publisher"`
	Pages               *string                `json:"pages"`
	ConferenceName      *string                `json:"conferenceName"`
	ProceedingsTitle    *string                `json:"proceedingsTitle"`
	PublicationTitle    *string                `json:"publicationTitle"`
	JournalAbbreviation *string                `json:"journalAbbreviation"`
	URL                 *string                `json:"url"`
	Volume              *string                `json:"volume"`
	Series              *string                `json:"series"`
	Issue               *string                `json:"issue"`
	Authors             []SerializedAuthor     `json:"authors"`
	Attachments         []SerializedAttachment `json:"attachments"`
	Tags                []string               `json:"tags"`
}

// Serialize returns the JSON form of a.
func (a Author) Serialize() SerializedAuthor {
	return SerializedAuthor{Type: a.Role, FirstName: a.FirstName, LastName: a.LastName}
}

// MarshalJSON encodes the serialized form.
func (a Author) MarshalJSON() ([]byte, error) { return json.Marshal(a.Serialize()) }

// Serialize returns the JSON form of a.
func (a Attachment) Serialize() SerializedAttachment {
	return SerializedAttachment{ByteSize: a.ByteSize, Type: a.MediaType, Href: a.Href, Key: a.Key}
}

// MarshalJSON encodes the serialized form.
func (a Attachment) MarshalJSON() ([]byte, error) { return json.Marshal(a.Serialize()) }

// Serialize returns the JSON form of m.
func (m AttachmentMetadata) Serialize() SerializedAttachmentMetadata {
	return SerializedAttachmentMetadata{
		Key:         m.Key,
		Parent:      m.ParentKey,
		FileHash:    m.ContentHash,
		MTime:       m.ModifiedAt,
		Title:       m.Title,
		Filename:    m.Filename,
		ContentType: m.ContentType,
		Tags:        nonNil(m.Tags),
	}
}

// MarshalJSON encodes the serialized form.
func (m AttachmentMetadata) MarshalJSON() ([]byte, error) { return json.Marshal(m.Serialize()) }

// Serialize returns the JSON form of it, authors and attachments included.
func (it LibraryItem) Serialize() SerializedLibraryItem {
	authors := make([]SerializedAuthor, len(it.Authors))
	for i, a := range it.Authors {
		authors[i] = a.Serialize()
	}
	attachments := make([]SerializedAttachment, len(it.Attachments))
	for i, a := range it.Attachments {
		attachments[i] = a.Serialize()
	}
	return SerializedLibraryItem{
		Key:                 it.Key,
		Title:               it.Title,
		Type:                it.ItemType,
		Date:                it.Date,
		DOI:                 it.DOI,
		ISBN:                it.ISBN,
		ISSN:                it.ISSN,
		Publisher:           it.Publisher,
		Pages:               it.Pages,
		ConferenceName:      it.ConferenceName,
		ProceedingsTitle:    it.ProceedingsTitle,
		PublicationTitle:    it.PublicationTitle,
		JournalAbbreviation: it.JournalAbbreviation,
		URL:                 it.URL,
		Volume:              it.Volume,
		Series:              it.Series,
		Issue:               it.Issue,
		Authors:             authors,
		Attachments:         attachments,
		Tags:                nonNil(it.Tags),
	}
}

// MarshalJSON encodes the serialized form.
func (it LibraryItem) MarshalJSON() ([]byte, error) { return json.Marshal(it.Serialize()) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
