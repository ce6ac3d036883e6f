package zotero

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/zoteroxy/internal/tree"
)

// ErrNotMapping is returned when a record is not a JSON object. Absent
// fields are never an error; this is a caller contract violation.
var ErrNotMapping = errors.New("record is not a JSON object")

func asRecord(what string, raw any) (tree.Node, error) {
	n := tree.Of(raw)
	if n.Kind() != tree.Mapping {
		return tree.Missing, fmt.Errorf("%s: %w (got %s)", what, ErrNotMapping, describe(n))
	}
	return n, nil
}

func describe(n tree.Node) string {
	if n.IsNull() {
		return "null"
	}
	return n.Kind().String()
}

// NewAuthor maps one entry of a record's "creators" list.
func NewAuthor(raw any) (Author, error) {
	n, err := asRecord("creator", raw)
	if err != nil {
		return Author{}, err
	}
	return authorFrom(n), nil
}

// NewAttachment maps the object under a record's links.attachment.
func NewAttachment(raw any) (Attachment, error) {
	n, err := asRecord("attachment link", raw)
	if err != nil {
		return Attachment{}, err
	}
	return attachmentFrom(n), nil
}

// AttachmentsFromLinks derives the attachment list from a record's "links"
// object: one Attachment when an "attachment" link object exists, none
// otherwise.
func AttachmentsFromLinks(links any) []Attachment {
	return attachmentsFrom(tree.Of(links))
}

// NewAttachmentMetadata maps an attachment item record ({"data": {...}}).
func NewAttachmentMetadata(raw any) (AttachmentMetadata, error) {
	n, err := asRecord("attachment item", raw)
	if err != nil {
		return AttachmentMetadata{}, err
	}
	return attachmentMetadataFrom(n), nil
}

// NewLibraryItem maps a library item record ({"data": {...}, "links": {...}}).
func NewLibraryItem(raw any) (LibraryItem, error) {
	n, err := asRecord("library item", raw)
	if err != nil {
		return LibraryItem{}, err
	}
	return libraryItemFrom(n), nil
}

func authorFrom(data tree.Node) Author {
	return Author{
		Role:      data.Get("creatorType").String(DefaultRole),
		FirstName: data.Get("firstName").String(""),
		LastName:  data.Get("lastName").OptString(),
	}
}

func attachmentFrom(link tree.Node) Attachment {
	a := Attachment{
		ByteSize:  link.Get("attachmentSize").Int(0),
		MediaType: link.Get("attachmentType").OptString(),
		Href:      link.Get("href").OptString(),
	}
	if a.Href != nil {
		key := lastSegment(*a.Href)
		a.Key = &key
	}
	return a
}

func lastSegment(href string) string {
	return href[strings.LastIndex(href, "/")+1:]
}

// attachmentsFrom only models a single attachment link object. A list under
// links.attachment yields nothing; see hasAttachmentList.
func attachmentsFrom(links tree.Node) []Attachment {
	link := links.Get("attachment")
	if link.Kind() != tree.Mapping {
		return []Attachment{}
	}
	return []Attachment{attachmentFrom(link)}
}

func hasAttachmentList(record tree.Node) bool {
	return record.At("links", "attachment").Kind() == tree.Sequence
}

// tagsFrom flattens [{"tag": "x"}, ...] to ["x", ...]. Entries without a
// scalar "tag" are skipped.
func tagsFrom(tags tree.Node) []string {
	items := tags.Items()
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := it.Get("tag").OptString(); t != nil {
			out = append(out, *t)
		}
	}
	return out
}

func attachmentMetadataFrom(record tree.Node) AttachmentMetadata {
	data := record.Get("data")
	key := data.Get("key").String(DefaultKey)
	return AttachmentMetadata{
		Key:         key,
		ParentKey:   data.Get("parent").OptString(),
		ContentHash: data.Get("md5").OptString(),
		ModifiedAt:  data.Get("mtime").OptString(),
		Title:       data.Get("title").String(""),
		Filename:    data.Get("filename").String(key),
		ContentType: data.Get("contentType").String(DefaultContentType),
		Tags:        tagsFrom(data.Get("tags")),
	}
}

func libraryItemFrom(record tree.Node) LibraryItem {
	data := record.Get("data")

	creators := data.Get("creators").Items()
	authors := make([]Author, 0, len(creators))
	for _, c := range creators {
		authors = append(authors, authorFrom(c))
	}

	return LibraryItem{
		Key:      data.Get("key").String(DefaultKey),
		Title:    data.Get("title").String(DefaultTitle),
		ItemType: data.Get("itemType").String(DefaultItemType),

		Date:                data.Get("date").OptString(),
		DOI:                 data.Get("DOI").OptString(),
		ISBN:                data.Get("ISBN").OptString(),
		ISSN:                data.Get("ISSN").OptString(),
		Publisher:           data.Get("publisher").OptString(),
		Pages:               data.Get("pages").OptString(),
		ConferenceName:      data.Get("conferenceName").OptString(),
		ProceedingsTitle:    data.Get("proceedingsTitle").OptString(),
		PublicationTitle:    data.Get("publicationTitle").OptString(),
		JournalAbbreviation: data.Get("journalAbbreviation").OptString(),
		URL:                 data.Get("url").OptString(),
		Volume:              data.Get("volume").OptString(),
		Series:              data.Get("series").OptString(),
		Issue:               data.Get("issue").OptString(),

		Authors:     authors,
		Attachments: attachmentsFrom(record.Get("links")),
		Tags:        tagsFrom(data.Get("tags")),
	}
}
