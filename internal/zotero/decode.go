package zotero

import (
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/zoteroxy/internal/tree"
	"github.com/rs/zerolog"
)

// Decoder turns raw API response bodies into entities.
type Decoder struct {
	log zerolog.Logger
}

// NewDecoder creates a Decoder that reports unsupported record shapes to log.
func NewDecoder(log zerolog.Logger) *Decoder {
	return &Decoder{log: log}
}

// Items decodes a JSON array of item records, or a single item record.
func (d *Decoder) Items(body []byte) ([]LibraryItem, error) {
	records, err := splitRecords(body)
	if err != nil {
		return nil, err
	}
	items := make([]LibraryItem, 0, len(records))
	for i, raw := range records {
		item, err := NewLibraryItem(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if hasAttachmentList(tree.Of(raw)) {
			d.log.Warn().Str("key", item.Key).Msg("multiple attachment links are not supported; ignoring them")
		}
		items = append(items, item)
	}
	d.log.Debug().Int("count", len(items)).Msg("decoded library items")
	return items, nil
}

// Attachments decodes a JSON array of attachment item records, or a single
// attachment item record.
func (d *Decoder) Attachments(body []byte) ([]AttachmentMetadata, error) {
	records, err := splitRecords(body)
	if err != nil {
		return nil, err
	}
	out := make([]AttachmentMetadata, 0, len(records))
	for i, raw := range records {
		m, err := NewAttachmentMetadata(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, m)
	}
	d.log.Debug().Int("count", len(out)).Msg("decoded attachment items")
	return out, nil
}

func splitRecords(body []byte) ([]any, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}
	switch v := v.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	default:
		return nil, fmt.Errorf("parsing records: %w (got %s)", ErrNotMapping, describe(tree.Of(v)))
	}
}
