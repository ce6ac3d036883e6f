package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/zoteroxy/internal/zotero"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ItemRow is a library item shown in the picker.
type ItemRow struct {
	Item zotero.LibraryItem
}

// FilterValue implements list.Item.
func (r ItemRow) FilterValue() string {
	return strings.Join([]string{r.Item.Key, r.Item.Title, r.authors(), strings.Join(r.Item.Tags, " ")}, " ")
}

// authors lists last names, or first names for single-field creators.
func (r ItemRow) authors() string {
	names := make([]string, 0, len(r.Item.Authors))
	for _, a := range r.Item.Authors {
		if a.LastName != nil && *a.LastName != "" {
			names = append(names, *a.LastName)
		} else if a.FirstName != "" {
			names = append(names, a.FirstName)
		}
	}
	return strings.Join(names, ", ")
}

func (r ItemRow) size() string {
	if len(r.Item.Attachments) == 0 || r.Item.Attachments[0].ByteSize <= 0 {
		return ""
	}
	return formatBytes(r.Item.Attachments[0].ByteSize)
}

// formatBytes formats bytes as human-readable size
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for n := n / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// padOrTruncate pads s to exactly width runes, truncating with "…".
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	switch {
	case len(runes) > width && width == 1:
		return "…"
	case len(runes) > width:
		return string(runes[:width-1]) + "…"
	case len(runes) < width:
		return s + strings.Repeat(" ", width-len(runes))
	}
	return s
}

const (
	keyWidth     = 9
	sizeWidth    = 9
	minFlexWidth = 30
)

// columnWidths splits what is left after the key and size columns between
// title, authors and tags.
func columnWidths(total int) (titleW, authorW, tagW int) {
	flex := total - 2 - keyWidth - sizeWidth - 4
	if flex < minFlexWidth {
		flex = minFlexWidth
	}
	titleW = flex * 55 / 100
	authorW = flex * 25 / 100
	tagW = flex - titleW - authorW
	return
}

// itemDelegate renders one ItemRow per line.
type itemDelegate struct{}

func (itemDelegate) Height() int                             { return 1 }
func (itemDelegate) Spacing() int                            { return 0 }
func (itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(ItemRow)
	if !ok {
		return
	}
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	titleW, authorW, tagW := columnWidths(width)

	keyCol := padOrTruncate(row.Item.Key, keyWidth)
	titleCol := padOrTruncate(row.Item.Title, titleW)
	authorCol := padOrTruncate(row.authors(), authorW)
	tagCol := padOrTruncate(strings.Join(row.Item.Tags, " · "), tagW)
	sizeCol := padOrTruncate(row.size(), sizeWidth)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+keyCol+" "+titleCol+" "+authorCol+" "+tagCol+" "+sizeCol))
		return
	}
	_, _ = fmt.Fprint(w, "  "+StyleHelp.Render(keyCol)+" "+StyleNormal.Render(titleCol)+" "+
		StyleHelp.Render(authorCol)+" "+StyleTag.Render(tagCol)+" "+StyleSize.Render(sizeCol))
}
