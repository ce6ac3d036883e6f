package tui

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/zoteroxy/internal/zotero"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned when the user quits without choosing an item.
var ErrCanceled = errors.New("canceled by user")

type itemPickerModel struct {
	list     list.Model
	keys     PickerKeys
	selected *ItemRow
	err      error
	quitting bool
}

func newItemPickerModel(items []zotero.LibraryItem, title string) itemPickerModel {
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = ItemRow{Item: it}
	}

	l := list.New(rows, itemDelegate{}, 0, 0)
	l.Title = title
	if l.Title == "" {
		l.Title = "Select an item"
	}
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}
	return itemPickerModel{list: l, keys: keys}
}

func (m itemPickerModel) Init() tea.Cmd {
	return nil
}

func (m itemPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys belong to the filter input while it is open.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.err = ErrCanceled
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if row, ok := m.list.SelectedItem().(ItemRow); ok {
				m.selected = &row
				m.quitting = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m itemPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.list.View())
}

// RunItemPicker lets the user pick one of items interactively.
func RunItemPicker(items []zotero.LibraryItem, title string) (zotero.LibraryItem, error) {
	if len(items) == 0 {
		return zotero.LibraryItem{}, fmt.Errorf("no items to display")
	}

	p := tea.NewProgram(newItemPickerModel(items, title), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return zotero.LibraryItem{}, fmt.Errorf("running TUI: %w", err)
	}

	fm, ok := final.(itemPickerModel)
	if !ok {
		return zotero.LibraryItem{}, fmt.Errorf("unexpected model type %T", final)
	}
	if fm.selected != nil {
		return fm.selected.Item, nil
	}
	if fm.err != nil {
		return zotero.LibraryItem{}, fm.err
	}
	return zotero.LibraryItem{}, ErrCanceled
}
