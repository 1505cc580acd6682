package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hanacaraka/aksara/internal/history"
)

const historyPageSize = 50

// HistorySelectedMsg asks the app to re-open a past translation in the
// translate view.
type HistorySelectedMsg struct {
	Javanese string
}

type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

// HistoryModel lists past translations from the local store.
type HistoryModel struct {
	store  *history.Store
	logger *zap.Logger

	search    textinput.Model
	searching bool

	entries []history.Entry
	cursor  int
	loadErr error

	width  int
	height int
}

// NewHistoryModel creates the history view model.
func NewHistoryModel(store *history.Store, logger *zap.Logger) HistoryModel {
	ti := textinput.New()
	ti.Placeholder = "Search history..."
	ti.Width = 40
	if logger == nil {
		logger = zap.NewNop()
	}
	return HistoryModel{
		store:  store,
		logger: logger,
		search: ti,
	}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload fetches the current entries from the store.
func (m HistoryModel) Reload() tea.Cmd {
	store := m.store
	query := strings.TrimSpace(m.search.Value())
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}
		var entries []history.Entry
		var err error
		if query != "" {
			entries, err = store.Search(query, historyPageSize)
		} else {
			entries, err = store.Recent(historyPageSize)
		}
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.search.Blur()
				m.cursor = 0
				return m, m.Reload()
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.Reset()
				return m, m.Reload()
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.entries) {
				javanese := m.entries[m.cursor].Javanese
				return m, func() tea.Msg {
					return HistorySelectedMsg{Javanese: javanese}
				}
			}
			return m, nil
		case "x":
			if m.store != nil && m.cursor < len(m.entries) {
				if err := m.store.Delete(m.entries[m.cursor].ID); err != nil {
					m.logger.Warn("deleting history entry", zap.Error(err))
				}
				if m.cursor > 0 {
					m.cursor--
				}
				return m, m.Reload()
			}
			return m, nil
		case "C":
			if m.store != nil {
				if err := m.store.Clear(); err != nil {
					m.logger.Warn("clearing history", zap.Error(err))
				}
				m.cursor = 0
				return m, m.Reload()
			}
			return m, nil
		}

	case historyLoadedMsg:
		m.entries = msg.entries
		m.loadErr = msg.err
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
		return m, nil
	}

	return m, nil
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Translation history"))
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.store == nil:
		b.WriteString(helpStyle.Render("History is disabled"))
		b.WriteString("\n")
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("Could not load history: " + m.loadErr.Error()))
		b.WriteString("\n")
	case len(m.entries) == 0:
		b.WriteString(helpStyle.Render("No translations yet"))
		b.WriteString("\n")
	default:
		for i, e := range m.entries {
			line := fmt.Sprintf("%-24s %s — %s", e.Javanese, e.Latin, e.English)
			when := e.CreatedAt.Format("2006-01-02 15:04")
			if i == m.cursor {
				b.WriteString(exampleSelectedStyle.Render("▶ " + line))
			} else {
				b.WriteString(exampleStyle.Render("  " + line))
			}
			b.WriteString("  ")
			b.WriteString(helpStyle.Render(when))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: select • enter: translate again • /: search • x: delete • C: clear all"))

	return b.String()
}
