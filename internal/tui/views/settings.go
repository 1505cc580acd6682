package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/hanacaraka/aksara/internal/config"
)

// DebugToggledMsg tells the app the debug default changed.
type DebugToggledMsg struct {
	Enabled bool
}

var settingsLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#a8dadc")).
	Bold(true).
	Width(14)

// SettingsModel shows and edits the persisted configuration.
type SettingsModel struct {
	cfg       *config.Config
	configDir string
	logger    *zap.Logger

	cursor   int
	editing  bool
	endpoint textinput.Model

	saved   bool
	saveErr error

	width  int
	height int
}

// NewSettingsModel creates the settings view model.
func NewSettingsModel(cfg *config.Config, configDir string, logger *zap.Logger) SettingsModel {
	ti := textinput.New()
	ti.Width = 50
	if cfg != nil {
		ti.SetValue(cfg.Endpoint)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return SettingsModel{
		cfg:       cfg,
		configDir: configDir,
		logger:    logger,
		endpoint:  ti,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch keyMsg.String() {
		case "enter":
			m.editing = false
			m.endpoint.Blur()
			if m.cfg != nil {
				m.cfg.Endpoint = strings.TrimSpace(m.endpoint.Value())
			}
			m.saved = false
			return m, nil
		case "esc":
			m.editing = false
			m.endpoint.Blur()
			if m.cfg != nil {
				m.endpoint.SetValue(m.cfg.Endpoint)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.endpoint, cmd = m.endpoint.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < 1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "enter", "i":
		if m.cursor == 0 {
			m.editing = true
			m.saved = false
			return m, m.endpoint.Focus()
		}
		if m.cursor == 1 && m.cfg != nil {
			m.cfg.Debug = !m.cfg.Debug
			m.saved = false
			enabled := m.cfg.Debug
			return m, func() tea.Msg {
				return DebugToggledMsg{Enabled: enabled}
			}
		}
		return m, nil
	case "s":
		if m.cfg == nil {
			return m, nil
		}
		m.saveErr = config.SaveConfig(m.configDir, m.cfg)
		m.saved = m.saveErr == nil
		if m.saveErr != nil {
			m.logger.Warn("saving config", zap.Error(m.saveErr))
		}
		return m, nil
	}

	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Settings"))
	b.WriteString("\n\n")

	if m.cfg == nil {
		b.WriteString(helpStyle.Render("No configuration loaded"))
		return b.String()
	}

	endpointValue := m.cfg.Endpoint
	if m.editing {
		endpointValue = m.endpoint.View()
	}
	debugValue := "off"
	if m.cfg.Debug {
		debugValue = "on"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Endpoint", endpointValue},
		{"Debug", debugValue},
	}
	for i, row := range rows {
		marker := "  "
		if i == m.cursor && !m.editing {
			marker = "▶ "
		}
		b.WriteString(marker)
		b.WriteString(settingsLabelStyle.Render(row.label + ":"))
		b.WriteString(" ")
		b.WriteString(row.value)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("History:  " + m.cfg.HistoryPath))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Log file: " + m.cfg.LogPath))
	b.WriteString("\n\n")

	if m.saveErr != nil {
		b.WriteString(errorStyle.Render("Save failed: " + m.saveErr.Error()))
		b.WriteString("\n")
	} else if m.saved {
		b.WriteString(copiedStyle.Render("Saved"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: select • enter: edit/toggle • s: save"))

	return b.String()
}
