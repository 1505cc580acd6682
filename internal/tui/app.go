package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/hanacaraka/aksara/internal/config"
	"github.com/hanacaraka/aksara/internal/engine"
	"github.com/hanacaraka/aksara/internal/history"
	"github.com/hanacaraka/aksara/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewTranslate ViewType = iota
	ViewHistory
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// AppModel is the main unified TUI model
type AppModel struct {
	// Core dependencies
	config    *config.Config
	configDir string
	client    *engine.Client
	store     *history.Store
	logger    *zap.Logger

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	translateView views.TranslateModel
	historyView   views.HistoryModel
	settingsView  views.SettingsModel

	// Help overlay
	showHelp bool
}

// NewApp creates the unified TUI application.
func NewApp(cfg *config.Config, configDir string, client *engine.Client, store *history.Store, examples []config.Example, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	menuItems := []MenuItem{
		{Label: "Translate", View: ViewTranslate, Shortcut: "1"},
		{Label: "History", View: ViewHistory, Shortcut: "2"},
		{Label: "Settings", View: ViewSettings, Shortcut: "3"},
	}

	debug := false
	if cfg != nil {
		debug = cfg.Debug
	}

	return AppModel{
		config:       cfg,
		configDir:    configDir,
		client:       client,
		store:        store,
		logger:       logger,
		sidebarWidth: 16,
		currentView:  ViewTranslate,
		menuItems:    menuItems,

		translateView: views.NewTranslateModel(client, store, examples, debug, logger),
		historyView:   views.NewHistoryModel(store, logger),
		settingsView:  views.NewSettingsModel(cfg, configDir, logger),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.historyView.Reload())
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys. Plain characters stay with the views so text entry
		// is never shadowed; quitting and view switching go through the
		// sidebar or control chords.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		case "ctrl+h":
			m.showHelp = true
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3":
				idx := int(msg.String()[0] - '1')
				return m.switchView(idx)
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				return m.switchView(m.selectedMenu)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.translateView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case views.HistorySelectedMsg:
		m.currentView = ViewTranslate
		m.selectedMenu = 0
		m.sidebarActive = false
		return m, m.translateView.LoadText(msg.Javanese)

	case views.DebugToggledMsg:
		m.translateView.SetDebug(msg.Enabled)
		return m, nil
	}

	// Key events go to the active view only; everything else (settled
	// requests, ticks, load results) reaches every view, so an in-flight
	// translation still lands if the user switches views meanwhile.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if !m.sidebarActive {
			var cmd tea.Cmd
			switch m.currentView {
			case ViewTranslate:
				m.translateView, cmd = m.translateView.Update(msg)
			case ViewHistory:
				m.historyView, cmd = m.historyView.Update(msg)
			case ViewSettings:
				m.settingsView, cmd = m.settingsView.Update(msg)
			}
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	} else {
		var cmd tea.Cmd
		m.translateView, cmd = m.translateView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.historyView, cmd = m.historyView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.settingsView, cmd = m.settingsView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m AppModel) switchView(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.menuItems) {
		return m, nil
	}
	m.selectedMenu = index
	m.currentView = m.menuItems[index].View
	m.sidebarActive = false

	// History entries may have changed since the view was last shown.
	if m.currentView == ViewHistory {
		return m, m.historyView.Reload()
	}
	return m, nil
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewTranslate:
		content = m.translateView.View()
	case ViewHistory:
		content = m.historyView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	title := SidebarTitleStyle.Render(" ꦲ Aksara ")
	items = append(items, title)
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	help := SidebarHelpStyle.Render("tab Menu\nctrl+h Help")
	items = append(items, help)

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("Aksara - Javanese Translator") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Toggle sidebar focus") + "\n"
	helpText += keyStyle.Render("1-3") + descStyle.Render("Switch views (sidebar)") + "\n"
	helpText += keyStyle.Render("ctrl+h") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("ctrl+c") + descStyle.Render("Quit") + "\n"

	helpText += sectionStyle.Render("Translate View") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Translate") + "\n"
	helpText += keyStyle.Render("ctrl+r") + descStyle.Render("Translate (anywhere)") + "\n"
	helpText += keyStyle.Render("i") + descStyle.Render("Edit text") + "\n"
	helpText += keyStyle.Render("e / c") + descStyle.Render("Examples / custom mode") + "\n"
	helpText += keyStyle.Render("d") + descStyle.Render("Toggle debug panel") + "\n"
	helpText += keyStyle.Render("1-5") + descStyle.Render("Debug tabs") + "\n"
	helpText += keyStyle.Render("y") + descStyle.Render("Copy debug text") + "\n"
	helpText += keyStyle.Render("x") + descStyle.Render("Export HTML report") + "\n"

	helpText += sectionStyle.Render("History View") + "\n"
	helpText += keyStyle.Render("j/k ↑/↓") + descStyle.Render("Navigate entries") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Translate again") + "\n"
	helpText += keyStyle.Render("/") + descStyle.Render("Search") + "\n"
	helpText += keyStyle.Render("x / C") + descStyle.Render("Delete / clear all") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
