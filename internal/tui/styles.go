// Package tui provides the interactive terminal UI for the translator.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, latin text
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - Javanese glyphs, active tabs
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - success, dictionary hits
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Sidebar styles
var (
	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(ColorBorder).
			Padding(1, 1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Background(ColorBg).
				Padding(0, 1).
				MarginBottom(1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SidebarItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	SidebarHelpStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				MarginTop(1).
				Padding(0, 1)
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Output pane styles
var (
	JavaneseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBg).
			Padding(1, 4).
			Align(lipgloss.Center)

	LatinStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	EnglishStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	OutputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			Margin(1, 0)
)

// Debug tab styles
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(0, 2)

	DebugPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2).
			Margin(1, 0)
)

// Label/value styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// History view styles
var (
	HistoryEntryStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	HistorySelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt)

	HistoryTimeStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Settings view styles
var (
	SettingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorLabel)

	SettingsRowStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
