// Package views provides the individual views for the translator TUI.
package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/hanacaraka/aksara/internal/aksara"
	"github.com/hanacaraka/aksara/internal/clipboard"
	"github.com/hanacaraka/aksara/internal/config"
	"github.com/hanacaraka/aksara/internal/engine"
	"github.com/hanacaraka/aksara/internal/history"
	"github.com/hanacaraka/aksara/internal/render"
	"github.com/hanacaraka/aksara/internal/report"
	"github.com/hanacaraka/aksara/internal/tui/glyph"
)

// Styles (use from parent package or define locally)
var (
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	modeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 2)

	modeTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	debugTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	debugTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	glyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	latinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	englishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(10)

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2).
			Margin(1, 0)

	debugBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ecdc4")).
			Padding(1, 2).
			Margin(1, 0)

	exampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1)

	exampleSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// InputMode selects between the curated-example picker and free text entry.
// Exactly one mode is active at a time.
type InputMode int

const (
	ModeExamples InputMode = iota
	ModeCustom
)

// DebugTab identifies one of the introspection tabs. Exactly one is
// selected whenever the debug panel is visible.
type DebugTab int

const (
	TabOutput DebugTab = iota
	TabTokens
	TabAST
	TabBytecode
	TabMorphology
)

var debugTabLabels = [...]string{"Output", "Tokens", "AST", "Bytecode", "Morphology"}

// Message types
type translateResultMsg struct {
	result *aksara.Result
	err    error
}

type exampleChosenMsg struct {
	index int
}

type reportWrittenMsg struct {
	path string
	err  error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// TranslateModel is the translation view model. It owns the single-flight
// guard around the engine call and the debug panel's tab selection.
type TranslateModel struct {
	editor textarea.Model
	spin   spinner.Model

	engine   *engine.Client
	store    *history.Store
	reporter *report.Generator
	logger   *zap.Logger

	examples      []config.Example
	exampleCursor int

	mode    InputMode
	editing bool

	debugEnabled bool
	translating  bool

	// Last settled request
	input  string
	result *aksara.Result
	failed bool

	activeTab DebugTab

	status    string
	statusErr bool

	copied     bool
	reportPath string

	width  int
	height int
}

// NewTranslateModel creates a new translation view model.
func NewTranslateModel(client *engine.Client, store *history.Store, examples []config.Example, debug bool, logger *zap.Logger) TranslateModel {
	ta := textarea.New()
	ta.Placeholder = "Enter Javanese text..."
	ta.SetHeight(3)
	ta.SetWidth(60)
	ta.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	if logger == nil {
		logger = zap.NewNop()
	}
	if len(examples) == 0 {
		examples = config.DefaultExamples()
	}

	return TranslateModel{
		editor:       ta,
		spin:         sp,
		engine:       client,
		store:        store,
		reporter:     report.NewGenerator(),
		logger:       logger,
		examples:     examples,
		mode:         ModeExamples,
		debugEnabled: debug,
	}
}

// SetSize updates the view dimensions.
func (m *TranslateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 8
	if w < 30 {
		w = 30
	}
	m.editor.SetWidth(w)
}

// Mode returns the active input mode.
func (m TranslateModel) Mode() InputMode { return m.mode }

// Translating reports whether a request is in flight.
func (m TranslateModel) Translating() bool { return m.translating }

// DebugEnabled reports whether debug introspection is requested.
func (m TranslateModel) DebugEnabled() bool { return m.debugEnabled }

// ActiveTab returns the selected debug tab.
func (m TranslateModel) ActiveTab() DebugTab { return m.activeTab }

// Status returns the current status line and its error flag.
func (m TranslateModel) Status() (string, bool) { return m.status, m.statusErr }

// DebugPanelVisible reports whether the introspection panel is shown:
// only when debug is enabled and a request has settled.
func (m TranslateModel) DebugPanelVisible() bool {
	return m.debugEnabled && (m.result != nil || m.failed)
}

// report replaces the status line. Last write wins.
func (m *TranslateModel) report(message string, isError bool) {
	m.status = message
	m.statusErr = isError
}

// setMode switches the input mode. Switching to Examples clears any custom
// text; switching to Custom keeps the editor content and focuses it.
func (m *TranslateModel) setMode(mode InputMode) tea.Cmd {
	if m.mode == mode {
		return nil
	}
	m.mode = mode
	switch mode {
	case ModeExamples:
		m.editor.Reset()
		m.editor.Blur()
		m.editing = false
	case ModeCustom:
		m.editing = true
		return m.editor.Focus()
	}
	return nil
}

// SetDebug sets the debug introspection flag.
func (m *TranslateModel) SetDebug(enabled bool) {
	m.debugEnabled = enabled
}

// LoadText places text in the editor and submits it, as when reopening a
// history entry.
func (m *TranslateModel) LoadText(text string) tea.Cmd {
	m.mode = ModeCustom
	m.editor.SetValue(text)
	m.editing = false
	m.editor.Blur()
	return m.submit()
}

// submit runs the translation entry point shared by every trigger. A second
// submission while one is in flight is a logged no-op.
func (m *TranslateModel) submit() tea.Cmd {
	if m.translating {
		m.logger.Debug("translation already in flight, ignoring submit")
		return nil
	}

	text := strings.TrimSpace(m.editor.Value())
	if text == "" {
		m.report("Please enter Javanese text to translate", true)
		return nil
	}

	// Make the submitted text visible before the request goes out.
	if m.mode == ModeExamples {
		m.mode = ModeCustom
	}

	m.translating = true
	m.input = text
	m.result = nil
	m.failed = false
	m.copied = false
	m.reportPath = ""
	m.report("Translating...", false)
	m.logger.Debug("submitting translation",
		zap.String("endpoint", m.engine.Endpoint()),
		zap.Bool("debug", m.debugEnabled),
	)

	req := aksara.Request{Text: text, Debug: m.debugEnabled}
	client := m.engine

	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			result, err := client.Translate(req)
			return translateResultMsg{result: result, err: err}
		},
	)
}

// settle applies a finished request to the model. The single-flight guard
// is cleared on every path.
func (m *TranslateModel) settle(msg translateResultMsg) tea.Cmd {
	m.translating = false
	m.activeTab = TabOutput

	if msg.err != nil {
		m.failed = true
		m.result = m.failureResult(msg.err)
		m.report("Error: "+msg.err.Error(), true)
		m.logger.Warn("translation failed", zap.Error(msg.err))
		return nil
	}

	m.result = msg.result
	if m.store != nil {
		if err := m.store.Record(m.input, m.result.Latin, m.result.English); err != nil {
			m.logger.Warn("recording history", zap.Error(err))
		}
	}

	if n := len(m.result.Errors); n > 0 {
		m.report(fmt.Sprintf("Translation complete with %d warning(s)", n), true)
	} else {
		m.report("Translation complete", false)
	}
	return nil
}

// failureResult builds the result shown when the transport or engine fails:
// generic notices in the output panes, error detail in the debug output tab.
func (m *TranslateModel) failureResult(err error) *aksara.Result {
	r := &aksara.Result{
		Latin:   "Translation failed",
		English: "Translation failed",
	}

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())
	var statusErr *engine.StatusError
	if errors.As(err, &statusErr) && statusErr.Traceback != "" {
		b.WriteString("\n\n")
		b.WriteString(statusErr.Traceback)
	}
	r.DebugOutput = b.String()
	r.Normalize()
	return r
}

// loadExample populates the editor with a curated example and schedules a
// submission once the mode switch has taken effect.
func (m *TranslateModel) loadExample(index int) tea.Cmd {
	if index < 0 || index >= len(m.examples) {
		return nil
	}
	return func() tea.Msg {
		return exampleChosenMsg{index: index}
	}
}

// currentDebugText returns the text of the selected debug tab, as copied
// to the clipboard and shown in the panel.
func (m TranslateModel) currentDebugText() string {
	if m.result == nil {
		return ""
	}
	switch m.activeTab {
	case TabTokens:
		return render.TokenTable(m.result.Tokens)
	case TabAST:
		return render.ASTPane(m.result.AST)
	case TabBytecode:
		return render.BytecodeTable(m.result.Bytecode)
	case TabMorphology:
		return render.MorphologyBlocks(m.result.Analysis.Words)
	default:
		if m.result.DebugOutput == "" {
			return "No debug output"
		}
		return render.Sanitize(m.result.DebugOutput)
	}
}

// Update handles messages.
func (m TranslateModel) Update(msg tea.Msg) (TranslateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.editing {
				return m, m.submit()
			}
			if m.mode == ModeExamples {
				return m, m.loadExample(m.exampleCursor)
			}
		case "ctrl+r", "ctrl+s":
			// Converge on the same entry point as enter.
			return m, m.submit()
		case "esc":
			if m.editing {
				m.editing = false
				m.editor.Blur()
				return m, nil
			}
		case "alt+enter", "ctrl+j":
			if m.editing {
				m.editor.InsertString("\n")
				return m, nil
			}
		}

		if m.editing {
			break
		}

		// Result-focus keys; the editor is blurred so plain keys are free.
		switch msg.String() {
		case "i":
			if m.mode == ModeExamples {
				return m, m.setMode(ModeCustom)
			}
			m.editing = true
			return m, m.editor.Focus()
		case "e":
			return m, m.setMode(ModeExamples)
		case "c":
			return m, m.setMode(ModeCustom)
		case "d":
			m.debugEnabled = !m.debugEnabled
			if m.debugEnabled {
				m.report("Debug mode on", false)
			} else {
				m.report("Debug mode off", false)
			}
			return m, nil
		case "j", "down":
			if m.mode == ModeExamples && m.exampleCursor < len(m.examples)-1 {
				m.exampleCursor++
			}
			return m, nil
		case "k", "up":
			if m.mode == ModeExamples && m.exampleCursor > 0 {
				m.exampleCursor--
			}
			return m, nil
		case "1", "o":
			return m.selectTab(TabOutput), nil
		case "2", "t":
			return m.selectTab(TabTokens), nil
		case "3", "a":
			return m.selectTab(TabAST), nil
		case "4", "b":
			return m.selectTab(TabBytecode), nil
		case "5", "m":
			return m.selectTab(TabMorphology), nil
		case "l", "right":
			return m.cycleTab(1), nil
		case "h", "left":
			return m.cycleTab(-1), nil
		case "y":
			if !m.DebugPanelVisible() {
				return m, nil
			}
			if err := clipboard.Write(m.currentDebugText()); err != nil {
				m.report("Could not copy to clipboard", true)
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		case "x":
			if m.result == nil || m.failed {
				return m, nil
			}
			return m, m.exportReport()
		}

	case exampleChosenMsg:
		if msg.index < 0 || msg.index >= len(m.examples) {
			return m, nil
		}
		ex := m.examples[msg.index]
		m.mode = ModeCustom
		m.editor.SetValue(ex.Javanese)
		m.editing = false
		m.editor.Blur()
		return m, m.submit()

	case translateResultMsg:
		return m, m.settle(msg)

	case reportWrittenMsg:
		if msg.err != nil {
			m.report("Could not write report: "+msg.err.Error(), true)
		} else {
			m.reportPath = msg.path
			m.report("Report written to "+msg.path, false)
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case spinner.TickMsg:
		if m.translating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

// cycleTab steps the tab selection forward or backward, wrapping around.
func (m TranslateModel) cycleTab(step int) TranslateModel {
	if !m.DebugPanelVisible() {
		return m
	}
	n := len(debugTabLabels)
	next := (int(m.activeTab) + step + n) % n
	return m.selectTab(DebugTab(next))
}

// selectTab switches the exclusive debug tab selection.
func (m TranslateModel) selectTab(tab DebugTab) TranslateModel {
	if m.DebugPanelVisible() {
		m.activeTab = tab
	}
	return m
}

// exportReport writes the HTML report for the current result.
func (m *TranslateModel) exportReport() tea.Cmd {
	gen := m.reporter
	input := m.input
	result := m.result
	path := fmt.Sprintf("aksara-report-%s.html", time.Now().Format("20060102-150405"))
	return func() tea.Msg {
		err := gen.WriteFile(path, input, result)
		return reportWrittenMsg{path: path, err: err}
	}
}

// View renders the translation view.
func (m TranslateModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderModeBar())
	b.WriteString("\n")

	if m.mode == ModeExamples {
		b.WriteString(m.renderExampleList())
	} else {
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	}

	if m.translating {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(loadingStyle.Render(" Translating..."))
		b.WriteString("\n")
	} else if m.result != nil {
		b.WriteString(m.renderOutput())
		if m.DebugPanelVisible() {
			b.WriteString(m.renderDebugPanel())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return b.String()
}

func (m TranslateModel) renderModeBar() string {
	examplesTab := modeTabStyle.Render("Examples")
	customTab := modeTabStyle.Render("Custom")
	if m.mode == ModeExamples {
		examplesTab = modeTabActiveStyle.Render("Examples")
	} else {
		customTab = modeTabActiveStyle.Render("Custom")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, examplesTab, customTab)
}

func (m TranslateModel) renderExampleList() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Curated examples"))
	b.WriteString("\n\n")
	for i, ex := range m.examples {
		line := fmt.Sprintf("%s  %s — %s", ex.Javanese, ex.Latin, ex.English)
		if i == m.exampleCursor {
			b.WriteString(exampleSelectedStyle.Render("▶ " + line))
		} else {
			b.WriteString(exampleStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m TranslateModel) renderOutput() string {
	var b strings.Builder

	// Large rendering of the submitted script when a capable font exists.
	if glyph.IsAvailable() && m.input != "" && !m.failed {
		cols := m.width - 8
		if cols > 72 {
			cols = 72
		}
		if cols > 10 {
			if art := glyph.GetCached(m.input, cols, 8); art != "" {
				b.WriteString("\n")
				b.WriteString(glyphStyle.Render(art))
				b.WriteString("\n")
			}
		}
	}

	style := latinStyle
	if m.failed {
		style = errorStyle
	}
	textWidth := m.width - 16
	englishLine := englishStyle.Render(wordWrap(m.result.English, textWidth))
	if m.failed {
		englishLine = errorStyle.Render(m.result.English)
	}

	content := labelStyle.Render("Latin:") + " " + style.Render(m.result.Latin) + "\n" +
		labelStyle.Render("English:") + " " + englishLine

	b.WriteString(outputBoxStyle.Render(content))
	b.WriteString("\n")

	if !m.failed {
		b.WriteString(subtitleStyle.Render("Word analysis"))
		b.WriteString("\n")
		b.WriteString(render.AnalysisTable(m.result.Analysis.Words))
		b.WriteString("\n")
	}

	return b.String()
}

func (m TranslateModel) renderDebugPanel() string {
	var tabs []string
	for i, label := range debugTabLabels {
		if DebugTab(i) == m.activeTab {
			tabs = append(tabs, debugTabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, debugTabStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	header := bar
	if m.copied {
		header += "  " + copiedStyle.Render("Copied!")
	}

	width := m.width - 8
	if width < 40 {
		width = 40
	}

	return debugBoxStyle.Width(width).Render(header + "\n\n" + m.currentDebugText())
}

func (m TranslateModel) renderStatusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m TranslateModel) renderHelpLine() string {
	var parts []string
	if m.editing {
		parts = append(parts, "enter: translate", "alt+enter: newline", "esc: done editing")
	} else if m.mode == ModeExamples {
		parts = append(parts, "j/k: select", "enter: translate", "c: custom text", "d: debug")
	} else {
		parts = append(parts, "i: edit", "ctrl+r: translate", "e: examples", "d: debug")
		if m.DebugPanelVisible() {
			parts = append(parts, "1-5: tabs", "y: copy")
		}
		if m.result != nil && !m.failed {
			parts = append(parts, "x: report")
		}
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	words := strings.Fields(s)
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
