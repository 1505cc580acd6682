package views

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hanacaraka/aksara/internal/aksara"
	"github.com/hanacaraka/aksara/internal/config"
	"github.com/hanacaraka/aksara/internal/engine"
)

func newTestModel(t *testing.T, handler http.HandlerFunc) (TranslateModel, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := NewTranslateModel(engine.NewClient(srv.URL), nil, config.DefaultExamples(), false, zap.NewNop())
	m.SetSize(100, 40)
	return m, srv
}

func okHandler(result aksara.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(result)
	}
}

// runCmd executes a command tree synchronously, feeding every produced
// message back into the model. Spinner ticks are dropped so the loop
// terminates.
func runCmd(m TranslateModel, cmd tea.Cmd) TranslateModel {
	if cmd == nil {
		return m
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			m = runCmd(m, sub)
		}
		return m
	case spinner.TickMsg:
		return m
	case nil:
		return m
	default:
		var next tea.Cmd
		m, next = m.Update(msg)
		return runCmd(m, next)
	}
}

func submitText(m TranslateModel, text string) TranslateModel {
	m.mode = ModeCustom
	m.editor.SetValue(text)
	return runCmd(m, m.submit())
}

func TestSubmitSuccessWithoutDebug(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{
		Latin:   "tes",
		English: "test",
	}))

	m = submitText(m, "tes")

	if m.translating {
		t.Error("still translating after settled result")
	}
	if m.result == nil {
		t.Fatal("no result stored")
	}
	if m.result.Latin != "tes" || m.result.English != "test" {
		t.Errorf("result = %q / %q", m.result.Latin, m.result.English)
	}
	if m.DebugPanelVisible() {
		t.Error("debug panel visible with debug disabled")
	}
	status, isErr := m.Status()
	if status != "Translation complete" || isErr {
		t.Errorf("status = %q (err=%v)", status, isErr)
	}
}

func TestSubmitEmptyInput(t *testing.T) {
	var calls int32
	m, _ := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	m = submitText(m, "   ")

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("network calls = %d, want 0", n)
	}
	if m.translating {
		t.Error("session left Requesting on empty input")
	}
	status, isErr := m.Status()
	if !strings.Contains(status, "enter Javanese text") || !isErr {
		t.Errorf("status = %q (err=%v)", status, isErr)
	}
}

func TestSubmitServerError(t *testing.T) {
	m, _ := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"engine down"}`, http.StatusInternalServerError)
	})

	m = submitText(m, "ꦲꦏꦸ")

	if m.translating {
		t.Error("submit not re-enabled after failure")
	}
	status, isErr := m.Status()
	if !strings.HasPrefix(status, "Error:") || !isErr {
		t.Errorf("status = %q (err=%v)", status, isErr)
	}
	if m.result == nil {
		t.Fatal("no fallback result")
	}
	if m.result.Latin != "Translation failed" || m.result.English != "Translation failed" {
		t.Errorf("fallback panes = %q / %q", m.result.Latin, m.result.English)
	}
}

func TestSubmitErrorSurfacesDebugDetail(t *testing.T) {
	m, _ := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":     "lexer exploded",
			"traceback": "Traceback (most recent call last):\n  boom",
		})
	})
	m.SetDebug(true)

	m = submitText(m, "ꦲꦏꦸ")

	if !m.DebugPanelVisible() {
		t.Fatal("debug panel hidden after failure in debug mode")
	}
	text := m.currentDebugText()
	if !strings.Contains(text, "lexer exploded") {
		t.Errorf("debug text missing error message: %q", text)
	}
	if !strings.Contains(text, "Traceback") {
		t.Errorf("debug text missing traceback: %q", text)
	}
}

func TestWarningCountStatus(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{
		Latin:   "aku mangan sega",
		English: "I eat rice",
		Errors: []aksara.Diagnostic{
			{Code: "W001", Message: "warn1"},
			{Code: "W002", Message: "warn2"},
		},
	}))

	m = submitText(m, "ꦲꦏꦸ ꦩꦔꦤ꧀ ꦱꦼꦒ")

	status, isErr := m.Status()
	if status != "Translation complete with 2 warning(s)" {
		t.Errorf("status = %q", status)
	}
	if !isErr {
		t.Error("warning status not marked as error style")
	}
}

func TestSingleFlight(t *testing.T) {
	var calls int32
	m, _ := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(aksara.Result{Latin: "x"})
	})

	m.mode = ModeCustom
	m.editor.SetValue("ꦲꦏꦸ")

	first := m.submit()
	if !m.translating {
		t.Fatal("not in Requesting state after submit")
	}

	// Second submission while in flight is a no-op.
	second := m.submit()
	if second != nil {
		t.Error("second submit returned a command")
	}

	m = runCmd(m, first)

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
	if m.translating {
		t.Error("guard not cleared after settle")
	}
}

func TestDebugPanelAndExclusiveTabs(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{
		Latin:       "aku",
		English:     "I",
		DebugOutput: "engine trace",
		Tokens: []aksara.Token{
			{Type: aksara.TokenConsonant, Value: "ꦲ", Latin: "ha", Line: 1, Column: 1},
		},
		Bytecode: []aksara.Instruction{{Opcode: "PUSH", Operand: "aku"}},
	}))
	m.SetDebug(true)

	m = submitText(m, "ꦲꦏꦸ")

	if !m.DebugPanelVisible() {
		t.Fatal("debug panel not visible")
	}
	if m.ActiveTab() != TabOutput {
		t.Errorf("default tab = %v, want Output", m.ActiveTab())
	}

	for _, tab := range []DebugTab{TabTokens, TabAST, TabBytecode, TabMorphology, TabOutput} {
		m = m.selectTab(tab)
		if m.ActiveTab() != tab {
			t.Errorf("ActiveTab = %v, want %v", m.ActiveTab(), tab)
		}
		if m.currentDebugText() == "" {
			t.Errorf("tab %v rendered empty text", tab)
		}
	}
}

func TestDebugTabsShowSentinelsOnEmptyResult(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{Latin: "aku"}))
	m.SetDebug(true)

	m = submitText(m, "ꦲꦏꦸ")

	cases := map[DebugTab]string{
		TabTokens:     "No tokens available",
		TabAST:        "No AST data available",
		TabBytecode:   "No bytecode generated",
		TabMorphology: "No morphology data available",
	}
	for tab, want := range cases {
		m = m.selectTab(tab)
		if got := m.currentDebugText(); got != want {
			t.Errorf("tab %v = %q, want %q", tab, got, want)
		}
	}
}

func TestNewResultResetsTabToOutput(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{Latin: "aku", DebugOutput: "trace"}))
	m.SetDebug(true)

	m = submitText(m, "ꦲꦏꦸ")
	m = m.selectTab(TabBytecode)

	m = submitText(m, "ꦲꦏꦸ")
	if m.ActiveTab() != TabOutput {
		t.Errorf("tab after new result = %v, want Output", m.ActiveTab())
	}
}

func TestExampleLoadSwitchesToCustomAndSubmits(t *testing.T) {
	var calls int32
	m, _ := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(aksara.Result{Latin: "aku mangan sega"})
	})

	if m.Mode() != ModeExamples {
		t.Fatal("initial mode is not Examples")
	}

	m = runCmd(m, m.loadExample(0))

	if m.Mode() != ModeCustom {
		t.Error("mode not switched to Custom")
	}
	if got := strings.TrimSpace(m.editor.Value()); got != m.examples[0].Javanese {
		t.Errorf("editor = %q, want example text", got)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
}

func TestSetModeExamplesClearsCustomText(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{}))

	m.mode = ModeCustom
	m.editor.SetValue("ꦲꦏꦸ")

	runCmd(m, m.setMode(ModeExamples))
	if m.mode != ModeExamples {
		t.Error("mode not switched")
	}
	if m.editor.Value() != "" {
		t.Errorf("editor not cleared: %q", m.editor.Value())
	}
}

func TestClearCopiedMessage(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{}))

	m.copied = true
	m, _ = m.Update(clearCopiedMsg{})
	if m.copied {
		t.Error("copied flag not cleared")
	}
}

func TestStatusLastWriteWins(t *testing.T) {
	m, _ := newTestModel(t, okHandler(aksara.Result{}))

	m.report("first", true)
	m.report("second", false)

	status, isErr := m.Status()
	if status != "second" || isErr {
		t.Errorf("status = %q (err=%v)", status, isErr)
	}
}
