package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hanacaraka/aksara/internal/aksara"
)

func sampleResult() *aksara.Result {
	r := &aksara.Result{
		Javanese: "ꦲꦏꦸ ꦩꦔꦤ꧀ ꦱꦼꦒ",
		Latin:    "aku mangan sega",
		English:  "I eat rice",
		Analysis: aksara.Analysis{
			Words: []aksara.WordAnalysis{
				{Word: "aku", Meaning: "I", POS: "pronoun", InDictionary: true},
				{Word: "mangan", Meaning: "to eat", POS: "verb", InDictionary: true},
			},
		},
		Tokens: []aksara.Token{
			{Type: aksara.TokenConsonant, Value: "ꦲ", Latin: "ha", Line: 1, Column: 1},
		},
		AST: &aksara.ASTNode{
			NodeType: aksara.NodeProgram,
			Children: []*aksara.ASTNode{
				{NodeType: aksara.NodeWord, Value: "aku"},
			},
		},
		Bytecode: []aksara.Instruction{
			{Opcode: "PUSH", Operand: "aku"},
			{Opcode: "PRINT"},
		},
	}
	r.Normalize()
	return r
}

func TestGenerateContainsSections(t *testing.T) {
	g := NewGenerator()

	html, err := g.Generate("ꦲꦏꦸ ꦩꦔꦤ꧀ ꦱꦼꦒ", sampleResult())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{
		"ꦲꦏꦸ ꦩꦔꦤ꧀ ꦱꦼꦒ",
		"aku mangan sega",
		"I eat rice",
		"PROGRAM('')",
		"PUSH",
		"to eat",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateEscapesInput(t *testing.T) {
	g := NewGenerator()

	r := sampleResult()
	r.English = `<script>alert("x")</script>`

	html, err := g.Generate("<b>input</b>", r)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("report contains unescaped script tag")
	}
	if strings.Contains(html, "<b>input</b>") {
		t.Error("report contains unescaped input markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped script tag not found")
	}
}

func TestGenerateNilResult(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Generate("x", nil); err == nil {
		t.Error("Generate accepted nil result")
	}
}

func TestGenerateWarnings(t *testing.T) {
	g := NewGenerator()

	r := sampleResult()
	r.Errors = []aksara.Diagnostic{
		{Code: "W001", Message: "unknown glyph at column 3"},
	}

	html, err := g.Generate("ꦲꦏꦸ", r)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(html, "unknown glyph at column 3") {
		t.Error("warning message missing from report")
	}
}

func TestWriteFile(t *testing.T) {
	g := NewGenerator()
	path := filepath.Join(t.TempDir(), "report.html")

	if err := g.WriteFile(path, "ꦲꦏꦸ", sampleResult()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("written report is not an HTML document")
	}
}

func TestSetTemplate(t *testing.T) {
	g := NewGenerator()

	if err := g.SetTemplate(`{{.Latin}} / {{.English}}`); err != nil {
		t.Fatalf("SetTemplate: %v", err)
	}
	html, err := g.Generate("x", sampleResult())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if html != "aku mangan sega / I eat rice" {
		t.Errorf("custom template output = %q", html)
	}

	if err := g.SetTemplate(`{{.Broken`); err == nil {
		t.Error("SetTemplate accepted malformed template")
	}
}
