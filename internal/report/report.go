// Package report renders a translation result as a standalone HTML page.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/hanacaraka/aksara/internal/aksara"
	"github.com/hanacaraka/aksara/internal/render"
)

// Data holds everything the report template needs.
type Data struct {
	Generated  time.Time
	Javanese   string
	Latin      string
	English    string
	Result     *aksara.Result
	Tokens     string
	AST        string
	Bytecode   string
	Morphology string
	Analysis   []render.AnalysisRow

	// Pre-escaped so the console text keeps its exact bytes inside <pre>
	// without the template layer interpreting any of it.
	DebugOutput template.HTML
}

// Generator renders translation reports.
type Generator struct {
	template *template.Template
}

// NewGenerator creates a report generator with the default template.
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("report").Parse(defaultTemplate)),
	}
}

// SetTemplate sets a custom report template.
func (g *Generator) SetTemplate(tmpl string) error {
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}
	g.template = t
	return nil
}

// Generate renders the HTML report for a translation result.
func (g *Generator) Generate(input string, result *aksara.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no result to report")
	}

	data := Data{
		Generated:  time.Now(),
		Javanese:   input,
		Latin:      result.Latin,
		English:    result.English,
		Result:     result,
		Tokens:     render.TokenTable(result.Tokens),
		AST:        render.ASTPane(result.AST),
		Bytecode:   render.BytecodeTable(result.Bytecode),
		Morphology: render.MorphologyBlocks(result.Analysis.Words),
		Analysis:   render.AnalysisRows(result.Analysis.Words),

		DebugOutput: template.HTML(render.Escape(result.DebugOutput)),
	}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	return buf.String(), nil
}

// WriteFile renders the report and writes it to path.
func (g *Generator) WriteFile(path, input string, result *aksara.Result) error {
	html, err := g.Generate(input, result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

const defaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Translation Report</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; border-bottom: 1px solid #ccc; padding-bottom: 0.25rem; }
.javanese { font-size: 2rem; }
pre { background: #f5f5f5; padding: 0.75rem; overflow-x: auto; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.25rem 0.75rem; text-align: left; }
.error { color: #a00; }
footer { margin-top: 2rem; font-size: 0.8rem; color: #888; }
</style>
</head>
<body>
<h1>Translation Report</h1>

<h2>Input</h2>
<p class="javanese">{{.Javanese}}</p>

<h2>Translation</h2>
<table>
<tr><th>Latin</th><td>{{.Latin}}</td></tr>
<tr><th>English</th><td>{{.English}}</td></tr>
</table>
{{if .Result.Errors}}
<h2>Warnings</h2>
<ul>
{{range .Result.Errors}}<li class="error">{{.Message}}</li>
{{end}}</ul>
{{end}}

<h2>Word Analysis</h2>
<table>
<tr><th>Word</th><th>Meaning</th><th>POS</th><th></th></tr>
{{range .Analysis}}<tr><td>{{.Word}}</td><td>{{.Meaning}}</td><td>{{.POS}}</td><td>{{.Mark}}</td></tr>
{{end}}</table>

<h2>Tokens</h2>
<pre>{{.Tokens}}</pre>

<h2>AST</h2>
<pre>{{.AST}}</pre>

<h2>Bytecode</h2>
<pre>{{.Bytecode}}</pre>

<h2>Morphology</h2>
<pre>{{.Morphology}}</pre>

{{if .DebugOutput}}
<h2>Debug Output</h2>
<pre>{{.DebugOutput}}</pre>
{{end}}

<footer>Generated {{.Generated.Format "2006-01-02 15:04:05"}}</footer>
</body>
</html>
`
