package render

import (
	"strings"
	"testing"

	"github.com/hanacaraka/aksara/internal/aksara"
)

func sampleTree() *aksara.ASTNode {
	return &aksara.ASTNode{
		NodeType: aksara.NodeProgram,
		Children: []*aksara.ASTNode{
			{
				NodeType: aksara.NodeSentence,
				Value:    "aku mangan sega",
				Children: []*aksara.ASTNode{
					{
						NodeType: aksara.NodeWord,
						Value:    "aku",
						Children: []*aksara.ASTNode{
							{NodeType: aksara.NodeSyllable, Value: "a"},
							{NodeType: aksara.NodeSyllable, Value: "ku"},
						},
					},
					{NodeType: aksara.NodeSpace, Value: " "},
					{
						NodeType: aksara.NodeWord,
						Value:    "mangan",
						Children: []*aksara.ASTNode{
							{NodeType: aksara.NodeSyllable, Value: "ma"},
							{NodeType: aksara.NodeSyllable, Value: "ngan"},
						},
					},
				},
			},
		},
	}
}

func TestFormatASTLineCountEqualsNodeCount(t *testing.T) {
	tree := sampleTree()
	out := FormatAST(tree)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if got, want := len(lines), tree.Count(); got != want {
		t.Errorf("expected %d lines for %d nodes, got %d:\n%s", want, want, got, out)
	}
}

func TestFormatASTIndentation(t *testing.T) {
	out := FormatAST(sampleTree())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// depth of each line in pre-order for sampleTree
	wantDepths := []int{0, 1, 2, 3, 3, 2, 2, 3, 3}
	if len(lines) != len(wantDepths) {
		t.Fatalf("expected %d lines, got %d", len(wantDepths), len(lines))
	}
	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent != 2*wantDepths[i] {
			t.Errorf("line %d: expected indent %d, got %d: %q", i, 2*wantDepths[i], indent, line)
		}
	}
}

func TestFormatASTNodeShape(t *testing.T) {
	out := FormatAST(&aksara.ASTNode{NodeType: aksara.NodeSyllable, Value: "ku"})
	if out != "SYLLABLE('ku')\n" {
		t.Errorf("unexpected node rendering: %q", out)
	}
}

func TestASTPaneSentinel(t *testing.T) {
	if got := ASTPane(nil); got != ASTSentinel {
		t.Errorf("expected sentinel for nil tree, got %q", got)
	}
	if got := ASTPane(sampleTree()); got == ASTSentinel {
		t.Error("sentinel returned for non-empty tree")
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"aku <b>mangan</b>":  "aku &lt;b&gt;mangan&lt;/b&gt;",
		"a & b":              "a &amp; b",
		"&lt;":               "&amp;lt;",
		"plain":              "plain",
		"<script>&</script>": "&lt;script&gt;&amp;&lt;/script&gt;",
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Errorf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeLeavesNoBareMarkup(t *testing.T) {
	out := Escape(`<img src="x" onerror="alert(1)"> & <b>`)
	for _, c := range []string{"<", ">"} {
		if strings.Contains(out, c) {
			t.Errorf("escaped output still contains %q: %q", c, out)
		}
	}
	// every remaining & must begin an entity we emitted
	for i := 0; i < len(out); i++ {
		if out[i] != '&' {
			continue
		}
		rest := out[i:]
		if !strings.HasPrefix(rest, "&amp;") && !strings.HasPrefix(rest, "&lt;") && !strings.HasPrefix(rest, "&gt;") {
			t.Errorf("unescaped ampersand at %d in %q", i, out)
		}
	}
}

func TestSanitizeStripsEscapes(t *testing.T) {
	in := "plain \x1b[31mred\x1b[0m text\x07 and \x1b]0;title\x07done"
	out := Sanitize(in)
	if strings.ContainsRune(out, 0x1b) {
		t.Errorf("escape byte survived: %q", out)
	}
	if !strings.Contains(out, "red") || !strings.Contains(out, "done") {
		t.Errorf("visible text lost: %q", out)
	}
}

func TestSanitizeKeepsWhitespace(t *testing.T) {
	in := "line1\n\tline2"
	if got := Sanitize(in); got != in {
		t.Errorf("Sanitize mangled plain text: %q", got)
	}
}

func TestTokenTableEmpty(t *testing.T) {
	out := TokenTable(nil)
	if out != TokensSentinel {
		t.Errorf("expected sentinel, got %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("sentinel must be a single line: %q", out)
	}
}

func TestTokenTableRows(t *testing.T) {
	tokens := []aksara.Token{
		{Num: 0, Type: aksara.TokenConsonant, Value: "ꦲ", Latin: "h", Line: 1, Column: 1},
		{Num: 1, Type: aksara.TokenVocalDiacritic, Value: "ꦸ", Latin: "u", Line: 1, Column: 2},
	}
	out := TokenTable(tokens)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 { // header + one line per token
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "L1:C1") {
		t.Errorf("position column missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "VOCAL_DIACRITIC") {
		t.Errorf("type column missing: %q", lines[2])
	}
}

func TestBytecodeTable(t *testing.T) {
	instrs := []aksara.Instruction{
		{Opcode: "PUSH", Operand: "aku"},
		{Opcode: "PRINT"},
		{Opcode: "HALT"},
	}
	out := BytecodeTable(instrs)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "00: PUSH") || !strings.Contains(lines[0], "aku") {
		t.Errorf("bad first instruction line: %q", lines[0])
	}
	if lines[1] != "01: PRINT" {
		t.Errorf("operand-free instruction rendered wrong: %q", lines[1])
	}
	if lines[2] != "02: HALT" {
		t.Errorf("bad halt line: %q", lines[2])
	}
}

func TestBytecodeTableEmpty(t *testing.T) {
	if got := BytecodeTable(nil); got != BytecodeSentinel {
		t.Errorf("expected sentinel, got %q", got)
	}
}

func TestAnalysisRowsEmpty(t *testing.T) {
	rows := AnalysisRows(nil)
	if len(rows) != 1 {
		t.Fatalf("expected exactly one sentinel row, got %d", len(rows))
	}
	if rows[0].Word != WordsSentinel {
		t.Errorf("expected sentinel text, got %q", rows[0].Word)
	}
}

func TestAnalysisRowsMarks(t *testing.T) {
	rows := AnalysisRows([]aksara.WordAnalysis{
		{Word: "aku", Meaning: "I", POS: "PRON", InDictionary: true},
		{Word: "blorok", Meaning: "[blorok]", POS: "NOUN", InDictionary: false},
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Mark != "✓" {
		t.Errorf("dictionary word should be checked, got %q", rows[0].Mark)
	}
	if rows[1].Mark != "?" {
		t.Errorf("unknown word should be questioned, got %q", rows[1].Mark)
	}
}

func TestMorphologyBlocksEmpty(t *testing.T) {
	if got := MorphologyBlocks(nil); got != MorphologySentinel {
		t.Errorf("expected sentinel, got %q", got)
	}
}

func TestMorphologyBlocksFull(t *testing.T) {
	words := []aksara.WordAnalysis{
		{
			Word: "ngombe", Meaning: "active verb marker + drink", POS: "VERB",
			Morphology: &aksara.Morphology{
				Root: "ombe",
				Morphemes: []aksara.Morpheme{
					{Type: aksara.MorphemePrefix, Value: "ng", Meaning: "active verb marker"},
					{Type: aksara.MorphemeRoot, Value: "ombe"},
				},
				Features: map[string]string{"voice": "active"},
			},
		},
		{Word: "aku", Meaning: "I", POS: "PRON", InDictionary: true},
	}
	out := MorphologyBlocks(words)

	for _, want := range []string{
		"Word 1: ngombe",
		"Root:    ombe",
		"1. PREFIX 'ng' (active verb marker)",
		"2. ROOT 'ombe'",
		"1. voice = active",
		"Word 2: aku",
		"in dictionary",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("morphology output missing %q:\n%s", want, out)
		}
	}

	// the dictionary word has no morphology section
	if strings.Count(out, "Root:") != 1 {
		t.Errorf("expected a single root line:\n%s", out)
	}
}

func TestMorphologyFeaturesSorted(t *testing.T) {
	words := []aksara.WordAnalysis{{
		Word: "kesasar", POS: "VERB",
		Morphology: &aksara.Morphology{
			Root:     "sasar",
			Features: map[string]string{"voice": "passive", "circumfix": "ke-...-an", "aspect": "perfective"},
		},
	}}

	out := MorphologyBlocks(words)
	ia := strings.Index(out, "aspect")
	ic := strings.Index(out, "circumfix")
	iv := strings.Index(out, "voice")
	if ia == -1 || ic == -1 || iv == -1 || !(ia < ic && ic < iv) {
		t.Errorf("features not sorted by key:\n%s", out)
	}
}
