package render

import (
	"fmt"
	"strings"

	"github.com/hanacaraka/aksara/internal/aksara"
)

// Sentinel messages for empty data sets. A renderer always emits exactly one
// sentinel line instead of zero rows.
const (
	TokensSentinel   = "No tokens available"
	BytecodeSentinel = "No bytecode generated"
	WordsSentinel    = "No words found"
)

// TokenTable renders the token stream as an aligned table: index, type,
// original value, romanized form and source position.
func TokenTable(tokens []aksara.Token) string {
	if len(tokens) == 0 {
		return TokensSentinel
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%3s  %-20s  %-10s  %-10s  %s\n", "#", "TYPE", "VALUE", "LATIN", "POS")
	for _, t := range tokens {
		fmt.Fprintf(&b, "%3d  %-20s  %-10s  %-10s  L%d:C%d\n",
			t.Num, t.Type, quoted(t.Value), quoted(t.Latin), t.Line, t.Column)
	}
	return b.String()
}

// BytecodeTable renders the instruction listing: zero-padded two-digit index,
// opcode and operand.
func BytecodeTable(instrs []aksara.Instruction) string {
	if len(instrs) == 0 {
		return BytecodeSentinel
	}

	var b strings.Builder
	for i, instr := range instrs {
		if instr.Operand != "" {
			fmt.Fprintf(&b, "%02d: %-6s %s\n", i, instr.Opcode, instr.Operand)
		} else {
			fmt.Fprintf(&b, "%02d: %s\n", i, instr.Opcode)
		}
	}
	return b.String()
}

// AnalysisRow is one line of the word analysis table.
type AnalysisRow struct {
	Word    string
	Meaning string
	POS     string
	Mark    string // "✓" when the word is in the dictionary, "?" otherwise
}

// AnalysisRows maps word analyses to table rows. An empty input yields a
// single sentinel row spanning the word column.
func AnalysisRows(words []aksara.WordAnalysis) []AnalysisRow {
	if len(words) == 0 {
		return []AnalysisRow{{Word: WordsSentinel}}
	}

	rows := make([]AnalysisRow, 0, len(words))
	for _, w := range words {
		mark := "?"
		if w.InDictionary {
			mark = "✓"
		}
		rows = append(rows, AnalysisRow{
			Word:    Sanitize(w.Word),
			Meaning: Sanitize(w.Meaning),
			POS:     Sanitize(w.POS),
			Mark:    mark,
		})
	}
	return rows
}

// AnalysisTable renders the word analysis as plain aligned text (CLI output;
// the TUI styles AnalysisRows itself).
func AnalysisTable(words []aksara.WordAnalysis) string {
	rows := AnalysisRows(words)
	if len(words) == 0 {
		return rows[0].Word
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-2s %-16s %-28s %s\n", "", "WORD", "MEANING", "POS")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-2s %-16s %-28s %s\n", r.Mark, r.Word, r.Meaning, r.POS)
	}
	return b.String()
}

func quoted(s string) string {
	return "'" + Sanitize(s) + "'"
}
