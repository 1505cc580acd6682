// Package aksara provides core types for the Javanese script translation client.
package aksara

// TokenType classifies a lexical token produced by the engine.
type TokenType string

const (
	TokenConsonant          TokenType = "CONSONANT"           // Base aksara (wyanjana), including rekan forms
	TokenVowel              TokenType = "VOWEL"               // Independent vowel (aksara swara)
	TokenVocalDiacritic     TokenType = "VOCAL_DIACRITIC"     // Sandhangan swara (wulu, suku, taling, ...)
	TokenConsonantDiacritic TokenType = "CONSONANT_DIACRITIC" // Sandhangan panyigeg (cecak, layar, wignyan)
	TokenPangkon            TokenType = "PANGKON"             // Virama, kills the inherent vowel
	TokenPasangan           TokenType = "PASANGAN"            // Conjunct consonant (pangkon + consonant)
	TokenSpace              TokenType = "SPACE"
	TokenPunctuation        TokenType = "PUNCTUATION"
	TokenUnknown            TokenType = "UNKNOWN"
)

// Token is a single lexeme from the engine's tokenizer.
type Token struct {
	Num    int       `json:"num"`    // Position in the token stream
	Type   TokenType `json:"type"`
	Value  string    `json:"value"`  // Original aksara text
	Latin  string    `json:"latin"`  // Romanized form
	Line   int       `json:"line"`
	Column int       `json:"column"`
	Index  int       `json:"index"` // Byte offset in the source
}

// ASTNodeType classifies a parse tree node.
type ASTNodeType string

const (
	NodeProgram     ASTNodeType = "PROGRAM"
	NodeSentence    ASTNodeType = "SENTENCE"
	NodeWord        ASTNodeType = "WORD"
	NodeSyllable    ASTNodeType = "SYLLABLE"
	NodePunctuation ASTNodeType = "PUNCTUATION"
	NodeSpace       ASTNodeType = "SPACE"
)

// ASTNode is a node in the engine's parse tree. The tree is finite and
// acyclic; each node is owned exclusively by the Result that carries it.
type ASTNode struct {
	NodeType ASTNodeType `json:"node_type"`
	Value    string      `json:"value"`
	Children []*ASTNode  `json:"children"`
}

// Count returns the total number of nodes in the subtree rooted here.
func (n *ASTNode) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// MorphemeType classifies a morphological unit.
type MorphemeType string

const (
	MorphemePrefix        MorphemeType = "PREFIX"
	MorphemeRoot          MorphemeType = "ROOT"
	MorphemeSuffix        MorphemeType = "SUFFIX"
	MorphemeReduplication MorphemeType = "REDUPLICATION"
)

// Morpheme is one meaning-bearing unit within a word.
type Morpheme struct {
	Type    MorphemeType `json:"type"`
	Value   string       `json:"value"`
	Meaning string       `json:"meaning,omitempty"`
}

// Morphology is the engine's affix analysis of a word not found directly in
// the dictionary.
type Morphology struct {
	Root      string            `json:"root"`
	Morphemes []Morpheme        `json:"morphemes"`
	Features  map[string]string `json:"features"`
}

// WordAnalysis describes one word of the input.
type WordAnalysis struct {
	Word         string      `json:"word"`
	Meaning      string      `json:"meaning"`
	POS          string      `json:"pos"`
	InDictionary bool        `json:"in_dictionary"`
	Morphology   *Morphology `json:"morphology,omitempty"`
}

// Analysis is the semantic analysis section of a result.
type Analysis struct {
	Words []WordAnalysis `json:"words"`
}

// Instruction is one bytecode instruction emitted by the engine's code
// generator. Its position in the sequence is its index.
type Instruction struct {
	Opcode  string `json:"opcode"`
	Operand string `json:"operand,omitempty"`
}

// Diagnostic is a compile error or warning reported by the engine
// (lexical, syntactic or orthographic).
type Diagnostic struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	TokenValue string `json:"token_value,omitempty"`
	Context    string `json:"context,omitempty"`
}

// Request is the body of a translation call.
type Request struct {
	Text  string `json:"text"`
	Debug bool   `json:"debug"`
}

// Result is the engine's response to a translation call. Every field is
// optional on the wire; Normalize fills absent values so renderers only ever
// see empty-states, never nil surprises.
type Result struct {
	Javanese    string        `json:"javanese"`
	Latin       string        `json:"latin"`
	English     string        `json:"english"`
	Analysis    Analysis      `json:"analysis"`
	Tokens      []Token       `json:"tokens"`
	AST         *ASTNode      `json:"ast,omitempty"`
	Bytecode    []Instruction `json:"bytecode"`
	DebugOutput string        `json:"debug_output"`
	Errors      []Diagnostic  `json:"errors"`

	// Populated only on engine-side failures.
	Error     string `json:"error,omitempty"`
	Traceback string `json:"traceback,omitempty"`
}

// Normalize replaces nil sequences with empty ones so that downstream
// rendering can treat missing data uniformly as an empty-state.
func (r *Result) Normalize() {
	if r.Analysis.Words == nil {
		r.Analysis.Words = []WordAnalysis{}
	}
	if r.Tokens == nil {
		r.Tokens = []Token{}
	}
	if r.Bytecode == nil {
		r.Bytecode = []Instruction{}
	}
	if r.Errors == nil {
		r.Errors = []Diagnostic{}
	}
	for i := range r.Analysis.Words {
		m := r.Analysis.Words[i].Morphology
		if m == nil {
			continue
		}
		if m.Morphemes == nil {
			m.Morphemes = []Morpheme{}
		}
		if m.Features == nil {
			m.Features = map[string]string{}
		}
	}
}
