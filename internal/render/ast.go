package render

import (
	"fmt"
	"strings"

	"github.com/hanacaraka/aksara/internal/aksara"
)

// ASTSentinel is shown when a result carries no parse tree.
const ASTSentinel = "No AST data available"

// FormatAST renders a parse tree as indented text, one node per line, in
// depth-first pre-order. Each level indents by two spaces.
func FormatAST(node *aksara.ASTNode) string {
	var b strings.Builder
	formatASTNode(&b, node, 0)
	return b.String()
}

func formatASTNode(b *strings.Builder, node *aksara.ASTNode, depth int) {
	if node == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s('%s')\n", node.NodeType, node.Value)
	for _, child := range node.Children {
		formatASTNode(b, child, depth+1)
	}
}

// ASTPane renders the AST tab content, substituting the sentinel when the
// result has no tree.
func ASTPane(node *aksara.ASTNode) string {
	if node == nil {
		return ASTSentinel
	}
	return FormatAST(node)
}
