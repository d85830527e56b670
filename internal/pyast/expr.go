package pyast

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// unknownPlaceholder replaces the text of any expression whose rendering
// panicked. Rendering failures never abort an extraction.
const unknownPlaceholder = "<unknown>"

// renderExpr renders an expression node to display text. Unsupported node
// kinds degrade to a "<kind>" placeholder instead of failing.
func renderExpr(node *sitter.Node, source []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = unknownPlaceholder
		}
	}()
	return renderExprValue(node, source)
}

func renderExprValue(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}

	switch node.Kind() {
	case "identifier":
		return nodeText(node, source)
	case "string", "concatenated_string", "integer", "float", "true", "false", "none":
		// Literals keep their source spelling, quotes included.
		return nodeText(node, source)
	case "attribute":
		object := renderExprValue(node.ChildByFieldName("object"), source)
		attr := nodeText(node.ChildByFieldName("attribute"), source)
		return object + "." + attr
	case "list":
		var elems []string
		for i := uint(0); i < node.NamedChildCount(); i++ {
			elems = append(elems, renderExprValue(node.NamedChild(i), source))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case "dictionary":
		var entries []string
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			switch child.Kind() {
			case "pair":
				key := renderExprValue(child.ChildByFieldName("key"), source)
				value := renderExprValue(child.ChildByFieldName("value"), source)
				entries = append(entries, key+": "+value)
			case "dictionary_splat":
				entries = append(entries, "**"+renderExprValue(child.NamedChild(0), source))
			}
		}
		return "{" + strings.Join(entries, ", ") + "}"
	default:
		return fmt.Sprintf("<%s>", node.Kind())
	}
}

// renderDecoratorName renders the expression after an "@". Bare names and
// dotted attribute chains render as written; anything fancier falls through
// to the generic expression renderer.
func renderDecoratorName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "identifier":
		return nodeText(node, source)
	case "attribute":
		object := renderDecoratorName(node.ChildByFieldName("object"), source)
		attr := nodeText(node.ChildByFieldName("attribute"), source)
		return object + "." + attr
	default:
		return renderExpr(node, source)
	}
}

// nodeText extracts the source text covered by a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}
