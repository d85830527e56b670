// Package pyast extracts the public member surface of a Python module from
// its tree-sitter syntax tree.
package pyast

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Extract parses source and returns the module inventory: top-level classes,
// functions, and variables whose names pass the visibility rules, in source
// order. Syntactically invalid source yields a *ParseError and no inventory.
//
// Each call builds a fresh inventory; nothing is cached between calls, so
// Extract is safe to use from multiple goroutines.
func Extract(source []byte) (*Module, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	lang := sitter.NewLanguage(python.Language())
	parser.SetLanguage(lang)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, &ParseError{Line: firstErrorLine(root)}
	}

	mod := &Module{
		Classes:   []Class{},
		Functions: []Function{},
		Variables: []Variable{},
	}

	// Only the module's direct statement sequence is walked. Nested scopes
	// never contribute module-level declarations.
	for i := uint(0); i < root.ChildCount(); i++ {
		extractStatement(root.Child(i), source, nil, mod)
	}

	return mod, nil
}

// extractStatement dispatches one top-level statement, carrying any
// decorators collected from an enclosing decorated_definition.
func extractStatement(node *sitter.Node, source []byte, decorators []string, mod *Module) {
	switch node.Kind() {
	case "class_definition":
		if cls, ok := extractClass(node, source, decorators); ok {
			mod.Classes = append(mod.Classes, cls)
		}
	case "function_definition":
		if fn, ok := extractFunction(node, source, decorators); ok {
			mod.Functions = append(mod.Functions, fn)
		}
	case "decorated_definition":
		def := node.ChildByFieldName("definition")
		if def != nil {
			extractStatement(def, source, extractDecorators(node, source), mod)
		}
	case "expression_statement":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child.Kind() == "assignment" {
				mod.Variables = append(mod.Variables, extractAssignment(child, source)...)
			}
		}
	}
}

// extractClass builds a ClassDeclaration from a class_definition node. The
// class body is scanned one level deep for methods and attributes; nested
// classes are not descended into.
func extractClass(node *sitter.Node, source []byte, decorators []string) (Class, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return Class{}, false
	}
	name := nodeText(nameNode, source)
	if !includable(name) {
		return Class{}, false
	}

	cls := Class{
		Name:       name,
		Decorators: decorators,
		Line:       int(node.StartPosition().Row) + 1,
	}

	if args := node.ChildByFieldName("superclasses"); args != nil {
		for i := uint(0); i < args.NamedChildCount(); i++ {
			base := args.NamedChild(i)
			if base.Kind() == "keyword_argument" || base.Kind() == "comment" {
				continue
			}
			cls.Bases = append(cls.Bases, renderExpr(base, source))
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return cls, true
	}
	cls.Docstring = extractDocstring(body, source)

	for i := uint(0); i < body.ChildCount(); i++ {
		child := body.Child(i)
		switch child.Kind() {
		case "function_definition":
			if m, ok := extractFunction(child, source, nil); ok {
				m.Special = isSpecial(m.Name)
				cls.Methods = append(cls.Methods, m)
			}
		case "decorated_definition":
			def := child.ChildByFieldName("definition")
			if def != nil && def.Kind() == "function_definition" {
				if m, ok := extractFunction(def, source, extractDecorators(child, source)); ok {
					m.Special = isSpecial(m.Name)
					cls.Methods = append(cls.Methods, m)
				}
			}
		case "expression_statement":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				stmt := child.NamedChild(j)
				if stmt.Kind() == "assignment" {
					cls.Attributes = append(cls.Attributes, extractAssignment(stmt, source)...)
				}
			}
		}
	}

	return cls, true
}

// extractFunction builds a FunctionDeclaration from a function_definition
// node. Parameters keep declaration order: positional names, then the *args
// marker, then the **kwargs marker. Defaults and keyword-only parameters are
// not reproduced.
func extractFunction(node *sitter.Node, source []byte, decorators []string) (Function, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return Function{}, false
	}
	name := nodeText(nameNode, source)
	if !includable(name) {
		return Function{}, false
	}

	fn := Function{
		Name:       name,
		Decorators: decorators,
		Line:       int(node.StartPosition().Row) + 1,
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		fn.Params = extractParams(params, source)
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		fn.Returns = renderExpr(ret, source)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		fn.Docstring = extractDocstring(body, source)
	}

	return fn, true
}

func extractParams(params *sitter.Node, source []byte) []string {
	var out []string
	seenStar := false

	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "identifier":
			if !seenStar {
				out = append(out, nodeText(child, source))
			}
		case "typed_parameter", "default_parameter", "typed_default_parameter":
			if seenStar {
				continue // keyword-only
			}
			if name := paramName(child, source); name != "" {
				out = append(out, name)
			}
		case "list_splat_pattern":
			seenStar = true
			out = append(out, "*"+nodeText(child.NamedChild(0), source))
		case "keyword_separator":
			seenStar = true
		case "dictionary_splat_pattern":
			out = append(out, "**"+nodeText(child.NamedChild(0), source))
		}
	}

	return out
}

func paramName(node *sitter.Node, source []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return nodeText(name, source)
	}
	// typed_parameter has no name field; its pattern is the first child.
	if first := node.NamedChild(0); first != nil && first.Kind() == "identifier" {
		return nodeText(first, source)
	}
	return ""
}

// extractAssignment turns an assignment statement into variable entries.
// A chained assignment (a = b = 1) fans out into one entry per simple-name
// target, all sharing the final value's text. Targets that are not simple
// names (tuples, subscripts, attributes) are skipped.
func extractAssignment(node *sitter.Node, source []byte) []Variable {
	line := int(node.StartPosition().Row) + 1

	typeText := ""
	if t := node.ChildByFieldName("type"); t != nil {
		typeText = renderExpr(t, source)
	}

	var targets []*sitter.Node
	cur := node
	for {
		if left := cur.ChildByFieldName("left"); left != nil {
			targets = append(targets, left)
		}
		right := cur.ChildByFieldName("right")
		if right != nil && right.Kind() == "assignment" {
			cur = right
			continue
		}
		break
	}

	value := ""
	if right := cur.ChildByFieldName("right"); right != nil {
		value = renderExpr(right, source)
	}

	var out []Variable
	for _, target := range targets {
		if target.Kind() != "identifier" {
			continue
		}
		name := nodeText(target, source)
		if !includable(name) {
			continue
		}
		out = append(out, Variable{
			Name:  name,
			Line:  line,
			Type:  typeText,
			Value: value,
		})
	}
	return out
}

// extractDecorators collects rendered decorator names from a
// decorated_definition node.
func extractDecorators(node *sitter.Node, source []byte) []string {
	var out []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() != "decorator" {
			continue
		}
		if expr := child.NamedChild(0); expr != nil {
			out = append(out, renderDecoratorName(expr, source))
		}
	}
	return out
}

// extractDocstring returns the docstring when the first statement of a block
// is a string expression, with quotes stripped.
func extractDocstring(block *sitter.Node, source []byte) string {
	first := block.NamedChild(0)
	if first == nil || first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Kind() != "string" {
		return ""
	}
	return strings.Trim(nodeText(str, source), `"'`)
}

// firstErrorLine locates the first syntax error in the tree for diagnostics.
func firstErrorLine(root *sitter.Node) int {
	line := 0
	walkTree(root, func(n *sitter.Node) bool {
		if line > 0 {
			return false
		}
		if n.IsError() || n.IsMissing() {
			line = int(n.StartPosition().Row) + 1
			return false
		}
		return true
	})
	return line
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false stops descent into that node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visitor(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}
