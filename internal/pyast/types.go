package pyast

import "fmt"

// Class describes a top-level class definition.
type Class struct {
	Name       string
	Bases      []string
	Decorators []string
	Docstring  string
	Line       int
	Methods    []Function
	Attributes []Variable
}

// Function describes a function or method definition.
type Function struct {
	Name       string
	Params     []string
	Decorators []string
	Docstring  string
	Line       int
	Returns    string
	Special    bool
}

// Variable describes a module-level or class-level assignment.
type Variable struct {
	Name  string
	Line  int
	Type  string
	Value string
}

// Module is the inventory of a single source file's public surface.
// It holds no references back to the parse tree and stays valid after
// the source text is discarded.
type Module struct {
	Classes   []Class
	Functions []Function
	Variables []Variable
}

// ParseError reports syntactically invalid Python source. No partial
// inventory is returned alongside it.
type ParseError struct {
	Line int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid python source near line %d", e.Line)
	}
	return "invalid python source"
}
