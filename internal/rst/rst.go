// Package rst provides reStructuredText helpers for generated documents.
package rst

import "strings"

// escaper neutralizes characters that reST treats as inline markup so that
// arbitrary symbol names are safe in title positions.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	"`", "\\`",
	`_`, `\_`,
	`|`, `\|`,
)

// Escape returns text safe to place in a reST title line.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Underline returns a title underline rule of the given character matching
// the title's display width.
func Underline(title string, char byte) string {
	return strings.Repeat(string(char), len(title))
}
