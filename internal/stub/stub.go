// Package stub renders module inventories as reStructuredText documentation
// stubs with sphinx autodoc directives.
package stub

import (
	"fmt"
	"io"
	"strings"

	"github.com/facette/natsort"

	"github.com/example/pydocstub/internal/docpath"
	"github.com/example/pydocstub/internal/pyast"
	"github.com/example/pydocstub/internal/rst"
)

// WriteMemberListing writes the stub for an ordinary module: the module
// heading followed by one titled directive block per declaration. Groups are
// emitted variables first, then classes, then functions; within each group
// declarations keep source order.
func WriteMemberListing(w io.Writer, modulePath string, mod *pyast.Module) error {
	var sb strings.Builder
	writeModuleHeading(&sb, modulePath)

	for _, v := range mod.Variables {
		writeBlock(&sb, v.Name, fmt.Sprintf(".. autodata:: %s.%s\n", modulePath, v.Name))
	}
	for _, c := range mod.Classes {
		writeBlock(&sb, c.Name, classDirective(modulePath, c))
	}
	for _, f := range mod.Functions {
		writeBlock(&sb, f.Name, fmt.Sprintf(".. autofunction:: %s.%s\n", modulePath, f.Name))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WritePackageIndex writes the stub for a package initializer: the module
// heading followed by a toctree of sibling modules in natural order. Dunder
// base names are skipped; with nothing left, no toctree is emitted at all.
func WritePackageIndex(w io.Writer, modulePath string, siblings []string) error {
	var sb strings.Builder
	writeModuleHeading(&sb, modulePath)

	sorted := make([]string, 0, len(siblings))
	for _, name := range siblings {
		if docpath.IsDunderName(name) {
			continue
		}
		sorted = append(sorted, name)
	}
	natsort.Sort(sorted)

	if len(sorted) > 0 {
		sb.WriteString(".. toctree::\n\n")
		for _, name := range sorted {
			sb.WriteString("   " + name + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeModuleHeading emits the escaped dotted-path title and the
// currentmodule/automodule directive pair rendered first in both modes.
func writeModuleHeading(sb *strings.Builder, modulePath string) {
	title := rst.Escape(modulePath)
	sb.WriteString(title + "\n")
	sb.WriteString(rst.Underline(title, '=') + "\n\n")
	sb.WriteString(".. currentmodule:: " + modulePath + "\n\n")
	sb.WriteString(".. automodule:: " + modulePath + "\n\n\n")
}

// writeBlock emits one titled declaration block. Blocks end with a blank
// line and one more blank line separates them from the next block.
func writeBlock(sb *strings.Builder, name, directive string) {
	title := rst.Escape(name)
	sb.WriteString(title + "\n")
	sb.WriteString(rst.Underline(title, '-') + "\n\n")
	sb.WriteString(directive)
	sb.WriteString("\n\n")
}

// classDirective renders the autoclass directive, listing every method and
// attribute name for the external builder. Classes without members get no
// members line.
func classDirective(modulePath string, c pyast.Class) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ".. autoclass:: %s.%s\n", modulePath, c.Name)

	members := make([]string, 0, len(c.Methods)+len(c.Attributes))
	for _, m := range c.Methods {
		members = append(members, m.Name)
	}
	for _, a := range c.Attributes {
		members = append(members, a.Name)
	}
	if len(members) > 0 {
		sb.WriteString("   :members: " + strings.Join(members, ", ") + "\n")
	}
	return sb.String()
}
