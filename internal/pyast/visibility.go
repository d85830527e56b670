package pyast

import "strings"

// Python visibility rules:
//   - Names starting with __ but not ending with __ are name-mangled (private)
//   - Names starting with a single _ are conventionally protected
//   - Dunder names (__init__, __str__, etc.) are special and documented
//   - All other names are public
//
// Special wins over the underscore exclusions: __init__ starts with two
// underscores but is still documented.

func isPrivate(name string) bool {
	return strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__")
}

func isProtected(name string) bool {
	return strings.HasPrefix(name, "_") && !isPrivate(name)
}

// isSpecial reports whether name is a dunder name. Names of four or fewer
// characters (like "____") do not qualify.
func isSpecial(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") && len(name) > 4
}

// includable reports whether a declaration with this name belongs in the
// module inventory.
func includable(name string) bool {
	return (!isPrivate(name) && !isProtected(name)) || isSpecial(name)
}
