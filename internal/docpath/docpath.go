// Package docpath maps source file locations to logical module paths.
package docpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// SourceExt is the recognized Python source extension.
	SourceExt = ".py"

	// InitBase is the base name of a package initializer module.
	InitBase = "__init__"
)

// ModulePath returns the dotted logical module path for a source file under
// libraryRoot. A trailing package-initializer segment is stripped, so
// pkg/__init__.py resolves to "pkg".
func ModulePath(file, libraryRoot string) (string, error) {
	rel, err := filepath.Rel(libraryRoot, file)
	if err != nil {
		return "", fmt.Errorf("resolving module path for %s: %w", file, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside library root %s", file, libraryRoot)
	}

	rel = strings.TrimSuffix(rel, SourceExt)
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if parts[len(parts)-1] == InitBase {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return "", fmt.Errorf("%s has no module path under %s", file, libraryRoot)
	}
	return strings.Join(parts, "."), nil
}

// IsInit reports whether file is a package initializer.
func IsInit(file string) bool {
	return filepath.Base(file) == InitBase+SourceExt
}

// IsDunderName reports whether a module base name is dunder-shaped, like the
// initializer's own base name.
func IsDunderName(base string) bool {
	return strings.HasPrefix(base, "__") && strings.HasSuffix(base, "__")
}

// TestPath rewrites a module file path to its conventional unit-test file
// path under testsRoot, mirroring the module's location relative to
// libraryRoot: pkg/util/io.py becomes <testsRoot>/pkg/util/test_io.py. A
// package initializer maps to the test file named after its package.
func TestPath(file, libraryRoot, testsRoot string) (string, error) {
	rel, err := filepath.Rel(libraryRoot, file)
	if err != nil {
		return "", fmt.Errorf("resolving test path for %s: %w", file, err)
	}

	dir := filepath.Dir(rel)
	base := strings.TrimSuffix(filepath.Base(rel), SourceExt)
	if base == InitBase {
		base = filepath.Base(dir)
		dir = filepath.Dir(dir)
	}
	return filepath.Join(testsRoot, dir, "test_"+base+SourceExt), nil
}
