// Package discovery locates Python source files for stub generation.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/example/pydocstub/internal/docpath"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks a library root with include and ignore glob patterns.
type Discovery struct {
	rootDir        string
	includes       []compiledPattern
	ignorePatterns []compiledPattern
}

// New compiles the given glob patterns into a Discovery rooted at rootDir.
func New(rootDir string, includes, ignores []string) (*Discovery, error) {
	d := &Discovery{rootDir: rootDir}

	for _, pattern := range includes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "compiling include pattern %q", pattern)
		}
		d.includes = append(d.includes, compiledPattern{pattern: pattern, glob: g})
	}
	for _, pattern := range ignores {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "compiling ignore pattern %q", pattern)
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Modules walks the root directory and returns every matching Python source
// file in walk order.
func (d *Discovery) Modules() ([]string, error) {
	files := []string{}

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, docpath.SourceExt) {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.matchesAny(d.ignorePatterns, relPath) {
			return nil
		}
		if len(d.includes) > 0 && !d.matchesAny(d.includes, relPath) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", d.rootDir)
	}

	return files, nil
}

func (d *Discovery) matchesAny(patterns []compiledPattern, relPath string) bool {
	for _, p := range patterns {
		if p.glob.Match(relPath) {
			return true
		}
	}
	return false
}

// Siblings returns the base names (extension stripped) of the Python source
// files in dir, excluding dunder-named modules such as the package
// initializer itself. Ordering is left to the caller.
func Siblings(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), docpath.SourceExt) {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), docpath.SourceExt)
		if docpath.IsDunderName(base) {
			continue
		}
		names = append(names, base)
	}
	return names, nil
}
