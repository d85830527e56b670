// Package generator drives stub generation: discover modules, extract their
// public surface, and write one reStructuredText stub per module.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/example/pydocstub/internal/config"
	"github.com/example/pydocstub/internal/discovery"
	"github.com/example/pydocstub/internal/docpath"
	"github.com/example/pydocstub/internal/pyast"
	"github.com/example/pydocstub/internal/stub"
)

// Summary reports what one generation pass did.
type Summary struct {
	Written int
	Skipped int
	Failed  int
	Missing int // modules without a conventional test file (--with-tests)
}

// Generator renders stubs for every discovered module under the library
// root. It holds no per-file state; passes are independent.
type Generator struct {
	cfg       *config.Config
	withTests bool
	progress  ProgressReporter
}

// New creates a generator for the given configuration.
func New(cfg *config.Config, withTests bool, progress ProgressReporter) *Generator {
	if progress == nil {
		progress = NoopProgress{}
	}
	return &Generator{
		cfg:       cfg,
		withTests: withTests,
		progress:  progress,
	}
}

// Run discovers modules under the library root and generates a stub for each
// one. Per-module failures are logged and counted, not fatal; the pass keeps
// going so one odd file never loses the rest of the documentation.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	d, err := discovery.New(g.cfg.Paths.LibraryRoot, g.cfg.Paths.Include, g.cfg.Paths.Ignore)
	if err != nil {
		return summary, err
	}

	modules, err := d.Modules()
	if err != nil {
		return summary, err
	}
	g.progress.OnDiscoveryComplete(len(modules))

	for _, file := range modules {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		outPath, err := g.GenerateModule(file)
		switch {
		case err != nil:
			summary.Failed++
			log.Printf("skipping %s: %v", file, err)
		case outPath == "":
			summary.Skipped++
		default:
			summary.Written++
		}

		if g.withTests && !docpath.IsInit(file) {
			missing, err := g.missingTest(file)
			if err == nil && missing {
				summary.Missing++
			}
		}

		g.progress.OnModuleComplete(file)
	}

	g.progress.OnFinish(summary)
	return summary, nil
}

// GenerateModule renders the stub for a single source file and writes it to
// the output directory as <dotted.path>.rst. It returns the written path, or
// "" when an existing stub was left alone.
func (g *Generator) GenerateModule(file string) (string, error) {
	modPath, err := docpath.ModulePath(file, g.cfg.Paths.LibraryRoot)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if docpath.IsInit(file) {
		siblings, err := discovery.Siblings(filepath.Dir(file))
		if err != nil {
			return "", err
		}
		if err := stub.WritePackageIndex(&buf, modPath, siblings); err != nil {
			return "", err
		}
	} else {
		source, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		mod, err := pyast.Extract(source)
		if err != nil {
			return "", err
		}
		if err := stub.WriteMemberListing(&buf, modPath, mod); err != nil {
			return "", err
		}
	}

	outPath := filepath.Join(g.cfg.Output.Dir, modPath+".rst")
	if !g.cfg.Output.Force {
		if _, err := os.Stat(outPath); err == nil {
			return "", nil // leave hand-edited stubs alone unless forced
		}
	}

	if err := writeStub(outPath, buf.Bytes()); err != nil {
		return "", err
	}
	return outPath, nil
}

// writeStub writes the document, ensuring the immediate parent directory
// exists. An unwritable destination propagates; there is no retry and no
// fallback location.
func writeStub(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing stub %s: %w", path, err)
	}
	return nil
}

// missingTest reports whether the module's conventional unit-test file does
// not exist yet.
func (g *Generator) missingTest(file string) (bool, error) {
	testPath, err := docpath.TestPath(file, g.cfg.Paths.LibraryRoot, g.cfg.Paths.TestsRoot)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(testPath); err != nil {
		if os.IsNotExist(err) {
			log.Printf("no test file for %s (expected %s)", file, testPath)
			return true, nil
		}
		return false, err
	}
	return false, nil
}
