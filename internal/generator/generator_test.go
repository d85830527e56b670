package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pydocstub/internal/config"
)

// Test Plan for the generator:
// - Generate one stub per discovered module
// - Package initializers get a toctree index instead of a member listing
// - Existing stubs are left alone unless force is set
// - Invalid modules are counted as failed without aborting the pass
// - --with-tests counts modules missing their conventional test file

func testConfig(root, out string) *config.Config {
	cfg := config.Default()
	cfg.Paths.LibraryRoot = root
	cfg.Paths.TestsRoot = filepath.Join(root, "tests")
	cfg.Output.Dir = out
	return cfg
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGenerator_Run(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	writeSource(t, filepath.Join(root, "pkg", "__init__.py"), "")
	writeSource(t, filepath.Join(root, "pkg", "core.py"), "class Engine:\n    def start(self):\n        pass\n")
	writeSource(t, filepath.Join(root, "pkg", "util.py"), "LIMIT = 10\n")

	gen := New(testConfig(root, out), false, nil)
	summary, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Written)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, summary.Skipped)

	index, err := os.ReadFile(filepath.Join(out, "pkg.rst"))
	require.NoError(t, err)
	assert.Contains(t, string(index), ".. toctree::")
	assert.Contains(t, string(index), "   core\n")
	assert.Contains(t, string(index), "   util\n")

	core, err := os.ReadFile(filepath.Join(out, "pkg.core.rst"))
	require.NoError(t, err)
	assert.Contains(t, string(core), ".. autoclass:: pkg.core.Engine")
	assert.Contains(t, string(core), "   :members: start\n")

	util, err := os.ReadFile(filepath.Join(out, "pkg.util.rst"))
	require.NoError(t, err)
	assert.Contains(t, string(util), ".. autodata:: pkg.util.LIMIT")
}

func TestGenerator_SkipsExistingWithoutForce(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	writeSource(t, filepath.Join(root, "mod.py"), "X = 1\n")

	cfg := testConfig(root, out)
	gen := New(cfg, false, nil)

	summary, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)

	// Hand-edit the stub, rerun: it must survive.
	stubPath := filepath.Join(out, "mod.rst")
	require.NoError(t, os.WriteFile(stubPath, []byte("edited\n"), 0o644))

	summary, err = gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Written)

	content, err := os.ReadFile(stubPath)
	require.NoError(t, err)
	assert.Equal(t, "edited\n", string(content))

	// With force, it is rewritten.
	cfg.Output.Force = true
	summary, err = gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)

	content, err = os.ReadFile(stubPath)
	require.NoError(t, err)
	assert.NotEqual(t, "edited\n", string(content))
}

func TestGenerator_InvalidModuleCountsAsFailed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	writeSource(t, filepath.Join(root, "good.py"), "X = 1\n")
	writeSource(t, filepath.Join(root, "bad.py"), "def broken(:\n")

	gen := New(testConfig(root, out), false, nil)
	summary, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, 1, summary.Failed)

	_, err = os.Stat(filepath.Join(out, "bad.rst"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerator_WithTests(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	writeSource(t, filepath.Join(root, "covered.py"), "X = 1\n")
	writeSource(t, filepath.Join(root, "bare.py"), "Y = 2\n")
	writeSource(t, filepath.Join(root, "tests", "test_covered.py"), "def test_x(): ...\n")

	cfg := testConfig(root, out)
	// The tests tree itself is not documented.
	cfg.Paths.Ignore = append(cfg.Paths.Ignore, "tests/**")

	gen := New(cfg, true, nil)
	summary, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Written)
	assert.Equal(t, 1, summary.Missing)
}

func TestGenerator_GenerateModule_SingleFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := t.TempDir()
	file := filepath.Join(root, "single.py")
	writeSource(t, file, "def run(): ...\n")

	gen := New(testConfig(root, out), false, nil)
	outPath, err := gen.GenerateModule(file)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "single.rst"), outPath)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), ".. autofunction:: single.run")
}

func TestGenerator_CancelledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "mod.py"), "X = 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := New(testConfig(root, t.TempDir()), false, nil)
	_, err := gen.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
