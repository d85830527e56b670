package docpath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for docpath:
// - Map source files to dotted module paths relative to the library root
// - Strip a trailing package-initializer segment
// - Reject files outside the library root
// - Recognize initializer files and dunder-shaped base names
// - Rewrite module paths to conventional test file paths

func TestModulePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		root string
		want string
	}{
		{file: "lib/pkg/mod.py", root: "lib", want: "pkg.mod"},
		{file: "lib/pkg/sub/mod.py", root: "lib", want: "pkg.sub.mod"},
		{file: "lib/pkg/__init__.py", root: "lib", want: "pkg"},
		{file: "lib/pkg/sub/__init__.py", root: "lib", want: "pkg.sub"},
		{file: "lib/top.py", root: "lib", want: "top"},
	}

	for _, tt := range tests {
		got, err := ModulePath(filepath.FromSlash(tt.file), tt.root)
		require.NoError(t, err, tt.file)
		assert.Equal(t, tt.want, got, tt.file)
	}
}

func TestModulePath_OutsideRoot(t *testing.T) {
	t.Parallel()

	_, err := ModulePath(filepath.FromSlash("elsewhere/mod.py"), "lib")
	assert.Error(t, err)
}

func TestIsInit(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInit(filepath.FromSlash("pkg/__init__.py")))
	assert.False(t, IsInit(filepath.FromSlash("pkg/module.py")))
	assert.False(t, IsInit(filepath.FromSlash("pkg/init.py")))
}

func TestIsDunderName(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDunderName("__init__"))
	assert.True(t, IsDunderName("__main__"))
	assert.False(t, IsDunderName("_private"))
	assert.False(t, IsDunderName("module"))
}

func TestTestPath(t *testing.T) {
	t.Parallel()

	got, err := TestPath(filepath.FromSlash("lib/pkg/util.py"), "lib", "tests")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("tests/pkg/test_util.py"), got)

	// Initializers map to a test named after their package.
	got, err = TestPath(filepath.FromSlash("lib/pkg/__init__.py"), "lib", "tests")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("tests/test_pkg.py"), got)

	got, err = TestPath(filepath.FromSlash("lib/top.py"), "lib", "tests")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("tests/test_top.py"), got)
}
