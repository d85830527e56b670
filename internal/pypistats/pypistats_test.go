package pypistats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for pypistats:
// - Look up packages case and separator insensitively
// - Report unknown packages as not found
// - Return the top N entries in rank order
// - Name normalization follows PEP 503
// - Malformed tables fail with an error

func TestLookup(t *testing.T) {
	t.Parallel()

	entry, ok, err := Lookup("requests")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "requests", entry.Name)
	assert.Positive(t, entry.Downloads)
	assert.Positive(t, entry.Rank)

	// Case and separator insensitive.
	upper, ok, err := Lookup("REQUESTS")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, upper)

	underscored, ok, err := Lookup("python_dateutil")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "python-dateutil", underscored.Name)
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, ok, err := Lookup("definitely-not-a-real-package")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTop(t *testing.T) {
	t.Parallel()

	entries, err := Top(5)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
	// Rank order is download order.
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Downloads, entries[i].Downloads)
	}

	none, err := Top(0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTop_MoreThanTable(t *testing.T) {
	t.Parallel()

	entries, err := Top(1 << 20)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	assert.Less(t, len(entries), 1<<20)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "python-dateutil", normalize("Python_DateUtil"))
	assert.Equal(t, "a-b-c", normalize("a.b_c"))
	assert.Equal(t, "a-b", normalize("a-_-b"))
}

func TestParseTable_Malformed(t *testing.T) {
	t.Parallel()

	_, _, err := parseTable(strings.NewReader("package,downloads\nrequests,not-a-number\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requests")
}
