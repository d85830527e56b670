// Package pypistats answers package-popularity lookups against a bundled
// download-count table.
package pypistats

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

//go:embed data/top-packages.csv
var rawTable []byte

// Entry is one row of the download-count table.
type Entry struct {
	Name      string
	Downloads int64
	Rank      int
}

// table is computed at most once per process and never mutated afterwards.
var (
	loadOnce sync.Once
	loadErr  error
	ranked   []Entry
	byName   map[string]Entry
)

func load() ([]Entry, map[string]Entry, error) {
	loadOnce.Do(func() {
		ranked, byName, loadErr = parseTable(bytes.NewReader(rawTable))
	})
	return ranked, byName, loadErr
}

func parseTable(r io.Reader) ([]Entry, map[string]Entry, error) {
	reader := csv.NewReader(r)

	// Header row.
	if _, err := reader.Read(); err != nil {
		return nil, nil, errors.Wrap(err, "reading download table header")
	}

	var entries []Entry
	index := make(map[string]Entry)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "reading download table")
		}
		if len(record) < 2 {
			return nil, nil, errors.Errorf("malformed download table row: %v", record)
		}

		downloads, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "parsing download count for %s", record[0])
		}

		entry := Entry{
			Name:      record[0],
			Downloads: downloads,
			Rank:      len(entries) + 1,
		}
		entries = append(entries, entry)
		index[normalize(entry.Name)] = entry
	}

	return entries, index, nil
}

// normalize applies PEP 503 style name normalization: lowercase, with runs
// of separators collapsed to a single hyphen.
func normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer("_", "-", ".", "-").Replace(name)
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return name
}

// Lookup returns the table entry for a package name, case and separator
// insensitive.
func Lookup(name string) (Entry, bool, error) {
	_, index, err := load()
	if err != nil {
		return Entry{}, false, err
	}
	entry, ok := index[normalize(name)]
	return entry, ok, nil
}

// Top returns the n most-downloaded packages in rank order. The returned
// slice is a copy; the memoized table itself is never handed out.
func Top(n int) ([]Entry, error) {
	entries, _, err := load()
	if err != nil {
		return nil, err
	}
	if n > len(entries) {
		n = len(entries)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Entry, n)
	copy(out, entries[:n])
	return out, nil
}
