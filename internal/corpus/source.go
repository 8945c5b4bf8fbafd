// Package corpus reads the chinese-poetry JSON files: partitioned work
// files and author biography files. Reads are pure; re-loading a partition
// re-reads the file with no side effects.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/digua-cn/shici/pkg/types"
)

// Partition is a handle to one corpus partition file.
type Partition struct {
	Corpus types.Corpus
	Index  int    // position in discovery order
	Offset int    // numeric offset from the file name
	Path   string // absolute or dir-relative file path
}

// Name returns the partition's file name for logs and reports.
func (p Partition) Name() string {
	return filepath.Base(p.Path)
}

// Source locates and loads corpus files from a single directory.
type Source struct {
	dir string
}

// NewSource creates a Source rooted at the given corpus directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Partitions discovers the partition files for a corpus, ordered by their
// numeric offset. The partition count is whatever is on disk; nothing is
// hard-coded. Returns ErrNoPartitions when the corpus directory holds no
// matching files.
func (s *Source) Partitions(c types.Corpus) ([]Partition, error) {
	pattern := filepath.Join(s.dir, c.FilePrefix+"*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}

	parts := make([]Partition, 0, len(matches))
	for _, path := range matches {
		offset, ok := partitionOffset(filepath.Base(path), c.FilePrefix)
		if !ok {
			continue
		}
		parts = append(parts, Partition{Corpus: c, Offset: offset, Path: path})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w for %s in %s", types.ErrNoPartitions, c.Name, s.dir)
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].Offset < parts[j].Offset })
	for i := range parts {
		parts[i].Index = i
	}
	return parts, nil
}

// partitionOffset extracts the numeric offset from a partition file name
// such as poet.tang.1000.json.
func partitionOffset(name, prefix string) (int, bool) {
	raw := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json")
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return offset, true
}

// LoadPoems reads one poem partition fully into memory.
func (s *Source) LoadPoems(p Partition) ([]types.RawPoem, error) {
	var poems []types.RawPoem
	if err := readJSONFile(p.Path, &poems); err != nil {
		return nil, fmt.Errorf("loading poem partition %s: %w", p.Name(), err)
	}
	return poems, nil
}

// LoadLyrics reads one lyric partition fully into memory.
func (s *Source) LoadLyrics(p Partition) ([]types.RawLyric, error) {
	var lyrics []types.RawLyric
	if err := readJSONFile(p.Path, &lyrics); err != nil {
		return nil, fmt.Errorf("loading lyric partition %s: %w", p.Name(), err)
	}
	return lyrics, nil
}

// LoadAuthors reads one author biography file from the corpus directory.
func (s *Source) LoadAuthors(src types.AuthorSource) ([]types.RawAuthor, error) {
	var authors []types.RawAuthor
	path := filepath.Join(s.dir, src.File)
	if err := readJSONFile(path, &authors); err != nil {
		return nil, fmt.Errorf("loading author file %s: %w", src.File, err)
	}
	return authors, nil
}

// readJSONFile decodes one JSON file into dst.
func readJSONFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
