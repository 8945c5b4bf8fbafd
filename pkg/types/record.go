package types

import (
	"encoding/json"
	"strings"
)

// Stanzas is an ordered list of stanza strings. The corpus encodes the
// paragraphs field sometimes as a JSON array and sometimes as a single
// string; Stanzas accepts both.
type Stanzas []string

// UnmarshalJSON decodes either a JSON array of strings or a single JSON
// string into the stanza list.
func (s *Stanzas) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = []string{single}
	return nil
}

// Join concatenates the stanzas with newline separators.
func (s Stanzas) Join() string {
	return strings.Join(s, "\n")
}

// Empty reports whether the stanza list carries no text at all.
func (s Stanzas) Empty() bool {
	for _, line := range s {
		if line != "" {
			return false
		}
	}
	return true
}

// RawPoem is one poem record as found in the poet.tang.* and poet.song.*
// partition files. All text is Traditional script.
type RawPoem struct {
	Title      string  `json:"title"`
	Paragraphs Stanzas `json:"paragraphs"`
	Author     string  `json:"author"`
}

// RawLyric is one lyric record as found in the ci.song.* partition files.
// The lyric corpus is distributed in Simplified script only and titles the
// piece by its tune pattern.
type RawLyric struct {
	Rhythmic   string  `json:"rhythmic"`
	Paragraphs Stanzas `json:"paragraphs"`
	Author     string  `json:"author"`
}

// RawAuthor is one author biography record. The poem corpora use the "desc"
// key, the lyric corpus uses "description"; both are accepted.
type RawAuthor struct {
	Name        string `json:"name"`
	Desc        string `json:"desc"`
	Description string `json:"description"`
}

// Bio returns whichever biography field the source file populated.
func (a RawAuthor) Bio() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Description
}
