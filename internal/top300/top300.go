// Package top300 carries the canonical Tang-300 anthology list: the work
// titles and author names that the marking pass flags in the store. The
// built-in list ships embedded; a JSON file with the same shape can stand
// in for it.
package top300

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/digua-cn/shici/pkg/types"
)

//go:embed top300.json
var canonicalJSON []byte

// List is an anthology list: Simplified work titles and canonical author
// names, as matched against the store's title and name columns.
type List struct {
	Works   []string `json:"works"`
	Authors []string `json:"authors"`
}

// Canonical returns the embedded anthology list.
func Canonical() (List, error) {
	return parse(canonicalJSON)
}

// FromFile reads an anthology list from a JSON file with the same shape as
// the embedded one.
func FromFile(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("reading anthology list: %w", err)
	}
	list, err := parse(data)
	if err != nil {
		return List{}, fmt.Errorf("parsing anthology list %s: %w", path, err)
	}
	return list, nil
}

func parse(data []byte) (List, error) {
	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return List{}, fmt.Errorf("%w: %v", types.ErrMalformedRecord, err)
	}
	if len(list.Works) == 0 && len(list.Authors) == 0 {
		return List{}, fmt.Errorf("%w: anthology list names no works or authors", types.ErrMalformedRecord)
	}
	return list, nil
}
