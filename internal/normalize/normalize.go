// Package normalize maps raw corpus records into normalized author and work
// rows: fresh identifiers, both script forms populated, category and dynasty
// tags attached.
package normalize

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/digua-cn/shici/internal/convert"
	"github.com/digua-cn/shici/pkg/types"
)

// Poem normalizes one poem record. The raw text is Traditional script: the
// Simplified fields are derived through the converter and the raw values are
// preserved verbatim as the Traditional variants. Returns ErrMalformedRecord
// when the title or body is missing; the caller skips the record.
func Poem(raw types.RawPoem, c types.Corpus) (*types.Work, error) {
	if raw.Title == "" {
		return nil, fmt.Errorf("%w: poem without title (author %q)", types.ErrMalformedRecord, raw.Author)
	}
	if raw.Paragraphs.Empty() {
		return nil, fmt.Errorf("%w: poem %q without body", types.ErrMalformedRecord, raw.Title)
	}

	titleTW := raw.Title
	contentTW := raw.Paragraphs.Join()
	authorTW := raw.Author

	return &types.Work{
		ID:           uuid.NewString(),
		Title:        convert.Text(raw.Title),
		TitleTW:      &titleTW,
		Content:      convert.Stanzas(raw.Paragraphs),
		ContentTW:    &contentTW,
		AuthorName:   convert.Text(raw.Author),
		AuthorNameTW: &authorTW,
		Category:     c.Category,
		Dynasty:      c.Dynasty,
	}, nil
}

// Lyric normalizes one lyric record. The lyric corpus is already Simplified:
// text passes through without conversion and the Traditional variant fields
// stay nil. The tune pattern (rhythmic) serves as the title.
func Lyric(raw types.RawLyric, c types.Corpus) (*types.Work, error) {
	if raw.Rhythmic == "" {
		return nil, fmt.Errorf("%w: lyric without rhythmic (author %q)", types.ErrMalformedRecord, raw.Author)
	}
	if raw.Paragraphs.Empty() {
		return nil, fmt.Errorf("%w: lyric %q without body", types.ErrMalformedRecord, raw.Rhythmic)
	}

	return &types.Work{
		ID:         uuid.NewString(),
		Title:      raw.Rhythmic,
		Content:    raw.Paragraphs.Join(),
		AuthorName: raw.Author,
		Category:   c.Category,
		Dynasty:    c.Dynasty,
	}, nil
}

// Author normalizes one author biography record. For Traditional sources the
// canonical fields are converted and the raw values kept as variants; for
// Simplified sources the values pass through and the variants stay nil.
func Author(raw types.RawAuthor, src types.AuthorSource) (*types.Author, error) {
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: author without name in %s", types.ErrMalformedRecord, src.File)
	}

	a := &types.Author{
		ID:      uuid.NewString(),
		Dynasty: src.Dynasty,
	}
	if src.Simplified {
		a.Name = raw.Name
		a.Introduction = raw.Bio()
		return a, nil
	}

	nameTW := raw.Name
	bioTW := raw.Bio()
	a.Name = convert.Text(raw.Name)
	a.NameTW = &nameTW
	a.Introduction = convert.Text(raw.Bio())
	a.IntroductionTW = &bioTW
	return a, nil
}
