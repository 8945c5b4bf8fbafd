package types

import "time"

// Category values stored on work rows. The literals match the corpus
// classification vocabulary (诗 poem, 词 lyric).
const (
	CategoryPoem  = "诗"
	CategoryLyric = "词"
)

// Dynasty values stored on author and work rows.
const (
	DynastyTang    = "唐"
	DynastySong    = "宋"
	DynastyUnknown = ""
)

// Author is one normalized author row. Name is the canonical Simplified
// form and is unique across the store; NameTW is the Traditional form when
// the source corpus provides one.
type Author struct {
	ID             string
	Name           string
	NameTW         *string
	Dynasty        string
	Introduction   string
	IntroductionTW *string
	IsTop300       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Work is one normalized poem or lyric row. Content is the Simplified body
// joined from stanzas with newlines; ContentTW is the Traditional original,
// nil for the lyric corpus which ships Simplified only. AuthorID is nil when
// no author row matched at load time; it is never back-filled.
type Work struct {
	ID           string
	Title        string
	TitleTW      *string
	Content      string
	ContentTW    *string
	AuthorName   string
	AuthorNameTW *string
	AuthorID     *string
	Category     string
	Dynasty      string
	IsTop300     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
