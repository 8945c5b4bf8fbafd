package types

import "fmt"

// JoinKey selects which author column a corpus joins works against.
type JoinKey string

const (
	// JoinVariantName joins on the Traditional name_tw column. Used by the
	// poem corpora, whose records carry Traditional author names.
	JoinVariantName JoinKey = "name_tw"

	// JoinCanonicalName joins on the canonical Simplified name column.
	// Used by the lyric corpus, which only provides Simplified names.
	JoinCanonicalName JoinKey = "name"
)

// Corpus describes one work corpus: where its partition files live, how its
// records are tagged, and how author references resolve.
type Corpus struct {
	// Name identifies the corpus in logs and reports.
	Name string

	// FilePrefix is the partition filename prefix; partitions are named
	// <FilePrefix><offset>.json with ascending numeric offsets.
	FilePrefix string

	// Category and Dynasty tag every normalized record of this corpus.
	Category string
	Dynasty  string

	// JoinKey selects the author column used to resolve references.
	JoinKey JoinKey

	// Lyric selects the lyric record shape (rhythmic title, Simplified
	// source, no Traditional variant) instead of the poem shape.
	Lyric bool
}

// The three work corpora of the chinese-poetry collection.
var (
	TangPoems = Corpus{
		Name:       "tang-poems",
		FilePrefix: "poet.tang.",
		Category:   CategoryPoem,
		Dynasty:    DynastyTang,
		JoinKey:    JoinVariantName,
	}

	SongPoems = Corpus{
		Name:       "song-poems",
		FilePrefix: "poet.song.",
		Category:   CategoryPoem,
		Dynasty:    DynastySong,
		JoinKey:    JoinVariantName,
	}

	SongLyrics = Corpus{
		Name:       "song-lyrics",
		FilePrefix: "ci.song.",
		Category:   CategoryLyric,
		Dynasty:    DynastySong,
		JoinKey:    JoinCanonicalName,
		Lyric:      true,
	}
)

// CorpusByName returns the corpus descriptor registered under name, or
// ErrUnknownCorpus.
func CorpusByName(name string) (Corpus, error) {
	switch name {
	case TangPoems.Name:
		return TangPoems, nil
	case SongPoems.Name:
		return SongPoems, nil
	case SongLyrics.Name:
		return SongLyrics, nil
	default:
		return Corpus{}, fmt.Errorf("%w: %q", ErrUnknownCorpus, name)
	}
}

// AuthorSource describes one author biography file. Simplified sources
// carry no Traditional variant and load with insert-or-ignore semantics so
// a richer biography already present is never overwritten.
type AuthorSource struct {
	File       string
	Dynasty    string
	Simplified bool
}

// AuthorSources lists the author files in load order.
var AuthorSources = []AuthorSource{
	{File: "authors.tang.json", Dynasty: DynastyTang},
	{File: "authors.song.json", Dynasty: DynastySong},
	{File: "author.song.json", Dynasty: DynastySong, Simplified: true},
}
