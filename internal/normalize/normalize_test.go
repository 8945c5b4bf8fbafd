package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digua-cn/shici/internal/convert"
	"github.com/digua-cn/shici/pkg/types"
)

func TestPoem(t *testing.T) {
	raw := types.RawPoem{
		Title:      "靜夜思",
		Paragraphs: types.Stanzas{"牀前明月光", "疑是地上霜"},
		Author:     "李白",
	}

	w, err := Poem(raw, types.TangPoems)
	require.NoError(t, err)

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, convert.Text("靜夜思"), w.Title)
	require.NotNil(t, w.TitleTW)
	assert.Equal(t, "靜夜思", *w.TitleTW)
	assert.Equal(t, convert.Stanzas(raw.Paragraphs), w.Content)
	require.NotNil(t, w.ContentTW)
	assert.Equal(t, "牀前明月光\n疑是地上霜", *w.ContentTW)
	assert.Equal(t, "李白", w.AuthorName)
	require.NotNil(t, w.AuthorNameTW)
	assert.Equal(t, "李白", *w.AuthorNameTW)
	assert.Equal(t, types.CategoryPoem, w.Category)
	assert.Equal(t, types.DynastyTang, w.Dynasty)
	assert.Nil(t, w.AuthorID, "normalization never resolves authors")
}

func TestPoemFreshIDs(t *testing.T) {
	raw := types.RawPoem{Title: "絕句", Paragraphs: types.Stanzas{"兩個黃鸝鳴翠柳"}, Author: "杜甫"}

	first, err := Poem(raw, types.TangPoems)
	require.NoError(t, err)
	second, err := Poem(raw, types.TangPoems)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "every normalization generates a fresh id")
}

func TestPoemMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  types.RawPoem
	}{
		{name: "missing title", raw: types.RawPoem{Paragraphs: types.Stanzas{"行"}, Author: "某"}},
		{name: "missing body", raw: types.RawPoem{Title: "題", Author: "某"}},
		{name: "body of empty stanzas", raw: types.RawPoem{Title: "題", Paragraphs: types.Stanzas{""}, Author: "某"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Poem(tt.raw, types.TangPoems)
			assert.True(t, errors.Is(err, types.ErrMalformedRecord))
		})
	}
}

func TestLyric(t *testing.T) {
	raw := types.RawLyric{
		Rhythmic:   "水调歌头",
		Paragraphs: types.Stanzas{"明月几时有", "把酒问青天"},
		Author:     "苏轼",
	}

	w, err := Lyric(raw, types.SongLyrics)
	require.NoError(t, err)

	assert.Equal(t, "水调歌头", w.Title)
	assert.Nil(t, w.TitleTW, "lyric corpus has no Traditional variant")
	assert.Equal(t, "明月几时有\n把酒问青天", w.Content)
	assert.Nil(t, w.ContentTW)
	assert.Equal(t, "苏轼", w.AuthorName)
	assert.Nil(t, w.AuthorNameTW)
	assert.Equal(t, types.CategoryLyric, w.Category)
	assert.Equal(t, types.DynastySong, w.Dynasty)
}

func TestLyricMalformed(t *testing.T) {
	_, err := Lyric(types.RawLyric{Paragraphs: types.Stanzas{"句"}}, types.SongLyrics)
	assert.True(t, errors.Is(err, types.ErrMalformedRecord))
}

func TestAuthorTraditionalSource(t *testing.T) {
	raw := types.RawAuthor{Name: "李白", Desc: "字太白，號青蓮居士"}

	a, err := Author(raw, types.AuthorSources[0])
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, convert.Text("李白"), a.Name)
	require.NotNil(t, a.NameTW)
	assert.Equal(t, "李白", *a.NameTW)
	assert.Equal(t, convert.Text(raw.Desc), a.Introduction)
	require.NotNil(t, a.IntroductionTW)
	assert.Equal(t, raw.Desc, *a.IntroductionTW)
	assert.Equal(t, types.DynastyTang, a.Dynasty)
	assert.False(t, a.IsTop300)
}

func TestAuthorSimplifiedSource(t *testing.T) {
	raw := types.RawAuthor{Name: "苏轼", Description: "北宋文学家"}

	a, err := Author(raw, types.AuthorSources[2])
	require.NoError(t, err)

	assert.Equal(t, "苏轼", a.Name)
	assert.Nil(t, a.NameTW)
	assert.Equal(t, "北宋文学家", a.Introduction)
	assert.Nil(t, a.IntroductionTW)
	assert.Equal(t, types.DynastySong, a.Dynasty)
}

func TestAuthorMalformed(t *testing.T) {
	_, err := Author(types.RawAuthor{Desc: "無名"}, types.AuthorSources[0])
	assert.True(t, errors.Is(err, types.ErrMalformedRecord))
}
