package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{CorpusDir: "./chinese-poetry", DataDir: "./data", MarkBatch: DefaultMarkBatch}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"empty corpus dir", func(c *Config) { c.CorpusDir = "" }, ErrCorpusDirEmpty},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, ErrDataDirEmpty},
		{"zero mark batch", func(c *Config) { c.MarkBatch = 0 }, ErrMarkBatchInvalid},
		{"negative mark batch", func(c *Config) { c.MarkBatch = -1 }, ErrMarkBatchInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestCorpusByName(t *testing.T) {
	for _, c := range []Corpus{TangPoems, SongPoems, SongLyrics} {
		got, err := CorpusByName(c.Name)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := CorpusByName("yuan-operas")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCorpus))
}

func TestStanzasUnmarshal(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		var s Stanzas
		require.NoError(t, json.Unmarshal([]byte(`["一行", "二行"]`), &s))
		assert.Equal(t, Stanzas{"一行", "二行"}, s)
	})

	t.Run("single string", func(t *testing.T) {
		var s Stanzas
		require.NoError(t, json.Unmarshal([]byte(`"独行"`), &s))
		assert.Equal(t, Stanzas{"独行"}, s)
	})

	t.Run("invalid shape", func(t *testing.T) {
		var s Stanzas
		require.Error(t, json.Unmarshal([]byte(`{"not": "stanzas"}`), &s))
	})
}

func TestStanzasJoinAndEmpty(t *testing.T) {
	assert.Equal(t, "一行\n二行", Stanzas{"一行", "二行"}.Join())
	assert.True(t, Stanzas(nil).Empty())
	assert.True(t, Stanzas{"", ""}.Empty())
	assert.False(t, Stanzas{"", "一行"}.Empty())
}

func TestRawAuthorBio(t *testing.T) {
	assert.Equal(t, "字太白", RawAuthor{Desc: "字太白"}.Bio())
	assert.Equal(t, "宋代词人", RawAuthor{Description: "宋代词人"}.Bio())
	assert.Equal(t, "先到者胜", RawAuthor{Desc: "先到者胜", Description: "后到者"}.Bio())
	assert.Equal(t, "", RawAuthor{}.Bio())
}

func TestRunReportTallies(t *testing.T) {
	r := RunReport{
		Corpus: TangPoems.Name,
		Partitions: []PartitionReport{
			{Partition: "poet.tang.0.json", Loaded: 10, Skipped: 1, Unresolved: 2},
			{Partition: "poet.tang.1000.json", Err: errors.New("constraint failed")},
			{Partition: "poet.tang.2000.json", Loaded: 5},
		},
	}

	assert.Equal(t, 2, r.Succeeded())
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 15, r.Loaded())
	assert.Equal(t, 1, r.Skipped())
	assert.Equal(t, 2, r.Unresolved())
	assert.True(t, r.Partitions[1].Failed())
	assert.False(t, r.Partitions[0].Failed())
}
