package top300

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digua-cn/shici/pkg/types"
)

func TestCanonicalList(t *testing.T) {
	list, err := Canonical()
	require.NoError(t, err)

	assert.NotEmpty(t, list.Works)
	assert.NotEmpty(t, list.Authors)
	assert.Contains(t, list.Works, "静夜思")
	assert.Contains(t, list.Works, "登鹳雀楼")
	assert.Contains(t, list.Authors, "李白")
	assert.Contains(t, list.Authors, "杜甫")
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	content := `{"works": ["静夜思"], "authors": ["李白"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"静夜思"}, list.Works)
	assert.Equal(t, []string{"李白"}, list.Authors)
}

func TestFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

		_, err := FromFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrMalformedRecord))
	})

	t.Run("empty list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"works": [], "authors": []}`), 0o644))

		_, err := FromFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrMalformedRecord))
	})
}
