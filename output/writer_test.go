package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDocument(t *testing.T, path string) map[string]any {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(raw, &document))
	return document
}

func TestMergeIntoFile(t *testing.T) {
	t.Run("creates document and directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output", "analysis_output.json")

		err := MergeIntoFile(path, "manifest_analysis", map[string]any{"codec": "avc1"})
		require.NoError(t, err)

		document := readDocument(t, path)
		section, ok := document["manifest_analysis"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "avc1", section["codec"])
	})

	t.Run("preserves other sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "analysis_output.json")

		require.NoError(t, MergeIntoFile(path, "manifest_analysis", map[string]any{"codec": "avc1"}))
		require.NoError(t, MergeIntoFile(path, "probe_metrics", map[string]any{"frame_rate": "30/1"}))

		document := readDocument(t, path)
		assert.Contains(t, document, "manifest_analysis")
		assert.Contains(t, document, "probe_metrics")
	})

	t.Run("replaces same section", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "analysis_output.json")

		require.NoError(t, MergeIntoFile(path, "probe_metrics", map[string]any{"frame_rate": "30/1"}))
		require.NoError(t, MergeIntoFile(path, "probe_metrics", map[string]any{"frame_rate": "60/1"}))

		document := readDocument(t, path)
		section := document["probe_metrics"].(map[string]any)
		assert.Equal(t, "60/1", section["frame_rate"])
	})

	t.Run("recovers from corrupt document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "analysis_output.json")
		require.NoError(t, os.WriteFile(path, []byte("not json{"), 0o644))

		require.NoError(t, MergeIntoFile(path, "manifest_analysis", map[string]any{"codec": "avc1"}))

		document := readDocument(t, path)
		assert.Contains(t, document, "manifest_analysis")
		assert.Len(t, document, 1)
	})
}

func TestWriteFormatted(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "result.json")

		err := WriteFormatted(path, "json", map[string]any{"codec": "avc1"})
		require.NoError(t, err)

		document := readDocument(t, path)
		assert.Equal(t, "avc1", document["codec"])
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.xml")
		assert.Error(t, WriteFormatted(path, "xml", map[string]any{}))
	})
}
