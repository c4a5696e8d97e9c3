package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReport struct {
	HighestBitrateMbps float64
	Codec              string
	NetworkCheck       string
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format   string
		expected Formatter
		wantErr  bool
	}{
		{"json", &JSONFormatter{}, false},
		{"", &JSONFormatter{}, false},
		{"yaml", &YAMLFormatter{}, false},
		{"yml", &YAMLFormatter{}, false},
		{"csv", &CSVFormatter{}, false},
		{"table", &TableFormatter{}, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			formatter, err := NewFormatter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, formatter)
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	report := sampleReport{
		HighestBitrateMbps: 5.0,
		Codec:              "avc1",
		NetworkCheck:       "All segments available",
	}

	formatter := &JSONFormatter{}

	t.Run("pretty", func(t *testing.T) {
		encoded, err := formatter.Format(report, true)
		require.NoError(t, err)
		assert.Contains(t, string(encoded), "\n  ")

		var decoded sampleReport
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, report, decoded)
	})

	t.Run("compact", func(t *testing.T) {
		encoded, err := formatter.Format(report, false)
		require.NoError(t, err)
		assert.NotContains(t, string(encoded), "\n")
	})
}

func TestYAMLFormatter(t *testing.T) {
	formatter := &YAMLFormatter{}

	encoded, err := formatter.Format(map[string]any{"codec": "avc1"}, false)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "codec: avc1")
}

func TestCSVFormatter(t *testing.T) {
	report := sampleReport{
		HighestBitrateMbps: 2.56,
		Codec:              "avc1",
		NetworkCheck:       "All segments available",
	}

	formatter := &CSVFormatter{}
	encoded, err := formatter.Format(report, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(encoded)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "codec,highestbitratembps,networkcheck", lines[0])
	assert.Equal(t, "avc1,2.56,All segments available", lines[1])
}

func TestTableFormatter(t *testing.T) {
	report := sampleReport{
		HighestBitrateMbps: 5.0,
		Codec:              "avc1",
	}

	formatter := &TableFormatter{}
	encoded, err := formatter.Format(report, false)
	require.NoError(t, err)

	text := string(encoded)
	assert.Contains(t, text, "HLS ANALYSIS RESULTS")
	assert.Contains(t, text, "Codec")
	assert.Contains(t, text, "avc1")
	// Empty values render as a dash
	assert.Contains(t, text, "-")
}

func TestExtractFlattenedData(t *testing.T) {
	t.Run("nested struct", func(t *testing.T) {
		type inner struct {
			SegmentCount int
		}
		type outer struct {
			Codec    string
			Playlist inner
		}

		flattened := ExtractFlattenedData(outer{Codec: "avc1", Playlist: inner{SegmentCount: 3}}, "")
		assert.Equal(t, "avc1", flattened["codec"])
		assert.Equal(t, 3, flattened["playlist_segmentcount"])
	})

	t.Run("nil pointer", func(t *testing.T) {
		var report *sampleReport
		flattened := ExtractFlattenedData(report, "")
		assert.Empty(t, flattened)
	})

	t.Run("map input", func(t *testing.T) {
		flattened := ExtractFlattenedData(map[string]any{"FrameRate": "30"}, "")
		assert.Equal(t, "30", flattened["framerate"])
	})
}

func TestConvertValueToString(t *testing.T) {
	assert.Equal(t, "", ConvertValueToString(nil))
	assert.Equal(t, "avc1", ConvertValueToString("avc1"))
	assert.Equal(t, "42", ConvertValueToString(42))
	assert.Equal(t, "2.946", ConvertValueToString(2.946))
	assert.Equal(t, "true", ConvertValueToString(true))
	assert.Equal(t, "a.ts; b.ts", ConvertValueToString([]string{"a.ts", "b.ts"}))
}
