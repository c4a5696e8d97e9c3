package hls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVariants(t *testing.T) {
	extractor := NewExtractor()

	t.Run("master manifest", func(t *testing.T) {
		variants := extractor.ExtractVariants(TestMasterManifest)

		require.Len(t, variants, 3)
		assert.Equal(t, 1280000, variants[0].Bandwidth)
		assert.Equal(t, "avc1.42e00a,mp4a.40.2", variants[0].Codecs)
		assert.Equal(t, "852x480", variants[0].Resolution)
		assert.Equal(t, "30", variants[0].FrameRate)
		assert.Equal(t, "SDR", variants[0].VideoRange)

		assert.Equal(t, 5000000, variants[2].Bandwidth)
		assert.Equal(t, "PQ", variants[2].VideoRange)
	})

	t.Run("no variant declarations", func(t *testing.T) {
		variants := extractor.ExtractVariants(TestManifestNoVariants)
		assert.Empty(t, variants)
	})

	t.Run("partial attribute list does not match", func(t *testing.T) {
		content := `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=1280000,CODECS="avc1.42e00a"
480p.m3u8`
		variants := extractor.ExtractVariants(content)
		assert.Empty(t, variants)
	})
}

func TestExtractSegments(t *testing.T) {
	t.Run("media manifest", func(t *testing.T) {
		extractor := NewExtractor()
		refs := extractor.ExtractSegments(TestMediaManifest)

		assert.Equal(t, []string{"segment0.ts", "segment1.ts", "segment2.ts"}, refs)
	})

	t.Run("comment lines are skipped", func(t *testing.T) {
		extractor := NewExtractor()
		content := "#comment.ts\nsegment0.ts\n# another.ts\n"
		refs := extractor.ExtractSegments(content)

		assert.Equal(t, []string{"segment0.ts"}, refs)
	})

	t.Run("custom segment extension", func(t *testing.T) {
		config := DefaultConfig()
		config.Extractor.SegmentExtension = ".aac"
		extractor := NewExtractorWithConfig(config.Extractor)

		content := "audio0.aac\nsegment0.ts\naudio1.aac\n"
		refs := extractor.ExtractSegments(content)

		assert.Equal(t, []string{"audio0.aac", "audio1.aac"}, refs)
	})

	t.Run("absolute references kept verbatim", func(t *testing.T) {
		extractor := NewExtractor()
		content := "https://cdn.example.com/live/segment0.ts\n"
		refs := extractor.ExtractSegments(content)

		assert.Equal(t, []string{"https://cdn.example.com/live/segment0.ts"}, refs)
	})
}

func TestSummarize(t *testing.T) {
	extractor := NewExtractor()

	t.Run("multiple variants", func(t *testing.T) {
		variants := []ManifestVariant{
			{Bandwidth: 1280000},
			{Bandwidth: 2560000},
			{Bandwidth: 5000000},
		}

		summary := extractor.Summarize(variants)

		require.NotNil(t, summary)
		assert.Equal(t, 5.0, summary.Highest)
		assert.Equal(t, 1.28, summary.Lowest)
		assert.Equal(t, 2.9467, summary.Average)
	})

	t.Run("single variant", func(t *testing.T) {
		summary := extractor.Summarize([]ManifestVariant{{Bandwidth: 5000000}})

		require.NotNil(t, summary)
		assert.Equal(t, 5.0, summary.Highest)
		assert.Equal(t, 5.0, summary.Lowest)
		assert.Equal(t, 5.0, summary.Average)
	})

	t.Run("rounding asymmetry", func(t *testing.T) {
		summary := extractor.Summarize([]ManifestVariant{{Bandwidth: 1234567}})

		require.NotNil(t, summary)
		assert.Equal(t, 1.235, summary.Highest)
		assert.Equal(t, 1.235, summary.Lowest)
		assert.Equal(t, 1.2346, summary.Average)
	})

	t.Run("empty variant list", func(t *testing.T) {
		assert.Nil(t, extractor.Summarize(nil))
	})
}
