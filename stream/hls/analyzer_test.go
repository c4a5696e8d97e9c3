package hls

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("manifest with variants and reachable segments", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/live/playlist.m3u8":
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(TestCombinedManifest))
			case r.Method == http.MethodHead:
				w.WriteHeader(http.StatusOK)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, server.URL+"/live/playlist.m3u8")

		require.Empty(t, report.Error)
		assert.Equal(t, 1.28, report.HighestBitrateMbps)
		assert.Equal(t, 1.28, report.LowestBitrateMbps)
		assert.Equal(t, 1.28, report.AverageBitrateMbps)
		assert.Equal(t, "avc1.42e00a", report.Codec)
		assert.Equal(t, "852x480", report.Resolution)
		assert.Equal(t, "30", report.FrameRate)
		assert.Equal(t, "SDR", report.VideoRange)
		assert.Equal(t, StatusAllAvailable, report.NetworkCheck)
		assert.Empty(t, report.FailedSegments)
	})

	t.Run("worked single-variant example", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(TestSingleVariantManifest))
		}))
		defer server.Close()

		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, server.URL+"/master.m3u8")

		require.Empty(t, report.Error)
		assert.Equal(t, 5.0, report.HighestBitrateMbps)
		assert.Equal(t, 5.0, report.LowestBitrateMbps)
		assert.Equal(t, 5.0, report.AverageBitrateMbps)
		assert.Equal(t, "avc1", report.Codec)
		assert.Equal(t, "1920x1080", report.Resolution)
	})

	t.Run("unreachable segment reported", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/live/playlist.m3u8":
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(TestCombinedManifest))
			case r.URL.Path == "/live/segment1.ts":
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, server.URL+"/live/playlist.m3u8")

		require.Empty(t, report.Error)
		assert.Equal(t, "1 segments unavailable", report.NetworkCheck)
		require.Len(t, report.FailedSegments, 1)
		assert.Equal(t, server.URL+"/live/segment1.ts", report.FailedSegments[0])
	})

	t.Run("no stream information", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(TestManifestNoVariants))
		}))
		defer server.Close()

		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, server.URL+"/playlist.m3u8")

		assert.Equal(t, ErrMsgNoStreamInfo, report.Error)
		assert.Zero(t, report.HighestBitrateMbps)
		assert.Zero(t, report.AverageBitrateMbps)
		assert.Zero(t, report.LowestBitrateMbps)
		assert.Empty(t, report.NetworkCheck)
	})

	t.Run("missing local file yields error result", func(t *testing.T) {
		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, filepath.Join(t.TempDir(), "missing.m3u8"))

		require.NotEmpty(t, report.Error)
		assert.Contains(t, report.Error, "file not found")
		assert.Zero(t, report.HighestBitrateMbps)
	})

	t.Run("fetch failure yields error result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, server.URL+"/playlist.m3u8")

		require.NotEmpty(t, report.Error)
		assert.Contains(t, report.Error, "HTTP 500")
	})

	t.Run("master playlist classification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(TestMasterManifest))
		}))
		defer server.Close()

		analyzer := NewAnalyzer()
		report := analyzer.Analyze(ctx, server.URL+"/master.m3u8")

		require.Empty(t, report.Error)
		require.NotNil(t, report.Playlist)
		assert.True(t, report.Playlist.IsMaster)
		assert.Equal(t, 3, report.Playlist.VariantCount)
	})
}

func TestNewAnalyzer(t *testing.T) {
	analyzer := NewAnalyzer()

	assert.NotNil(t, analyzer.loader)
	assert.NotNil(t, analyzer.extractor)
	assert.NotNil(t, analyzer.checker)
	assert.NotNil(t, analyzer.GetConfig())
}
