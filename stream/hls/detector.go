package hls

import (
	"path/filepath"
	"strings"

	"github.com/grafov/m3u8"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
)

// Extensions routed to the media prober rather than the manifest analyzer
var mediaExtensions = []string{".mp4", ".mpeg", ".ts"}

// DetectInputType classifies an input location by extension: HLS manifest,
// probe-able media file, or unsupported.
func DetectInputType(location string) common.StreamType {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(location)))

	// Strip query strings from URL inputs
	if idx := strings.IndexAny(ext, "?#"); idx != -1 {
		ext = ext[:idx]
	}

	if ext == ".m3u8" {
		return common.StreamTypeHLS
	}

	for _, mediaExt := range mediaExtensions {
		if ext == mediaExt {
			return common.StreamTypeMedia
		}
	}

	return common.StreamTypeUnsupported
}

// ClassifyPlaylist performs best-effort structural classification of
// manifest text. It enriches reports with playlist shape but never affects
// the pattern-extraction results; malformed content returns nil.
func ClassifyPlaylist(content string) *PlaylistInfo {
	playlist, listType, err := m3u8.DecodeFrom(strings.NewReader(content), true)
	if err != nil {
		return nil
	}

	switch listType {
	case m3u8.MASTER:
		master, ok := playlist.(*m3u8.MasterPlaylist)
		if !ok {
			return nil
		}
		count := 0
		for _, v := range master.Variants {
			if v != nil {
				count++
			}
		}
		return &PlaylistInfo{
			IsMaster:     true,
			VariantCount: count,
		}

	case m3u8.MEDIA:
		media, ok := playlist.(*m3u8.MediaPlaylist)
		if !ok {
			return nil
		}
		count := 0
		for _, seg := range media.Segments {
			if seg == nil {
				break
			}
			count++
		}
		return &PlaylistInfo{
			IsMaster:       false,
			IsLive:         !media.Closed,
			TargetDuration: media.TargetDuration,
			SegmentCount:   count,
		}
	}

	return nil
}
