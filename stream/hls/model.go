package hls

// ManifestVariant represents one stream-variant entry parsed from an
// EXT-X-STREAM-INF line. Variants are immutable once parsed and are
// discarded after aggregation into a Report.
type ManifestVariant struct {
	Bandwidth  int    `json:"bandwidth"`
	Codecs     string `json:"codecs"`
	Resolution string `json:"resolution"`
	FrameRate  string `json:"frame_rate"`
	VideoRange string `json:"video_range"`
}

// BitrateSummary holds aggregated bitrate statistics in Mbps.
// Extrema are rounded to 3 decimal places, the average to 4. The
// asymmetry is preserved from the original analyzer on purpose.
type BitrateSummary struct {
	Highest float64 `json:"highest"`
	Average float64 `json:"average"`
	Lowest  float64 `json:"lowest"`
}

// PlaylistInfo carries best-effort structural classification of a manifest
type PlaylistInfo struct {
	IsMaster       bool    `json:"is_master"`
	IsLive         bool    `json:"is_live"`
	TargetDuration float64 `json:"target_duration,omitempty"`
	VariantCount   int     `json:"variant_count"`
	SegmentCount   int     `json:"segment_count"`
}

// Report is the flat result of one manifest analysis. A non-empty Error
// is the sole failure signal: when it is set no other field is populated.
type Report struct {
	HighestBitrateMbps float64 `json:"highest_bitrate_mbps,omitempty"`
	AverageBitrateMbps float64 `json:"average_bitrate_mbps,omitempty"`
	LowestBitrateMbps  float64 `json:"lowest_bitrate_mbps,omitempty"`

	// Codec, resolution, frame rate and dynamic range are taken from the
	// first matched variant only. Multi-variant detail is discarded.
	Codec      string `json:"codec,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	FrameRate  string `json:"frame_rate,omitempty"`
	VideoRange string `json:"video_range,omitempty"`

	NetworkCheck   string   `json:"network_check,omitempty"`
	FailedSegments []string `json:"failed_segments,omitempty"`

	Playlist *PlaylistInfo `json:"playlist,omitempty"`

	Error string `json:"error,omitempty"`
}
