package common

// StreamType represents the kind of input handed to the analyzer
// ('hls' manifest, 'media' file for probing, 'unsupported')
type StreamType string

const (
	StreamTypeHLS         StreamType = "hls"
	StreamTypeMedia       StreamType = "media"
	StreamTypeUnsupported StreamType = "unsupported"
)
