package hls

import (
	"maps"
	"strings"
	"time"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
)

// Config holds configuration for HLS manifest analysis
type Config struct {
	HTTP      *HTTPConfig      `json:"http" yaml:"http"`
	Extractor *ExtractorConfig `json:"extractor" yaml:"extractor"`
}

// HTTPConfig holds HTTP-related configuration
type HTTPConfig struct {
	UserAgent      string            `json:"user_agent" yaml:"user_agent"`
	AcceptHeader   string            `json:"accept_header" yaml:"accept_header"`
	FetchTimeout   time.Duration     `json:"fetch_timeout" yaml:"fetch_timeout"`
	SegmentTimeout time.Duration     `json:"segment_timeout" yaml:"segment_timeout"`
	CustomHeaders  map[string]string `json:"custom_headers" yaml:"custom_headers"`
}

// ExtractorConfig holds configuration for pattern extraction
type ExtractorConfig struct {
	// SegmentExtension is the suffix that marks a line as a segment reference
	SegmentExtension string `json:"segment_extension" yaml:"segment_extension"`

	// MaxSegmentChecks caps how many segment references are probed (0 = all)
	MaxSegmentChecks int `json:"max_segment_checks" yaml:"max_segment_checks"`
}

// DefaultConfig returns the default analysis configuration
func DefaultConfig() *Config {
	return &Config{
		HTTP: &HTTPConfig{
			UserAgent:      "hls-analysis-ffmpeg/1.0",
			AcceptHeader:   "application/vnd.apple.mpegurl,application/x-mpegurl,text/plain",
			FetchTimeout:   10 * time.Second,
			SegmentTimeout: 5 * time.Second,
			CustomHeaders:  make(map[string]string),
		},
		Extractor: &ExtractorConfig{
			SegmentExtension: ".ts",
			MaxSegmentChecks: 0,
		},
	}
}

// GetHTTPHeaders returns all HTTP headers that should be set for requests
func (c *Config) GetHTTPHeaders() map[string]string {
	headers := make(map[string]string)

	headers["User-Agent"] = c.HTTP.UserAgent
	headers["Accept"] = c.HTTP.AcceptHeader

	maps.Copy(headers, c.HTTP.CustomHeaders)

	return headers
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.HTTP == nil || c.Extractor == nil {
		return common.NewStreamError(common.StreamTypeHLS, "",
			common.ErrCodeUnsupported, "configuration sections must not be nil", nil)
	}
	if c.HTTP.FetchTimeout <= 0 {
		return common.NewStreamError(common.StreamTypeHLS, "",
			common.ErrCodeUnsupported, "fetch timeout must be positive", nil)
	}
	if c.HTTP.SegmentTimeout <= 0 {
		return common.NewStreamError(common.StreamTypeHLS, "",
			common.ErrCodeUnsupported, "segment timeout must be positive", nil)
	}
	if !strings.HasPrefix(c.Extractor.SegmentExtension, ".") {
		return common.NewStreamError(common.StreamTypeHLS, "",
			common.ErrCodeUnsupported, "segment extension must start with a dot", nil)
	}
	if c.Extractor.MaxSegmentChecks < 0 {
		return common.NewStreamError(common.StreamTypeHLS, "",
			common.ErrCodeUnsupported, "max segment checks cannot be negative", nil)
	}
	return nil
}

// ConfigFromAppConfig creates an HLS config from application config values.
// This keeps the analysis library standalone while integrating with the CLI.
func ConfigFromAppConfig(appConfig map[string]any) *Config {
	config := DefaultConfig()

	if httpCfg, ok := appConfig["http"].(map[string]any); ok {
		if userAgent, ok := httpCfg["user_agent"].(string); ok && userAgent != "" {
			config.HTTP.UserAgent = userAgent
		}
		if fetchTimeout, ok := httpCfg["fetch_timeout"].(time.Duration); ok {
			config.HTTP.FetchTimeout = fetchTimeout
		}
		if segmentTimeout, ok := httpCfg["segment_timeout"].(time.Duration); ok {
			config.HTTP.SegmentTimeout = segmentTimeout
		}
		if headers, ok := httpCfg["custom_headers"].(map[string]string); ok {
			config.HTTP.CustomHeaders = headers
		}
	}

	if extractorCfg, ok := appConfig["extractor"].(map[string]any); ok {
		if ext, ok := extractorCfg["segment_extension"].(string); ok && ext != "" {
			config.Extractor.SegmentExtension = ext
		}
		if maxChecks, ok := extractorCfg["max_segment_checks"].(int); ok {
			config.Extractor.MaxSegmentChecks = maxChecks
		}
	}

	return config
}
