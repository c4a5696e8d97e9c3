// Package config loads the application configuration file. The file is
// parsed as YAML, which also accepts the JSON config files earlier
// deployments used.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is where analysis results are merged when the config
// does not name a destination.
const DefaultOutputPath = "output/analysis_output.json"

// AppConfig is the application-level configuration
type AppConfig struct {
	// M3U8URL is the default manifest to analyze when no input is given
	// on the command line.
	M3U8URL string `json:"m3u8_url" yaml:"m3u8_url"`

	// MediaFile is an optional local media file to probe with ffprobe
	MediaFile string `json:"media_file" yaml:"media_file"`

	OutputPath  string `json:"output_path" yaml:"output_path"`
	FFprobePath string `json:"ffprobe_path" yaml:"ffprobe_path"`

	HTTP      HTTPOverrides      `json:"http" yaml:"http"`
	Extractor ExtractorOverrides `json:"extractor" yaml:"extractor"`
}

// HTTPOverrides adjusts manifest and segment request behavior
type HTTPOverrides struct {
	UserAgent             string            `json:"user_agent" yaml:"user_agent"`
	FetchTimeoutSeconds   int               `json:"fetch_timeout_seconds" yaml:"fetch_timeout_seconds"`
	SegmentTimeoutSeconds int               `json:"segment_timeout_seconds" yaml:"segment_timeout_seconds"`
	CustomHeaders         map[string]string `json:"custom_headers" yaml:"custom_headers"`
}

// ExtractorOverrides adjusts manifest parsing behavior
type ExtractorOverrides struct {
	SegmentExtension string `json:"segment_extension" yaml:"segment_extension"`
	MaxSegmentChecks int    `json:"max_segment_checks" yaml:"max_segment_checks"`
}

// Default returns the configuration used when no file is supplied
func Default() *AppConfig {
	return &AppConfig{
		OutputPath:  DefaultOutputPath,
		FFprobePath: "ffprobe",
	}
}

// Load reads and parses the configuration file at path
func Load(path string) (*AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	appConfig := Default()
	if err := yaml.Unmarshal(raw, appConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if appConfig.OutputPath == "" {
		appConfig.OutputPath = DefaultOutputPath
	}
	if appConfig.FFprobePath == "" {
		appConfig.FFprobePath = "ffprobe"
	}

	return appConfig, nil
}

// HLSSettings converts the overrides into the settings map the analysis
// library consumes. Zero values are omitted so library defaults apply.
func (c *AppConfig) HLSSettings() map[string]any {
	httpSettings := make(map[string]any)
	if c.HTTP.UserAgent != "" {
		httpSettings["user_agent"] = c.HTTP.UserAgent
	}
	if c.HTTP.FetchTimeoutSeconds > 0 {
		httpSettings["fetch_timeout"] = time.Duration(c.HTTP.FetchTimeoutSeconds) * time.Second
	}
	if c.HTTP.SegmentTimeoutSeconds > 0 {
		httpSettings["segment_timeout"] = time.Duration(c.HTTP.SegmentTimeoutSeconds) * time.Second
	}
	if len(c.HTTP.CustomHeaders) > 0 {
		httpSettings["custom_headers"] = c.HTTP.CustomHeaders
	}

	extractorSettings := make(map[string]any)
	if c.Extractor.SegmentExtension != "" {
		extractorSettings["segment_extension"] = c.Extractor.SegmentExtension
	}
	if c.Extractor.MaxSegmentChecks > 0 {
		extractorSettings["max_segment_checks"] = c.Extractor.MaxSegmentChecks
	}

	return map[string]any{
		"http":      httpSettings,
		"extractor": extractorSettings,
	}
}
