// Package probe invokes the external ffprobe tool on local media files and
// reports stream metadata from its JSON output. The tool is treated as a
// black box; only the fields the analyzer needs are decoded.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
)

// UnknownValue is reported when ffprobe omits a field
const UnknownValue = "unknown"

// Config holds configuration for media probing
type Config struct {
	// FFprobePath is the binary name or path handed to exec
	FFprobePath string `json:"ffprobe_path" yaml:"ffprobe_path"`

	// Timeout bounds a single ffprobe invocation
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultConfig returns the default probing configuration
func DefaultConfig() *Config {
	return &Config{
		FFprobePath: "ffprobe",
		Timeout:     30 * time.Second,
	}
}

// Result is the flat outcome of one probe. A non-empty Error is the sole
// failure signal; bitrate and frame rate are never partially populated
// alongside it.
type Result struct {
	AverageBitrate string `json:"average_bitrate,omitempty"`
	FrameRate      string `json:"frame_rate,omitempty"`
	Error          string `json:"error,omitempty"`
}

// ffprobeOutput mirrors the subset of ffprobe's -print_format json output
// the analyzer consumes
type ffprobeOutput struct {
	Streams []struct {
		BitRate      string `json:"bit_rate"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
}

// Prober runs ffprobe on local media files
type Prober struct {
	config *Config
	logger logging.Logger
}

// NewProber creates a prober with default configuration
func NewProber() *Prober {
	return NewProberWithConfig(nil)
}

// NewProberWithConfig creates a prober with custom configuration
func NewProberWithConfig(config *Config) *Prober {
	if config == nil {
		config = DefaultConfig()
	}
	return &Prober{
		config: config,
		logger: logging.GetGlobalLogger(),
	}
}

// SetLogger sets a custom logger
func (p *Prober) SetLogger(logger logging.Logger) {
	p.logger = logger
}

// Available reports whether the configured ffprobe binary can be found
func (p *Prober) Available() error {
	if _, err := exec.LookPath(p.config.FFprobePath); err != nil {
		return fmt.Errorf("ffprobe not available: %w", err)
	}
	return nil
}

// Probe analyzes bitrate and frame rate of a local media file. Any failure
// of the subprocess or its output decoding is reduced to a Result whose
// Error field is the sole failure signal.
func (p *Prober) Probe(ctx context.Context, inputFile string) *Result {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	output, err := p.run(ctx, inputFile)
	if err != nil {
		p.logger.Error(err, "ffprobe invocation failed", logging.Fields{
			"input": inputFile,
		})
		return &Result{Error: fmt.Sprintf("bitrate analysis failed: %v", err)}
	}

	result, err := parseOutput(output)
	if err != nil {
		p.logger.Error(err, "ffprobe output unusable", logging.Fields{
			"input": inputFile,
		})
		return &Result{Error: fmt.Sprintf("bitrate analysis failed: %v", err)}
	}

	p.logger.Debug("media probe complete", logging.Fields{
		"input":      inputFile,
		"bitrate":    result.AverageBitrate,
		"frame_rate": result.FrameRate,
	})

	return result
}

func (p *Prober) run(ctx context.Context, inputFile string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, p.config.FFprobePath, buildArgs(inputFile)...)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return nil, err
	}

	return output, nil
}

// buildArgs assembles the ffprobe command line for video stream metadata
func buildArgs(inputFile string) []string {
	return []string{
		"-i", inputFile,
		"-select_streams", "v",
		"-show_entries", "stream=bit_rate,avg_frame_rate",
		"-show_format",
		"-print_format", "json",
	}
}

// parseOutput decodes ffprobe JSON and extracts the first video stream's
// bit rate and average frame rate, substituting the unknown sentinel for
// missing fields.
func parseOutput(output []byte) (*Result, error) {
	var decoded ffprobeOutput
	if err := json.Unmarshal(output, &decoded); err != nil {
		return nil, fmt.Errorf("invalid ffprobe output: %w", err)
	}

	if len(decoded.Streams) == 0 {
		return nil, fmt.Errorf("no video streams found")
	}

	stream := decoded.Streams[0]
	result := &Result{
		AverageBitrate: stream.BitRate,
		FrameRate:      stream.AvgFrameRate,
	}

	if result.AverageBitrate == "" {
		result.AverageBitrate = UnknownValue
	}
	if result.FrameRate == "" {
		result.FrameRate = UnknownValue
	}

	return result, nil
}
