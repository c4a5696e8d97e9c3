package hls

import (
	"context"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
)

// ErrMsgNoStreamInfo is the recognized terminal outcome for manifests that
// declare no matching stream variants. It is a result, not a fault.
const ErrMsgNoStreamInfo = "no stream information found in the manifest"

// Analyzer runs the full manifest analysis routine: load, extract,
// aggregate, and segment reachability. All failures are converted at
// this boundary into a Report carrying a single error string.
type Analyzer struct {
	loader    *Loader
	extractor *Extractor
	checker   *SegmentChecker
	config    *Config
	logger    logging.Logger
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(nil)
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}

	return &Analyzer{
		loader:    NewLoaderWithConfig(config),
		extractor: NewExtractorWithConfig(config.Extractor),
		checker:   NewSegmentCheckerWithConfig(config),
		config:    config,
		logger:    logging.GetGlobalLogger(),
	}
}

// SetLogger sets a custom logger on the analyzer and its collaborators
func (a *Analyzer) SetLogger(logger logging.Logger) {
	a.logger = logger
	a.loader.SetLogger(logger)
	a.checker.SetLogger(logger)
}

// Analyze runs manifest analysis for the given location (URL or path).
// It never fails outright: any error is reduced to a Report whose Error
// field is the sole failure signal.
func (a *Analyzer) Analyze(ctx context.Context, location string) *Report {
	logger := a.logger.WithFields(logging.Fields{
		"component": "hls_analyzer",
		"location":  location,
	})

	content, err := a.loader.Load(ctx, location)
	if err != nil {
		logger.Error(err, "manifest load failed")
		return &Report{Error: err.Error()}
	}

	variants := a.extractor.ExtractVariants(content)
	if len(variants) == 0 {
		logger.Warn("no stream variants matched")
		return &Report{Error: ErrMsgNoStreamInfo}
	}

	summary := a.extractor.Summarize(variants)
	first := variants[0]

	report := &Report{
		HighestBitrateMbps: summary.Highest,
		AverageBitrateMbps: summary.Average,
		LowestBitrateMbps:  summary.Lowest,
		Codec:              first.Codecs,
		Resolution:         first.Resolution,
		FrameRate:          first.FrameRate,
		VideoRange:         first.VideoRange,
		Playlist:           ClassifyPlaylist(content),
	}

	refs := a.extractor.ExtractSegments(content)
	check := a.checker.Check(ctx, location, refs)
	report.NetworkCheck = check.Status
	report.FailedSegments = check.FailedSegments

	logger.Debug("manifest analysis complete", logging.Fields{
		"variants":        len(variants),
		"segments":        len(refs),
		"failed_segments": len(check.FailedSegments),
	})

	return report
}

// GetConfig returns the analyzer's configuration
func (a *Analyzer) GetConfig() *Config {
	return a.config
}
