// Package stream routes analysis inputs to the appropriate handler. It acts
// as an orchestrator that delegates type-specific work to the hls and probe
// packages.
package stream

import (
	"context"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/probe"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/hls"
)

// Section keys under which each handler's result is merged into the
// output document.
const (
	SectionManifest = "manifest_analysis"
	SectionProbe    = "probe_metrics"
)

// Result is one handler's output, tagged with its document section
type Result struct {
	Section string
	Data    any
}

// Router dispatches inputs to the manifest analyzer or the media prober
// based on detected input type.
type Router struct {
	analyzer *hls.Analyzer
	prober   *probe.Prober
}

// NewRouter creates a router with default handler configurations
func NewRouter() *Router {
	return &Router{
		analyzer: hls.NewAnalyzer(),
		prober:   probe.NewProber(),
	}
}

// NewRouterWithConfig creates a router with custom handler configurations.
// A nil config selects that handler's defaults.
func NewRouterWithConfig(hlsConfig *hls.Config, probeConfig *probe.Config) *Router {
	router := NewRouter()
	if hlsConfig != nil {
		router.analyzer = hls.NewAnalyzerWithConfig(hlsConfig)
	}
	if probeConfig != nil {
		router.prober = probe.NewProberWithConfig(probeConfig)
	}
	return router
}

// DetectType classifies an input location
func (r *Router) DetectType(location string) common.StreamType {
	return hls.DetectInputType(location)
}

// Analyze detects the input type and runs the matching handler. Handler
// failures are reported inside the result data; an error return means the
// input type itself is unsupported.
func (r *Router) Analyze(ctx context.Context, location string) (*Result, error) {
	switch r.DetectType(location) {
	case common.StreamTypeHLS:
		return &Result{
			Section: SectionManifest,
			Data:    r.analyzer.Analyze(ctx, location),
		}, nil

	case common.StreamTypeMedia:
		return &Result{
			Section: SectionProbe,
			Data:    r.prober.Probe(ctx, location),
		}, nil

	default:
		return nil, common.NewStreamError(
			common.StreamTypeUnsupported, location, common.ErrCodeUnsupported,
			"unsupported input type", nil,
		)
	}
}
