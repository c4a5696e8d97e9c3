package hls

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
)

// StatusAllAvailable is reported when every segment responded with HTTP 200
const StatusAllAvailable = "All segments available"

// CheckResult holds the outcome of a segment reachability pass
type CheckResult struct {
	Status         string   `json:"status"`
	FailedSegments []string `json:"failed_segments"`
}

// SegmentChecker verifies reachability of segment references with one HEAD
// request per segment. Checks run strictly sequentially, so total latency
// scales linearly with segment count.
type SegmentChecker struct {
	client *http.Client
	config *Config
	logger logging.Logger
}

// NewSegmentChecker creates a checker with default configuration
func NewSegmentChecker() *SegmentChecker {
	return NewSegmentCheckerWithConfig(nil)
}

// NewSegmentCheckerWithConfig creates a checker with custom configuration
func NewSegmentCheckerWithConfig(config *Config) *SegmentChecker {
	if config == nil {
		config = DefaultConfig()
	}

	client := &http.Client{
		Timeout: config.HTTP.SegmentTimeout,
		Transport: &http.Transport{
			MaxIdleConns:    10,
			IdleConnTimeout: 30 * time.Second,
		},
	}

	return &SegmentChecker{
		client: client,
		config: config,
		logger: logging.GetGlobalLogger(),
	}
}

// SetLogger sets a custom logger
func (c *SegmentChecker) SetLogger(logger logging.Logger) {
	c.logger = logger
}

// Check probes every segment reference and accumulates the resolved URLs of
// segments that answered non-200 or errored. Relative references resolve
// against the directory portion of the manifest location.
func (c *SegmentChecker) Check(ctx context.Context, manifestLocation string, refs []string) *CheckResult {
	if max := c.config.Extractor.MaxSegmentChecks; max > 0 && len(refs) > max {
		c.logger.Warn("segment list truncated for reachability check", logging.Fields{
			"segments": len(refs),
			"max":      max,
		})
		refs = refs[:max]
	}

	failed := []string{}
	for _, ref := range refs {
		segmentURL := ResolveSegmentURL(manifestLocation, ref)
		if !c.isReachable(ctx, segmentURL) {
			failed = append(failed, segmentURL)
		}
	}

	status := StatusAllAvailable
	if len(failed) > 0 {
		status = fmt.Sprintf("%d segments unavailable", len(failed))
	}

	c.logger.Debug("segment reachability check complete", logging.Fields{
		"segments": len(refs),
		"failed":   len(failed),
	})

	return &CheckResult{
		Status:         status,
		FailedSegments: failed,
	}
}

// isReachable issues a single HEAD request. Anything other than HTTP 200
// counts as unreachable. No retries.
func (c *SegmentChecker) isReachable(ctx context.Context, segmentURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, segmentURL, nil)
	if err != nil {
		return false
	}

	for key, value := range c.config.GetHTTPHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		segErr := common.NewStreamError(common.StreamTypeHLS, segmentURL,
			common.ErrCodeSegment, "segment HEAD request failed", err)
		segErr.LogWith(c.logger)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// ResolveSegmentURL resolves a segment reference against the manifest's
// base path. Absolute references are returned unchanged.
func ResolveSegmentURL(manifestLocation, ref string) string {
	if common.IsValidURL(ref) {
		return ref
	}

	base, err := url.Parse(manifestLocation)
	if err != nil {
		return joinBasePath(manifestLocation, ref)
	}

	rel, err := url.Parse(ref)
	if err != nil {
		return joinBasePath(manifestLocation, ref)
	}

	return base.ResolveReference(rel).String()
}

// joinBasePath is the string fallback: directory portion of the manifest
// location plus the reference.
func joinBasePath(manifestLocation, ref string) string {
	if idx := strings.LastIndex(manifestLocation, "/"); idx != -1 {
		return manifestLocation[:idx+1] + ref
	}
	return ref
}
