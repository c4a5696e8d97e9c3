package hls

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
)

// variantPattern matches EXT-X-STREAM-INF entries with the fixed attribute
// order the original analyzer relied on. Variants declared with a different
// attribute layout are intentionally not matched.
var variantPattern = regexp.MustCompile(
	`#EXT-X-STREAM-INF:BANDWIDTH=(\d+),CODECS="([^"]+)",RESOLUTION=(\d+x\d+),FRAME-RATE=(\d+),VIDEO-RANGE=(\w+)`)

// Extractor pulls stream-variant attributes and segment references out of
// raw manifest text using pattern matching. It is not a playlist parser.
type Extractor struct {
	config *ExtractorConfig
}

// NewExtractor creates an extractor with default configuration
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(nil)
}

// NewExtractorWithConfig creates an extractor with custom configuration
func NewExtractorWithConfig(config *ExtractorConfig) *Extractor {
	if config == nil {
		config = DefaultConfig().Extractor
	}
	return &Extractor{config: config}
}

// ExtractVariants returns every stream variant declared in the manifest
// that matches the fixed pattern, in declaration order.
func (e *Extractor) ExtractVariants(content string) []ManifestVariant {
	matches := variantPattern.FindAllStringSubmatch(content, -1)

	variants := make([]ManifestVariant, 0, len(matches))
	for _, match := range matches {
		bandwidth, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		variants = append(variants, ManifestVariant{
			Bandwidth:  bandwidth,
			Codecs:     match[2],
			Resolution: match[3],
			FrameRate:  match[4],
			VideoRange: match[5],
		})
	}

	return variants
}

// ExtractSegments returns all segment references: non-comment lines ending
// in the configured segment extension. RE2 has no lookaround, so comment
// lines are skipped explicitly rather than in the pattern.
func (e *Extractor) ExtractSegments(content string) []string {
	var refs []string

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, e.config.SegmentExtension) {
			refs = append(refs, line)
		}
	}

	return refs
}

// Summarize aggregates variant bandwidths into Mbps statistics. Extrema are
// rounded to 3 decimal places and the average to 4, matching the observed
// behavior of the original analyzer. Returns nil for an empty variant list.
func (e *Extractor) Summarize(variants []ManifestVariant) *BitrateSummary {
	if len(variants) == 0 {
		return nil
	}

	highest := variants[0].Bandwidth
	lowest := variants[0].Bandwidth
	total := 0

	for _, variant := range variants {
		if variant.Bandwidth > highest {
			highest = variant.Bandwidth
		}
		if variant.Bandwidth < lowest {
			lowest = variant.Bandwidth
		}
		total += variant.Bandwidth
	}

	average := float64(total) / float64(len(variants))

	return &BitrateSummary{
		Highest: common.RoundTo(float64(highest)/1_000_000, 3),
		Average: common.RoundTo(average/1_000_000, 4),
		Lowest:  common.RoundTo(float64(lowest)/1_000_000, 3),
	}
}
