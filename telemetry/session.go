// Package telemetry reports live playback metrics from a platform access
// log. The set of metrics a platform actually exposes varies between
// framework versions, so a session probes a known finite list of optional
// fields and treats the subset that returns values as its effective schema
// for the run.
package telemetry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
)

// KnownMetrics is the finite list of optional access-log fields a session
// probes. Field names follow the platform log's own naming.
var KnownMetrics = []string{
	// Bitrate metrics
	"indicatedBitrate", "observedBitrate", "averageVideoBitrate",
	"averageAudioBitrate",
	// Duration metrics
	"durationWatched", "transferDuration", "startupTime",
	// Stats metrics
	"numberOfSegmentsDownloaded", "numberOfBytesTransferred",
	"numberOfStalls", "numberOfServerAddressChanges",
	"numberOfMediaRequests", "numberOfDroppedVideoFrames",
	// Segment metrics
	"segmentsDownloadedDuration",
	// Server metrics
	"serverAddress", "playbackSessionID",
}

// AccessLog is the platform playback log a session reads metrics from.
// Implementations return ok=false for fields the platform does not expose.
type AccessLog interface {
	Metric(name string) (any, bool)
}

// Event is one entry in the playback event timeline
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Playback event types
const (
	EventPlay  = "play"
	EventPause = "pause"
)

// Session owns the telemetry for one playback run. It is created with an
// explicit source and disposed with Close; there is no process-wide
// registry and no signal handling.
type Session struct {
	mu sync.Mutex

	source  AccessLog
	metrics map[string]any
	events  []Event
	started time.Time
	closed  bool
	logger  logging.Logger
}

// NewSession creates a telemetry session reading from the given access log
func NewSession(source AccessLog) (*Session, error) {
	if source == nil {
		return nil, common.NewStreamError(common.StreamTypeMedia, "",
			common.ErrCodeUnsupported, "telemetry source must not be nil", nil)
	}

	return &Session{
		source:  source,
		metrics: make(map[string]any),
		started: time.Now(),
		logger: logging.WithFields(logging.Fields{
			"component": "telemetry_session",
		}),
	}, nil
}

// SetLogger sets a custom logger
func (s *Session) SetLogger(logger logging.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// Poll probes every known metric against the source and retains those that
// return a value. Values refresh on every poll; a field that stops
// reporting keeps its last observed value.
func (s *Session) Poll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return common.NewStreamError(common.StreamTypeMedia, "",
			common.ErrCodeUnsupported, "session is closed", nil)
	}

	discovered := 0
	for _, name := range KnownMetrics {
		if value, ok := s.source.Metric(name); ok {
			if _, seen := s.metrics[name]; !seen {
				discovered++
			}
			s.metrics[name] = value
		}
	}

	if discovered > 0 {
		s.logger.Debug("discovered playback metrics", logging.Fields{
			"new_fields":   discovered,
			"total_fields": len(s.metrics),
		})
	}

	return nil
}

// RecordPlay appends a play event to the timeline
func (s *Session) RecordPlay() {
	s.recordEvent(EventPlay)
}

// RecordPause appends a pause event to the timeline
func (s *Session) RecordPause() {
	s.recordEvent(EventPause)
}

func (s *Session) recordEvent(eventType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.events = append(s.events, Event{
		Type:      eventType,
		Timestamp: time.Now(),
	})
}

// AvailableMetrics returns the session's effective schema: the sorted names
// of every metric the source has reported so far.
func (s *Session) AvailableMetrics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.metrics))
	for name := range s.metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Snapshot returns the retained metrics plus the event timeline and session
// duration, ready for JSON serialization.
func (s *Session) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]any, len(s.metrics)+3)
	for name, value := range s.metrics {
		snapshot[name] = value
	}

	playEvents := make([]Event, 0)
	pauseEvents := make([]Event, 0)
	for _, event := range s.events {
		switch event.Type {
		case EventPlay:
			playEvents = append(playEvents, event)
		case EventPause:
			pauseEvents = append(pauseEvents, event)
		}
	}

	snapshot["play_events"] = playEvents
	snapshot["pause_events"] = pauseEvents
	snapshot["session_duration"] = common.FormatDuration(time.Since(s.started))

	return snapshot
}

// Close disposes the session. It is idempotent; polling and event
// recording are rejected afterwards while snapshots remain readable.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.logger.Debug("telemetry session closed", logging.Fields{
		"fields": len(s.metrics),
		"events": len(s.events),
		"uptime": fmt.Sprintf("%.1fs", time.Since(s.started).Seconds()),
	})

	return nil
}
