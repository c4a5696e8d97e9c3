package hls

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/common"
)

// Loader retrieves raw manifest text from a URL or a local path.
// Remote fetches are a single attempt with a bounded timeout; there
// are no retries.
type Loader struct {
	client *http.Client
	config *Config
	logger logging.Logger
}

// NewLoader creates a loader with default configuration
func NewLoader() *Loader {
	return NewLoaderWithConfig(nil)
}

// NewLoaderWithConfig creates a loader with custom configuration
func NewLoaderWithConfig(config *Config) *Loader {
	if config == nil {
		config = DefaultConfig()
	}

	client := &http.Client{
		Timeout: config.HTTP.FetchTimeout,
		Transport: &http.Transport{
			MaxIdleConns:    10,
			IdleConnTimeout: 30 * time.Second,
		},
	}

	return &Loader{
		client: client,
		config: config,
		logger: logging.GetGlobalLogger(),
	}
}

// SetLogger sets a custom logger
func (l *Loader) SetLogger(logger logging.Logger) {
	l.logger = logger
}

// Load returns the manifest text for the given location. A location with
// a network-scheme prefix is fetched over HTTP, anything else is read
// from the local filesystem.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	if common.IsValidURL(location) {
		return l.fetchRemote(ctx, location)
	}
	return l.readLocal(location)
}

func (l *Loader) fetchRemote(ctx context.Context, manifestURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.config.HTTP.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return "", common.NewStreamError(common.StreamTypeHLS, manifestURL,
			common.ErrCodeConnection, "failed to create manifest request", err)
	}

	for key, value := range l.config.GetHTTPHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		code := common.ErrCodeConnection
		if errors.Is(err, context.DeadlineExceeded) {
			code = common.ErrCodeTimeout
		}
		return "", common.NewStreamError(common.StreamTypeHLS, manifestURL,
			code, "failed to fetch manifest", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", common.NewStreamErrorWithFields(common.StreamTypeHLS, manifestURL,
			common.ErrCodeConnection, fmt.Sprintf("failed to fetch manifest: HTTP %d", resp.StatusCode), nil,
			logging.Fields{"status_code": resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", common.NewStreamError(common.StreamTypeHLS, manifestURL,
			common.ErrCodeConnection, "failed to read manifest body", err)
	}

	l.logger.Debug("fetched manifest", logging.Fields{
		"url":          manifestURL,
		"bytes":        len(body),
		"content_type": common.ExtractContentType(resp.Header.Get("Content-Type")),
	})

	return string(body), nil
}

func (l *Loader) readLocal(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", common.NewStreamError(common.StreamTypeHLS, path,
				common.ErrCodeNotFound, fmt.Sprintf("file not found: %s", path), nil)
		}
		return "", common.NewStreamError(common.StreamTypeHLS, path,
			common.ErrCodeConnection, "failed to read manifest file", err)
	}

	l.logger.Debug("read local manifest", logging.Fields{
		"path":  path,
		"bytes": len(content),
	})

	return string(content), nil
}

// GetClient returns the HTTP client used for manifest fetches
func (l *Loader) GetClient() *http.Client {
	return l.client
}
