package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
)

// MergeIntoFile merges a result under the given section key of the JSON
// document at path. Other sections are preserved; an absent or corrupt
// document is replaced with a fresh one.
func MergeIntoFile(path, section string, value any) error {
	document := make(map[string]any)

	existing, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(existing, &document); err != nil {
			logging.Warn("existing output document is not valid JSON, starting fresh", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			document = make(map[string]any)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read output document: %w", err)
	}

	document[section] = value

	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write output document: %w", err)
	}

	logging.Debug("merged section into output document", logging.Fields{
		"path":    path,
		"section": section,
	})

	return nil
}

// WriteFormatted serializes data with the named format and writes it to
// path, creating the parent directory if needed.
func WriteFormatted(path, format string, data any) error {
	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}

	encoded, err := formatter.Format(data, true)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
