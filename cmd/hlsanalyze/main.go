// The hlsanalyze command analyzes HLS manifests and media files and merges
// the results into a shared JSON output document.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Crisafulli-2/hls-analysis-ffmpeg/config"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/logging"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/output"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/probe"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream"
	"github.com/Crisafulli-2/hls-analysis-ffmpeg/stream/hls"
)

const version = "1.0.0"

func main() {
	var (
		configPath  = flag.String("config", "config.json", "Path to the configuration file")
		input       = flag.String("input", "", "Manifest URL/path or media file to analyze (overrides config)")
		outputPath  = flag.String("output", "", "Output document path (overrides config)")
		format      = flag.String("format", "json", "Stdout format: json, yaml, csv or table")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Show version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hlsanalyze - HLS manifest and media analyzer v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [input]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  [input]    Manifest URL/path (.m3u8) or media file (.mp4, .mpeg, .ts)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s https://example.com/live/playlist.m3u8\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config config.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format table video.mp4\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hlsanalyze v%s\n", version)
		os.Exit(0)
	}

	if *verbose {
		logging.SetGlobalLogger(logging.NewLoggerWithLevel("debug"))
	}

	if err := run(*configPath, *input, flag.Arg(0), *outputPath, *format); err != nil {
		logging.Error(err, "analysis failed")
		os.Exit(1)
	}
}

func run(configPath, inputFlag, inputArg, outputFlag, format string) error {
	appConfig, err := loadConfig(configPath, inputFlag != "" || inputArg != "")
	if err != nil {
		return err
	}

	location := firstNonEmpty(inputFlag, inputArg, appConfig.M3U8URL, appConfig.MediaFile)
	if location == "" {
		return fmt.Errorf("no input given: pass an input argument or set m3u8_url in %s", configPath)
	}

	outputPath := firstNonEmpty(outputFlag, appConfig.OutputPath)

	router := stream.NewRouterWithConfig(
		hls.ConfigFromAppConfig(appConfig.HLSSettings()),
		&probe.Config{
			FFprobePath: appConfig.FFprobePath,
			Timeout:     30 * time.Second,
		},
	)

	logging.Info("analyzing input", logging.Fields{"input": location})
	result, err := router.Analyze(context.Background(), location)
	if err != nil {
		return err
	}

	if err := output.MergeIntoFile(outputPath, result.Section, result.Data); err != nil {
		return err
	}
	logging.Info("results written", logging.Fields{
		"path":    outputPath,
		"section": result.Section,
	})

	return printResult(result.Data, format)
}

// loadConfig reads the config file. A missing file is only an error when
// the run depends on it for its input.
func loadConfig(configPath string, haveInput bool) (*config.AppConfig, error) {
	appConfig, err := config.Load(configPath)
	if err != nil {
		if !haveInput {
			return nil, err
		}
		logging.Debug("running without config file", logging.Fields{
			"path":  configPath,
			"error": err.Error(),
		})
		return config.Default(), nil
	}
	return appConfig, nil
}

func printResult(result any, format string) error {
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	encoded, err := formatter.Format(result, true)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	fmt.Println(string(encoded))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
