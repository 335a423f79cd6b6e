package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/svb2json/internal/logging"
	"github.com/mgpai22/svb2json/internal/subtitle"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

func setupLogging(cmd *cobra.Command, args []string) {
	logger = logging.NewLogger(verbose)
}

// checks that path names an existing regular file
func checkInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to access input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("not a file: %s", path)
	}
	return nil
}

// loadEntries reads and parses an SBV file, applying the shared
// seconds/merge/strict converter flags.
func loadEntries(cmd *cobra.Command, path string) ([]subtitle.Entry, error) {
	useSeconds, _ := cmd.Flags().GetBool("seconds")
	mergeDuration, _ := cmd.Flags().GetInt64("merge")
	strict, _ := cmd.Flags().GetBool("strict")

	if cmd.Flags().Changed("merge") && mergeDuration <= 0 {
		return nil, fmt.Errorf(
			"merge duration must be positive, got %d", mergeDuration,
		)
	}

	if err := checkInputFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	entries, err := subtitle.Parse(string(data), useSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if strict {
		if err := subtitle.Validate(entries); err != nil {
			return nil, fmt.Errorf("invalid subtitle sequence: %w", err)
		}
	}

	if mergeDuration > 0 {
		before := len(entries)
		entries = subtitle.Merge(entries, mergeDuration, useSeconds)
		logger.Infow("Merged entries",
			"target_seconds", mergeDuration,
			"before", before,
			"after", len(entries),
		)
	}

	return entries, nil
}

// formatValue renders a timestamp for output. Raw milliseconds stay
// plain integers; seconds-mode values are scaled back to milliseconds
// before formatting.
func formatValue(
	value int64,
	format subtitle.TimeFormat,
	useSeconds bool,
) (any, error) {
	ms := value
	if useSeconds {
		ms = value * 1000
	}
	if format == subtitle.FormatMillis {
		return ms, nil
	}
	return subtitle.FormatTimestamp(ms, format)
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(content, path string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func registerConverterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolP("seconds", "s", false,
		"Round timestamps to whole seconds and output in seconds instead of milliseconds")
	cmd.Flags().Int64P("merge", "m", 0,
		"Merge subtitles into timeframes of the given duration in seconds")
	cmd.Flags().StringP("format", "f", string(subtitle.FormatClock),
		"Timestamp format (HH:MM:SS.Mi, HH:MM:SS, HH:MM, SS, MM, Mi)")
	cmd.Flags().Bool("strict", false,
		"Reject out-of-order or overlapping entries")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
