package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mgpai22/svb2json/internal/subtitle"
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "svb2json [sbv_file]",
	Short: "Convert YouTube SBV subtitles to JSON",
	Long: `Convert a YouTube SBV subtitle file to a JSON array of entries.

Each entry carries a sequential id, start and end timestamps, and the
subtitle text. Adjacent short entries can be merged into coarser
timeframes before output.

Examples:
  svb2json captions.sbv
  svb2json captions.sbv -o captions.json --indent 4
  svb2json captions.sbv -s -m 12
  svb2json captions.sbv -f HH:MM:SS.Mi`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: setupLogging,
	RunE:             runJSON,
}

func init() {
	registerConverterFlags(jsonCmd)
	jsonCmd.Flags().Int("indent", 2, "JSON indentation level")
}

// ExecuteJSON runs the svb2json command.
func ExecuteJSON() error {
	return jsonCmd.Execute()
}

func runJSON(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	indent, _ := cmd.Flags().GetInt("indent")
	useSeconds, _ := cmd.Flags().GetBool("seconds")
	formatStr, _ := cmd.Flags().GetString("format")

	if indent < 0 {
		return fmt.Errorf("indent must be non-negative, got %d", indent)
	}

	format, err := subtitle.ParseTimeFormat(formatStr)
	if err != nil {
		return err
	}

	entries, err := loadEntries(cmd, inputPath)
	if err != nil {
		return err
	}

	output, err := renderJSON(entries, format, useSeconds, indent)
	if err != nil {
		return err
	}

	return writeOutput(output, outputPath)
}

// JSON projection of an entry; Start/End are integers for raw
// milliseconds and formatted strings otherwise.
type jsonEntry struct {
	ID    int    `json:"id"`
	Start any    `json:"start"`
	End   any    `json:"end"`
	Text  string `json:"text"`
}

func renderJSON(
	entries []subtitle.Entry,
	format subtitle.TimeFormat,
	useSeconds bool,
	indent int,
) (string, error) {
	records := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		start, err := formatValue(e.Start, format, useSeconds)
		if err != nil {
			return "", err
		}
		end, err := formatValue(e.End, format, useSeconds)
		if err != nil {
			return "", err
		}
		records = append(records, jsonEntry{
			ID:    e.ID,
			Start: start,
			End:   end,
			Text:  e.Text,
		})
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", indent))
	if err := encoder.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	return buf.String(), nil
}
