package cli

import (
	"fmt"
	"strings"

	"github.com/mgpai22/svb2json/internal/subtitle"
	"github.com/spf13/cobra"
)

var txtCmd = &cobra.Command{
	Use:   "svb2txt [sbv_file]",
	Short: "Convert YouTube SBV subtitles to plain text",
	Long: `Convert a YouTube SBV subtitle file to plain text, one entry per
line as "[start–end] text".

Examples:
  svb2txt captions.sbv
  svb2txt captions.sbv -o captions.txt
  svb2txt captions.sbv -s -m 12 -f SS`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: setupLogging,
	RunE:             runTxt,
}

func init() {
	registerConverterFlags(txtCmd)
}

// ExecuteTxt runs the svb2txt command.
func ExecuteTxt() error {
	return txtCmd.Execute()
}

func runTxt(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	useSeconds, _ := cmd.Flags().GetBool("seconds")
	formatStr, _ := cmd.Flags().GetString("format")

	format, err := subtitle.ParseTimeFormat(formatStr)
	if err != nil {
		return err
	}

	entries, err := loadEntries(cmd, inputPath)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line, err := formatEntryLine(e, format, useSeconds)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	return writeOutput(strings.Join(lines, "\n")+"\n", outputPath)
}

// formatEntryLine renders one entry as "[start–end] text".
func formatEntryLine(
	e subtitle.Entry,
	format subtitle.TimeFormat,
	useSeconds bool,
) (string, error) {
	start, err := formatValue(e.Start, format, useSeconds)
	if err != nil {
		return "", err
	}
	end, err := formatValue(e.End, format, useSeconds)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%v–%v] %s", start, end, e.Text), nil
}
