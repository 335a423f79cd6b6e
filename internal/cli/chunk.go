package cli

import (
	"fmt"
	"strings"

	"github.com/mgpai22/svb2json/internal/chunk"
	"github.com/spf13/cobra"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk2tokens [file]",
	Short: "Split a file into token-bounded chunks",
	Long: `Split a JSON or text file into chunks that each stay under a token
budget, preserving structure: JSON arrays split by element, JSON
objects by top-level key, and plain text by line.

Chunks are written next to the input file (or into the output
directory) as {stem}-{index}{ext}.

Examples:
  chunk2tokens input.json -t 800 -m GPT5
  chunk2tokens data.txt -t 1000 -m GPT-4
  chunk2tokens file.json -t 500 -m GPT-3.5 -o chunks/`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: setupLogging,
	RunE:             runChunk,
}

func init() {
	chunkCmd.Flags().IntP("tokens", "t", 800, "Maximum tokens per chunk")
	chunkCmd.Flags().StringP("model", "m", chunk.DefaultModel,
		"LLM model for token counting (GPT-3.5, GPT-4, GPT-4O, GPT5, GPT-3, CODEX)")
	chunkCmd.Flags().StringP("output", "o", "",
		"Output directory for chunks (default: same as input file)")
	chunkCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}

// ExecuteChunk runs the chunk2tokens command.
func ExecuteChunk() error {
	return chunkCmd.Execute()
}

func runChunk(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	maxTokens, _ := cmd.Flags().GetInt("tokens")
	model, _ := cmd.Flags().GetString("model")
	outputDir, _ := cmd.Flags().GetString("output")

	if !chunk.IsKnownModel(model) {
		return fmt.Errorf(
			"unknown model %q: use one of %s",
			model, strings.Join(chunk.Models(), ", "),
		)
	}

	if err := checkInputFile(inputPath); err != nil {
		return err
	}

	fmt.Printf("Chunking %q with max %d tokens (%s)...\n",
		inputPath, maxTokens, model)

	counter := chunk.NewTokenCounter(model)
	chunks, ext, err := chunk.ChunkFile(inputPath, maxTokens, counter)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d chunk(s)\n", len(chunks))

	paths, err := chunk.WriteChunks(chunks, inputPath, outputDir, ext)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Printf("Created: %s\n", path)
	}

	fmt.Printf("\nSuccessfully created %d file(s)\n", len(paths))
	return nil
}
