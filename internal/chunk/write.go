package chunk

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteChunks writes each chunk to {stem}-{index}{ext} next to the
// input file, or inside outputDir when given (created if needed).
// Indexes start at 1 and are zero-padded to the digit width of the
// chunk count. Returns the written paths in order.
func WriteChunks(chunks []string, inputPath, outputDir, ext string) ([]string, error) {
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	} else if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	width := len(strconv.Itoa(len(chunks)))

	paths := make([]string, 0, len(chunks))
	for i, content := range chunks {
		name := fmt.Sprintf("%s-%0*d%s", stem, width, i+1, ext)
		path := filepath.Join(outputDir, name)

		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
