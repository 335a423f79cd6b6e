// Package chunk splits JSON or text files into token-bounded pieces
// for language model consumption.
package chunk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ChunkFile reads path and splits its content into serialized chunks
// each staying under maxTokens. It returns the chunks and the file
// extension chunk files should carry.
func ChunkFile(path string, maxTokens int, count TokenCounter) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" || (ext != "" && looksLikeJSON(content)) {
		if gjson.Valid(content) {
			return ChunkJSON(content, maxTokens, count), ext, nil
		}
		// not actually JSON; fall through to text chunking
	}

	return ChunkText(content, maxTokens, count), ext, nil
}

func looksLikeJSON(content string) bool {
	content = strings.TrimSpace(content)
	return (strings.HasPrefix(content, "{") && strings.HasSuffix(content, "}")) ||
		(strings.HasPrefix(content, "[") && strings.HasSuffix(content, "]"))
}

// ChunkJSON splits a JSON document structurally: arrays by element,
// objects by top-level key, anything else as one chunk. Each chunk is
// itself valid JSON of the same container kind, rendered with
// two-space indentation, and document order is preserved. An element
// that alone exceeds the budget becomes a singleton chunk.
func ChunkJSON(content string, maxTokens int, count TokenCounter) []string {
	root := gjson.Parse(content)

	var chunks []string
	switch {
	case root.IsArray():
		chunks = chunkMembers(root, maxTokens, count, "[]", arrayPath)
	case root.IsObject():
		chunks = chunkMembers(root, maxTokens, count, "{}", objectPath)
	}

	if len(chunks) == 0 {
		chunks = []string{indent2(root.Raw)}
	}
	return chunks
}

// arrayPath appends to the end of an array chunk.
func arrayPath(gjson.Result) string { return "-1" }

// objectPath sets the member's own key, escaped for sjson.
func objectPath(key gjson.Result) string { return escapePath(key.Str) }

// chunkMembers greedily packs the container's members into chunks. The
// candidate chunk is re-serialized with two-space indentation before
// counting so the budget covers what actually gets written.
func chunkMembers(
	root gjson.Result,
	maxTokens int,
	count TokenCounter,
	empty string,
	path func(key gjson.Result) string,
) []string {
	var chunks []string
	current := empty
	members := 0

	root.ForEach(func(key, value gjson.Result) bool {
		p := path(key)

		alone, _ := sjson.SetRaw(empty, p, value.Raw)
		if count(indent2(alone)) > maxTokens {
			// oversized member: close the open chunk, emit a singleton
			if members > 0 {
				chunks = append(chunks, indent2(current))
				current = empty
				members = 0
			}
			chunks = append(chunks, indent2(alone))
			return true
		}

		candidate, _ := sjson.SetRaw(current, p, value.Raw)
		if count(indent2(candidate)) > maxTokens && members > 0 {
			chunks = append(chunks, indent2(current))
			current = alone
			members = 1
		} else {
			current = candidate
			members++
		}
		return true
	})

	if members > 0 {
		chunks = append(chunks, indent2(current))
	}
	return chunks
}

// ChunkText splits plain text by line, greedily packing lines into
// chunks under the token budget. A single line over budget is further
// split on ". " sentence boundaries.
func ChunkText(text string, maxTokens int, count TokenCounter) []string {
	var chunks []string
	var current []string
	currentTokens := 0

	emit := func() {
		chunks = append(chunks, strings.TrimRight(strings.Join(current, ""), "\n"))
		current = nil
		currentTokens = 0
	}

	for _, line := range strings.Split(text, "\n") {
		withNewline := line + "\n"
		lineTokens := count(withNewline)

		if lineTokens > maxTokens {
			if len(current) > 0 {
				emit()
			}

			sentences := strings.Split(line, ". ")
			for i, sentence := range sentences {
				if i < len(sentences)-1 {
					sentence += ". "
				}
				sentenceTokens := count(sentence)

				if currentTokens+sentenceTokens > maxTokens && len(current) > 0 {
					emit()
				}
				current = append(current, sentence)
				currentTokens += sentenceTokens
			}
			if len(current) > 0 {
				current = append(current, "\n")
			}
			continue
		}

		if currentTokens+lineTokens > maxTokens && len(current) > 0 {
			emit()
		}
		current = append(current, withNewline)
		currentTokens += lineTokens
	}

	if len(current) > 0 {
		emit()
	}

	if len(chunks) == 0 {
		chunks = []string{text}
	}
	return chunks
}

func indent2(raw string) string {
	return strings.TrimRight(string(pretty.Pretty([]byte(raw))), "\n")
}

// escapePath protects sjson path metacharacters in object keys.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
