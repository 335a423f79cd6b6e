package chunk

import (
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// model identifiers mapped to tiktoken encodings
var modelEncodings = map[string]string{
	"GPT-3.5": "cl100k_base",
	"GPT-4":   "cl100k_base",
	"GPT-4O":  "o200k_base",
	"GPT5":    "o200k_base",
	"GPT-3":   "p50k_base",
	"CODEX":   "p50k_base",
}

const defaultEncoding = "cl100k_base"

// DefaultModel is the encoding scheme used when none is requested.
const DefaultModel = "GPT5"

// Models returns the accepted model identifiers in flag-help order.
func Models() []string {
	return []string{"GPT-3.5", "GPT-4", "GPT-4O", "GPT5", "GPT-3", "CODEX"}
}

// IsKnownModel reports whether model names a supported token scheme.
func IsKnownModel(model string) bool {
	_, ok := modelEncodings[strings.ToUpper(model)]
	return ok
}

// TokenCounter reports how many tokens a piece of text costs.
type TokenCounter func(text string) int

// NewTokenCounter builds a counter for the model's encoding. An
// unknown model uses the cl100k_base encoding; if the encoding cannot
// be loaded at all, the counter estimates four bytes per token.
func NewTokenCounter(model string) TokenCounter {
	name, ok := modelEncodings[strings.ToUpper(model)]
	if !ok {
		name = defaultEncoding
	}

	encoding, err := tiktoken.GetEncoding(name)
	if err != nil {
		return estimateTokens
	}

	return func(text string) int {
		return len(encoding.Encode(text, nil, nil))
	}
}

// rough fallback: one token per four bytes
func estimateTokens(text string) int {
	return len(text) / 4
}
