package chat

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// Reasoning markers wrap internal chain-of-thought that some models leak
// into their output. Matching is case-insensitive and spans newlines.
var reasoningRE = regexp.MustCompile(`(?is)<think>.*?</think>`)

// StripReasoning removes reasoning marker blocks and trims the result.
func StripReasoning(s string) string {
	return strings.TrimSpace(reasoningRE.ReplaceAllString(s, ""))
}

// embeddedAnswer is the JSON object some backend variants embed inside the
// bare reply string.
type embeddedAnswer struct {
	Answer string `json:"answer"`
}

// CleanReply turns a raw reply string into display text: unwraps a
// JSON-embedded answer field if present, then strips reasoning blocks.
func CleanReply(raw string) string {
	text := raw

	var ea embeddedAnswer
	if err := json.Unmarshal([]byte(raw), &ea); err == nil && ea.Answer != "" {
		text = ea.Answer
	}

	return StripReasoning(text)
}

// NoContextMeta is the sentinel annotation attached when a scoped answer
// arrives without citations.
const NoContextMeta = "Sin contexto de documentos"

// CitationMeta joins citations into the "context used" annotation.
// Returns the empty string for an empty slice.
func CitationMeta(citations []models.Citation) string {
	if len(citations) == 0 {
		return ""
	}
	parts := make([]string, len(citations))
	for i, c := range citations {
		parts[i] = fmt.Sprintf("%s#%d", c.Source, c.Chunk)
	}
	return "Contexto usado: " + strings.Join(parts, ", ")
}
