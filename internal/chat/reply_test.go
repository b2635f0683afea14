package chat

import (
	"testing"

	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

func TestStripReasoning(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markers", "Hola", "Hola"},
		{"leading block", "<think>reasoning</think>Visible answer", "Visible answer"},
		{"uppercase markers", "<THINK>hidden</THINK>respuesta", "respuesta"},
		{"multiline block", "<think>line one\nline two</think>\nrespuesta final", "respuesta final"},
		{"multiple blocks", "<think>a</think>uno<think>b</think> dos", "uno dos"},
		{"surrounding whitespace", "  <think>x</think>  hola  ", "hola"},
		{"only a block", "<think>todo interno</think>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripReasoning(tt.in)
			if got != tt.want {
				t.Errorf("StripReasoning(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanReply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Hola", "Hola"},
		{"embedded answer", `{"answer": "Hola"}`, "Hola"},
		{"embedded answer with markers", `{"answer": "<think>why</think>Hola"}`, "Hola"},
		{"json without answer stays raw", `{"reply": "x"}`, `{"reply": "x"}`},
		{"invalid json stays raw", `{"answer": `, `{"answer":`},
		{"markers in raw", "<think>interno</think>Visible answer", "Visible answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanReply(tt.in)
			if got != tt.want {
				t.Errorf("CleanReply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCitationMeta(t *testing.T) {
	if got := CitationMeta(nil); got != "" {
		t.Errorf("CitationMeta(nil) = %q, want empty", got)
	}

	citations := []models.Citation{
		{Source: "contrato.pdf", Chunk: 3},
		{Source: "manual.txt", Chunk: 0},
	}
	want := "Contexto usado: contrato.pdf#3, manual.txt#0"
	if got := CitationMeta(citations); got != want {
		t.Errorf("CitationMeta() = %q, want %q", got, want)
	}
}
