// Package models defines data structures shared by the IA-Rag client.
package models

// Sender identifies who produced a transcript entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single entry in a session transcript.
// Meta carries an optional human-readable annotation, such as the
// "context used" line built from citations.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	Meta   string `json:"meta,omitempty"`
}

// Citation points at the retrieved document fragment that backed part
// of an answer.
type Citation struct {
	Source string `json:"source"`
	Chunk  int    `json:"chunk"`
}
