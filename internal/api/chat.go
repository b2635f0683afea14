package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// ChatRequest carries one user turn. SessionID and ClientID address the
// two backend generations; exactly one of them is expected to be set.
type ChatRequest struct {
	Message        string  `json:"message"`
	SessionID      string  `json:"session_id,omitempty"`
	ClientID       string  `json:"client_id,omitempty"`
	Model          string  `json:"model,omitempty"`
	AnswerMode     string  `json:"answer_mode,omitempty"`
	Locale         string  `json:"locale,omitempty"`
	MaxTokens      int     `json:"max_tokens,omitempty"`
	ScoreThreshold float64 `json:"score_threshold,omitempty"`
	ConversationID string  `json:"conversation_id,omitempty"`
	Mode           string  `json:"mode,omitempty"`
}

// ChatResponse is the tagged union of the reply shapes the backend
// generations produce: a bare string, or a structured object with
// citations. Normalization happens here at the boundary so callers never
// duck-type the payload.
type ChatResponse struct {
	// Structured reports whether the backend returned a reply object.
	Structured bool

	// Raw holds the bare-string reply when Structured is false. It may
	// still contain reasoning markers or a JSON-embedded answer; the chat
	// session controller cleans those up for display.
	Raw string

	// Reply and Citations are set when Structured is true.
	Reply     string
	Citations []models.Citation
}

// structuredReply is the wire shape of the object variant.
type structuredReply struct {
	Reply     string            `json:"reply"`
	Citations []models.Citation `json:"citations"`
}

// Chat sends one user turn and normalizes the reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/chat", nil, bytes.NewReader(body), "application/json", nil)
	if err != nil {
		return ChatResponse{}, err
	}

	return normalizeChatResponse(resp), nil
}

// normalizeChatResponse converts the raw body into the tagged union.
func normalizeChatResponse(resp *response) ChatResponse {
	if resp.json {
		// A JSON body can still be a bare string ("answer text").
		var s string
		if err := json.Unmarshal(resp.body, &s); err == nil {
			return ChatResponse{Raw: s}
		}

		var sr structuredReply
		if err := json.Unmarshal(resp.body, &sr); err == nil && sr.Reply != "" {
			return ChatResponse{
				Structured: true,
				Reply:      sr.Reply,
				Citations:  sr.Citations,
			}
		}
	}

	return ChatResponse{Raw: string(resp.body)}
}
