// Package chat maintains the per-scope conversation transcript and sends
// user turns to the backend.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/JeremiasMeza/IA-Rag/internal/api"
	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// DefaultGreeting seeds the transcript whenever the scope changes.
const DefaultGreeting = "Hola, soy tu asistente virtual. ¿En qué puedo ayudarte?"

// Service is the slice of the backend client the session depends on.
type Service interface {
	Chat(ctx context.Context, req api.ChatRequest) (api.ChatResponse, error)
}

// Options carries the per-turn chat parameters.
type Options struct {
	Model          string
	AnswerMode     string
	Locale         string
	MaxTokens      int
	ScoreThreshold float64

	// Greeting is the bot message seeded on every reset. Empty disables
	// the greeting and resets to an empty transcript.
	Greeting string
}

// Session holds an ordered, append-only transcript for one scope.
// Only one send may be in flight at a time; re-entrant sends are no-ops.
type Session struct {
	svc    Service
	logger *slog.Logger

	mu         sync.Mutex
	scope      string
	opts       Options
	sending    bool
	transcript []models.ChatMessage
}

// NewSession creates a session bound to a scope identifier. The scope is
// passed in explicitly; the session never reads ambient global state.
func NewSession(svc Service, scope string, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		svc:    svc,
		logger: logger,
		scope:  scope,
		opts:   opts,
	}
	s.reset()
	return s
}

// Scope returns the current scope identifier.
func (s *Session) Scope() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scope
}

// SetScope switches to a different scope. The transcript is reset before
// any message under the new scope can be sent; nothing carries over.
func (s *Session) SetScope(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scope == s.scope {
		return
	}
	s.scope = scope
	s.reset()
}

// SetModel changes the model used for subsequent turns.
func (s *Session) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Model = model
}

// Model returns the model used for subsequent turns.
func (s *Session) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Model
}

// Sending reports whether a send is in flight.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Transcript returns a copy of the transcript.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Reset clears the transcript to its scope-reset default.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.transcript = nil
	if s.opts.Greeting != "" {
		s.transcript = []models.ChatMessage{{Sender: models.SenderBot, Text: s.opts.Greeting}}
	}
}

// Send submits one user turn. An empty (trimmed) message, or a call while
// another send is in flight, is a silent no-op and issues no request.
// Failures never escape: they are absorbed into the transcript as a bot
// entry prefixed with "Error: ". Returns true if a turn was sent.
func (s *Session) Send(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return false
	}
	s.sending = true
	// Optimistic append: the user entry lands before the request resolves.
	s.transcript = append(s.transcript, models.ChatMessage{Sender: models.SenderUser, Text: trimmed})
	req := api.ChatRequest{
		Message:        trimmed,
		SessionID:      s.scope,
		Model:          s.opts.Model,
		AnswerMode:     s.opts.AnswerMode,
		Locale:         s.opts.Locale,
		MaxTokens:      s.opts.MaxTokens,
		ScoreThreshold: s.opts.ScoreThreshold,
	}
	scope := s.scope
	s.mu.Unlock()

	resp, err := s.svc.Chat(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false

	if err != nil {
		s.logger.Warn("chat turn failed", "scope", scope, "error", err)
		s.transcript = append(s.transcript, models.ChatMessage{
			Sender: models.SenderBot,
			Text:   "Error: " + err.Error(),
		})
		return true
	}

	s.transcript = append(s.transcript, s.botMessage(resp))
	return true
}

// botMessage converts a normalized reply into a transcript entry.
func (s *Session) botMessage(resp api.ChatResponse) models.ChatMessage {
	if !resp.Structured {
		return models.ChatMessage{Sender: models.SenderBot, Text: CleanReply(resp.Raw)}
	}

	msg := models.ChatMessage{Sender: models.SenderBot, Text: StripReasoning(resp.Reply)}
	if meta := CitationMeta(resp.Citations); meta != "" {
		msg.Meta = meta
	} else if s.scope != "" {
		msg.Meta = NoContextMeta
	}
	return msg
}
