// Package docs manages the active-document list for a scope: listing,
// uploads, and deletions, with an explicit refresh notification for
// dependent views.
package docs

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/JeremiasMeza/IA-Rag/internal/api"
	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// Service is the slice of the backend client the controller depends on.
type Service interface {
	ListDocs(ctx context.Context, sessionID string) ([]string, error)
	UploadPDF(ctx context.Context, sessionID, filename string, file io.Reader) (models.UploadResult, error)
	DeleteDoc(ctx context.Context, sessionID, doc string) (api.DeleteDocResult, error)
	DeleteAllDocs(ctx context.Context, sessionID string) error
}

// ConfirmFunc asks the user to confirm a destructive action. Returning
// false cancels the operation without issuing a request.
type ConfirmFunc func(prompt string) bool

// Controller tracks the document list for one scope.
type Controller struct {
	svc     Service
	logger  *slog.Logger
	confirm ConfirmFunc

	mu        sync.Mutex
	scope     string
	docs      []string
	loaded    bool
	uploading bool
	observers []func()
}

// NewController creates a controller for the given scope. confirm gates
// every destructive operation; a nil confirm auto-approves (for
// non-interactive use with an explicit --force).
func NewController(svc Service, scope string, confirm ConfirmFunc, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Controller{
		svc:     svc,
		logger:  logger,
		confirm: confirm,
		scope:   scope,
	}
}

// Subscribe registers a callback invoked after any operation that changes
// the remote document set. This replaces implicit re-fetch wiring: views
// that need a reload register here.
func (c *Controller) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Controller) notify() {
	c.mu.Lock()
	observers := make([]func(), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}

// Scope returns the scope identifier the controller operates under.
func (c *Controller) Scope() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scope
}

// Docs returns the local document list and whether it has been loaded.
// An empty loaded list is the explicit "no active documents" state,
// distinct from not-yet-loaded.
func (c *Controller) Docs() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.docs))
	copy(out, c.docs)
	return out, c.loaded
}

// Refresh fetches the active documents for the scope.
func (c *Controller) Refresh(ctx context.Context) error {
	docs, err := c.svc.ListDocs(ctx, c.Scope())
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.docs = docs
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Upload sends a document and returns a short status line: the upload
// summary on success, "Error: <msg>" on failure. A missing file is a
// silent no-op. Only one upload may be in flight at a time.
func (c *Controller) Upload(ctx context.Context, filename string, file io.Reader) string {
	if filename == "" || file == nil {
		return ""
	}

	c.mu.Lock()
	if c.uploading {
		c.mu.Unlock()
		return ""
	}
	c.uploading = true
	scope := c.scope
	c.mu.Unlock()

	result, err := c.svc.UploadPDF(ctx, scope, filename, file)

	c.mu.Lock()
	c.uploading = false
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("upload failed", "scope", scope, "file", filename, "error", err)
		return "Error: " + err.Error()
	}

	c.logger.Info("document uploaded", "scope", scope, "file", filename)
	c.notify()
	return result.Summary()
}

// Delete removes one document after user confirmation. On success the
// document is dropped from the local list optimistically and observers
// are notified. Declined confirmation is a no-op.
func (c *Controller) Delete(ctx context.Context, doc string) string {
	if !c.confirm("¿Eliminar el documento \"" + doc + "\"?") {
		return ""
	}

	result, err := c.svc.DeleteDoc(ctx, c.Scope(), doc)
	if err != nil {
		c.logger.Warn("delete failed", "doc", doc, "error", err)
		return "Error: " + err.Error()
	}

	c.mu.Lock()
	kept := c.docs[:0]
	for _, d := range c.docs {
		if d != doc {
			kept = append(kept, d)
		}
	}
	c.docs = kept
	c.mu.Unlock()

	c.notify()
	if result.Message != "" {
		return result.Message
	}
	return "Eliminado " + doc
}

// DeleteAll removes every document in the scope after confirmation.
func (c *Controller) DeleteAll(ctx context.Context) string {
	if !c.confirm("¿Eliminar todos los documentos de este contexto?") {
		return ""
	}

	if err := c.svc.DeleteAllDocs(ctx, c.Scope()); err != nil {
		c.logger.Warn("delete all failed", "scope", c.Scope(), "error", err)
		return "Error: " + err.Error()
	}

	c.mu.Lock()
	c.docs = nil
	c.loaded = true
	c.mu.Unlock()

	c.notify()
	return "Documentos eliminados."
}
