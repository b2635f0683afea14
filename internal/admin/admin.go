// Package admin exposes the token-gated destructive operations.
package admin

import (
	"context"
	"log/slog"
)

// Service is the slice of the backend client the controller depends on.
type Service interface {
	WipeClient(ctx context.Context, clientID, token string) error
	WipeAll(ctx context.Context, token string) error
}

// Controller runs scoped wipes. The token is attached as-is; the backend
// alone decides whether it is valid.
type Controller struct {
	svc    Service
	logger *slog.Logger
}

// NewController creates an admin controller.
func NewController(svc Service, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{svc: svc, logger: logger}
}

// WipeClient deletes all state for one client scope and reports a short
// status string.
func (c *Controller) WipeClient(ctx context.Context, scope, token string) string {
	if err := c.svc.WipeClient(ctx, scope, token); err != nil {
		c.logger.Warn("wipe client failed", "scope", scope, "error", err)
		return "Error: " + err.Error()
	}
	c.logger.Info("client wiped", "scope", scope)
	return "OK: borrado cliente \"" + scope + "\""
}

// WipeAll deletes all state for every scope and reports a short status
// string.
func (c *Controller) WipeAll(ctx context.Context, token string) string {
	if err := c.svc.WipeAll(ctx, token); err != nil {
		c.logger.Warn("wipe all failed", "error", err)
		return "Error: " + err.Error()
	}
	c.logger.Info("all client data wiped")
	return "OK: reset total"
}
