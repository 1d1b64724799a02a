package embedding

import (
	"context"
	"log/slog"
	"time"
)

const healthTimeout = 5 * time.Second

// HealthChecker reports whether the embedding provider answers a one-word request.
type HealthChecker struct {
	embedder *Embedder
}

func NewHealthChecker(embedder *Embedder) *HealthChecker {
	return &HealthChecker{embedder: embedder}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.embedder == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if _, err := hc.embedder.EmbedText(ctx, "health"); err != nil {
		slog.Warn("embedding health check failed", "model", hc.embedder.Model(), "error", err)
		return false
	}
	return true
}
