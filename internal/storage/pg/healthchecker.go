package pg

import (
	"context"
	"log/slog"
)

const vectorExtensionQuery = `SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')`

// HealthChecker reports whether the database answers and has pgvector installed.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	var installed bool
	if err := hc.pool.GetConn().QueryRow(ctx, vectorExtensionQuery).Scan(&installed); err != nil {
		slog.Warn("postgres health check failed", "error", err)
		return false
	}
	if !installed {
		slog.Warn("postgres health check failed", "error", "vector extension is not installed")
	}
	return installed
}
