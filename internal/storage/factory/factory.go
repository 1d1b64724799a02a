package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/chroma"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/es"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/pg"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/genai-lab/pkg/server"
)

// Backend is a ready Store with its health checker and a release func.
type Backend struct {
	Store  storage.Store
	Health server.HealthChecker
	Close  func()
	// Pool is set for the pg backend so other Postgres-backed components can share it.
	Pool *pg.ConnectionPool
}

// New connects to the configured backend.
func New(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	if cfg == nil {
		cfg = &StorageConfig{Type: storage.InMem}
	}

	switch cfg.Type {
	case storage.InMem:
		return &Backend{
			Store:  in_mem.NewStore(),
			Health: server.NewOkHealthChecker(),
			Close:  func() {},
		}, nil

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		store := pg.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Store:  store,
			Health: pg.NewHealthChecker(pool),
			Close:  pool.Close,
			Pool:   pool,
		}, nil

	case storage.SQLite:
		if cfg.SQLite == nil {
			return nil, fmt.Errorf("missing SQLite configuration")
		}
		store, err := sqlite.Open(ctx, *cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store:  store,
			Health: store,
			Close:  closer(store.Close),
		}, nil

	case storage.Chroma:
		var chromaCfg chroma.Config
		if cfg.Chroma != nil {
			chromaCfg = *cfg.Chroma
		}
		store, err := chroma.NewStore(ctx, chromaCfg)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store:  store,
			Health: store,
			Close:  closer(store.Close),
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(*cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store:  store,
			Health: store,
			Close:  func() {},
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

func closer(fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			slog.Warn("failed to close vector store", "error", err)
		}
	}
}
