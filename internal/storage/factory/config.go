package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/chroma"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/es"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/pg"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/genai-lab/pkg/utils"
)

const defaultSQLitePath = "genai-lab.db"

var supportedTypes = []storage.Type{storage.InMem, storage.PG, storage.SQLite, storage.Chroma, storage.ES}

type StorageConfig struct {
	storage.Type
	Pg     *pg.PoolConfig
	SQLite *sqlite.Config
	Chroma *chroma.Config
	Es     *es.ClientConfig
}

// LoadEnv reads VECTOR_STORE and the settings of the selected backend.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("VECTOR_STORE"))
	if storageType == "" {
		slog.Info("VECTOR_STORE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if !isSupported(storageType) {
		slog.Error("Invalid VECTOR_STORE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid VECTOR_STORE environment variable value: %s, expected one of %v",
			storageType,
			supportedTypes)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case storage.SQLite:
		cfg.SQLite = &sqlite.Config{Path: os.Getenv("SQLITE_PATH")}
		if cfg.SQLite.Path == "" {
			cfg.SQLite.Path = defaultSQLitePath
		}
	case storage.Chroma:
		cfg.Chroma = &chroma.Config{
			URL:        os.Getenv("CHROMA_URL"),
			Collection: os.Getenv("CHROMA_COLLECTION"),
		}
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	return cfg, nil
}

func isSupported(t storage.Type) bool {
	for _, s := range supportedTypes {
		if s == t {
			return true
		}
	}
	return false
}
