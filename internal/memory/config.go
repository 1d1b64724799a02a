package memory

import (
	"fmt"

	"github.com/DjordjeVuckovic/genai-lab/pkg/config/env"
)

type Type string

const (
	InMem Type = "in_mem"
	PG    Type = "pg"
)

const DefaultWindow = 10

type Config struct {
	Type   Type
	Window int
	// PGConnString opens a dedicated pool when the vector store is not pg.
	PGConnString string
}

// RequirePGConnString returns the connection string a pg memory needs without a shared pool.
func (c *Config) RequirePGConnString() (string, error) {
	if c.PGConnString == "" {
		return "", fmt.Errorf("CHAT_MEMORY=pg requires PG_CONNECTION_STRING")
	}
	return c.PGConnString, nil
}

func LoadConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Type:         Type(env.String("CHAT_MEMORY", string(InMem))),
		Window:       DefaultWindow,
		PGConnString: env.String("PG_CONNECTION_STRING", ""),
	}
	if cfg.Type != InMem && cfg.Type != PG {
		return nil, fmt.Errorf("unsupported chat memory: %s", cfg.Type)
	}

	window, err := env.Int("CHAT_MEMORY_WINDOW", cfg.Window)
	if err != nil {
		return nil, err
	}
	cfg.Window = window
	return cfg, nil
}
