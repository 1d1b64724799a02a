package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// ENV_PATH overrides defaultPath. A missing file is only an error when env is
// "local" or empty; a malformed file is always an error.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	switch {
	case err == nil:
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "env", env)
		return nil
	default:
		return fmt.Errorf("parse %s: %w", envPath, err)
	}
}
