package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the application configuration from the environment. Each given
// env file path is searched for upwards from the working directory and loaded
// if found; the first hit wins. With no arguments (or no hit) the default
// .env is tried and the process environment is used as is.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("environment file not found", "path", path, "error", err)
			continue
		}
		logger.Info("loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("app config loaded",
		"env", cfg.Env,
		"server_host", cfg.Server.Host,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
