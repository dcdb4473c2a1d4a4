package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avokic/redditkit"
)

type app struct {
	client *redditkit.Client
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	creds, err := redditkit.LoadCredentials()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.GetString("log_level")),
	}))

	timeout := cfg.GetDuration("timeout")
	if timeout <= 0 {
		timeout = redditkit.DefaultTimeout
	}

	client, err := redditkit.NewClient(&redditkit.Config{
		Credentials: creds,
		BaseURL:     cfg.GetString("base_url"),
		AuthURL:     cfg.GetString("auth_url"),
		HTTPClient:  &http.Client{Timeout: timeout},
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{client: client}, nil
}

// loadConfig reads optional settings from ~/.config/redditkit/config.toml,
// overridable through REDDITKIT_* environment variables.
func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")

	if homeDir, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(homeDir, ".config", "redditkit"))
	}

	cfg.SetEnvPrefix("redditkit")
	cfg.AutomaticEnv()

	cfg.SetDefault("base_url", redditkit.DefaultBaseURL)
	cfg.SetDefault("auth_url", redditkit.DefaultAuthURL)
	cfg.SetDefault("timeout", redditkit.DefaultTimeout.String())
	cfg.SetDefault("log_level", "warn")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return cfg, nil
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// writeJSON prints a command result as indented JSON on stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
