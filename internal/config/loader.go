package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime configuration of the roster service.
type Config struct {
	HTTPPort  int
	SQLiteDSN string
	LogLevel  string
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	HTTPPort  *int    `yaml:"http_port"`
	SQLiteDSN *string `yaml:"sqlite_dsn"`
	LogLevel  *string `yaml:"log_level"`
}

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Load builds the configuration in three layers: defaults, then the YAML
// file named by ESCALA_CONFIG_FILE (when set), then environment variables.
// Later layers win.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:  8080,
		SQLiteDSN: "file:escala.db",
		LogLevel:  "info",
	}

	if path := strings.TrimSpace(os.Getenv("ESCALA_CONFIG_FILE")); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("ESCALA_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 || port > 65535 {
			invalid = append(invalid, "ESCALA_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("ESCALA_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if level := strings.TrimSpace(os.Getenv("ESCALA_LOG_LEVEL")); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if _, ok := logLevels[cfg.LogLevel]; !ok {
		invalid = append(invalid, "ESCALA_LOG_LEVEL")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("valores de configuração inválidos: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("não foi possível ler o ficheiro de configuração %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("ficheiro de configuração %q inválido: %w", path, err)
	}

	if fc.HTTPPort != nil {
		cfg.HTTPPort = *fc.HTTPPort
	}
	if fc.SQLiteDSN != nil && strings.TrimSpace(*fc.SQLiteDSN) != "" {
		cfg.SQLiteDSN = strings.TrimSpace(*fc.SQLiteDSN)
	}
	if fc.LogLevel != nil && strings.TrimSpace(*fc.LogLevel) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*fc.LogLevel))
	}
	return nil
}
