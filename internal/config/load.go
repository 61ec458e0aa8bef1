package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file search paths.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfigPaths are searched in order; the first existing file wins.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/dir-archiver/config.yaml",
}

// envKeys maps recognized environment variables to koanf paths.
// Unknown variables are ignored rather than merged, so an unrelated
// HOME or PATH can never leak into the config tree.
var envKeys = map[string]string{
	"PROJECT_NAME":     "project_name",
	"SOURCE_DIR":       "source_dir",
	"BACKUP_DIR":       "backup_dir",
	"LOG_FILE":         "log_file",
	"RETENTION_DAYS":   "retention.days",
	"RETENTION_WEEKS":  "retention.weeks",
	"RETENTION_MONTHS": "retention.months",
	"RCLONE_REMOTE":    "rclone.remote",
	"RCLONE_FOLDER":    "rclone.folder",
	"WEBHOOK_URL":      "webhook.url",
	"NOTIFY":           "webhook.enabled",
	"LOG_LEVEL":        "logging.level",
	"LOG_FORMAT":       "logging.format",
}

// Load builds the Config from defaults, an optional YAML file and the
// environment, in that order of precedence (env wins).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("", ".", func(key string) string {
		return envKeys[key]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks structural constraints on a Config.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
