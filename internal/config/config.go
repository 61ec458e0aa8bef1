// Package config builds the immutable runtime configuration.
// Values are layered: struct defaults, then an optional YAML file,
// then environment variables. The resulting Config is never mutated
// after Load returns; every component receives it by reference.
package config

import (
	"github.com/raoulx24/dir-archiver/internal/logging"
)

type Config struct {
	ProjectName string `koanf:"project_name" validate:"required"`
	SourceDir   string `koanf:"source_dir" validate:"required"`
	BackupDir   string `koanf:"backup_dir" validate:"required"`
	LogFile     string `koanf:"log_file"`

	Retention RetentionConfig `koanf:"retention"`
	Rclone    RcloneConfig    `koanf:"rclone"`
	Webhook   WebhookConfig   `koanf:"webhook"`
	Logging   logging.Config  `koanf:"logging"`
}

// RetentionConfig holds the three retention windows. They collapse into
// a single cutoff (see retention.Windows), not three separate tiers.
type RetentionConfig struct {
	Days   int `koanf:"days" validate:"gte=0"`
	Weeks  int `koanf:"weeks" validate:"gte=0"`
	Months int `koanf:"months" validate:"gte=0"`
}

type RcloneConfig struct {
	Remote string `koanf:"remote"`
	Folder string `koanf:"folder"`
}

type WebhookConfig struct {
	URL     string `koanf:"url" validate:"omitempty,url"`
	Enabled bool   `koanf:"enabled"`
}

// defaults returns the configuration applied before file and env layers.
func defaults() *Config {
	return &Config{
		Retention: RetentionConfig{
			Days:   7,
			Weeks:  4,
			Months: 3,
		},
		Webhook: WebhookConfig{
			Enabled: true,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
	}
}
