package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendExcel  = "excel"
)

type Config struct {
	ServiceEnvironment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	ServiceAPIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	ServiceHost        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	StoreBackend       string `envconfig:"STORE_BACKEND" default:"sqlite"`
	SQLitePath         string `envconfig:"SQLITE_PATH" default:"leads.db"`
	ExcelPath          string `envconfig:"EXCEL_PATH" default:"katalystvc_leads.xlsx"`
	SMTPServer         string `envconfig:"SMTP_SERVER" default:"smtp.gmail.com"`
	SMTPPort           int    `envconfig:"SMTP_PORT" default:"587"`
	EmailUser          string `envconfig:"EMAIL_USER" default:"support@katalystvc.com"`
	EmailPassword      string `envconfig:"EMAIL_PASSWORD" default:""`
	InternalEmail      string `envconfig:"INTERNAL_EMAIL" default:"support@katalystvc.com"`
	DownloadBaseURL    string `envconfig:"DOWNLOAD_BASE_URL" default:"https://katalystvc.com"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.StoreBackend != BackendSQLite && cfg.StoreBackend != BackendExcel {
		return nil, fmt.Errorf("unsupported store backend: %s (supported: %s, %s)",
			cfg.StoreBackend, BackendSQLite, BackendExcel)
	}

	return &cfg, nil
}

// MailConfigured reports whether outbound email credentials are present.
// An empty password disables the mailer entirely rather than attempting
// sends that would fail.
func (c *Config) MailConfigured() bool {
	return c.EmailPassword != ""
}
