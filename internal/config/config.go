// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and COGSCORE_* env vars.
// - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/okian/cogscore/internal/adapters/qr"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8501".
	Addr string `koanf:"addr"`

	// DeployedURL is the public address of the page encoded in the QR code.
	DeployedURL string `koanf:"deployed_url"`

	// QRSize is the QR image edge length in pixels.
	QRSize int `koanf:"qr_size"`

	// QRRecovery is the QR error correction level: low, medium, high, highest.
	QRRecovery string `koanf:"qr_recovery"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		Addr:        ":8501",
		DeployedURL: "https://your-app-url.example.com",
		QRSize:      qr.DefaultSize,
		QRRecovery:  "medium",
	}
}

// Validate checks that the configuration can start the service.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DeployedURL) == "" {
		return fmt.Errorf("%w: deployed_url must not be empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.DeployedURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: deployed_url %q must be an absolute URL", ErrInvalidConfig, c.DeployedURL)
	}
	if c.QRSize < qr.MinSize || c.QRSize > qr.MaxSize {
		return fmt.Errorf("%w: qr_size %d out of range [%d,%d]", ErrInvalidConfig, c.QRSize, qr.MinSize, qr.MaxSize)
	}
	if _, err := qr.ParseRecovery(c.QRRecovery); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
