// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	SiteURL             string        `env:"SITE_URL" envDefault:"https://ironingangels.uk"`
	FormRelayURL        string        `env:"FORM_RELAY_URL" envDefault:"https://formsubmit.co/ajax/contact@ironingangels.uk"`
	FormRelayTimeout    time.Duration `env:"FORM_RELAY_TIMEOUT" envDefault:"10s"`
	FormRelayMaxRetries uint64        `env:"FORM_RELAY_MAX_RETRIES" envDefault:"3"`
	ClarityProjectID    string        `env:"CLARITY_PROJECT_ID"`
	ConsentMaxAge       time.Duration `env:"CONSENT_MAX_AGE" envDefault:"8760h"`
	StaticDir           string        `env:"STATIC_DIR" envDefault:"./static"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.FormRelayURL); err != nil {
		return nil, fmt.Errorf("invalid FORM_RELAY_URL %q: %w", cfg.FormRelayURL, err)
	}
	if cfg.FormRelayTimeout <= 0 {
		return nil, fmt.Errorf("FORM_RELAY_TIMEOUT must be positive")
	}

	return &cfg, nil
}

// ContactPageURL is where the relay sends the visitor after a non-AJAX submission.
func (c *Config) ContactPageURL() string {
	return c.SiteURL + "/contact"
}
