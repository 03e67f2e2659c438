package config

import (
	"errors"
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"

	"querykeys/internal/models"
	"querykeys/pkg/categorizer"
)

/*
Validate checks the fields the service cannot run without:
- Server listen port
- Downstream URL, timeout and rate limit
- Log level and format
- Vocabulary categories (only the fixed set may be overridden)

Every failure wraps models.ErrValidation.
*/
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}

	if c.Downstream.URL == "" {
		return errors.New("downstream.url is required")
	}
	u, err := url.Parse(c.Downstream.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("downstream.url %q must be an absolute http(s) URL", c.Downstream.URL)
	}
	if c.Downstream.Timeout < 0 {
		return fmt.Errorf("downstream.timeout (%s) must not be negative", c.Downstream.Timeout)
	}
	if c.Downstream.RateLimit < 0 {
		return fmt.Errorf("downstream.rate_limit (%g) must not be negative", c.Downstream.RateLimit)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", c.Log.Format)
	}

	for category, words := range c.Vocabulary {
		if !categorizer.IsCategory(category) {
			return fmt.Errorf("vocabulary contains unknown category '%s'", category)
		}
		if len(words) == 0 {
			return fmt.Errorf("vocabulary category '%s' must list at least one word", category)
		}
	}

	return nil
}
