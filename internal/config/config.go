package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Delivery modes for contact submissions
const (
	DeliveryLog     = "log"
	DeliveryResend  = "resend"
	DeliveryMailgun = "mailgun"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Contact ContactConfig
	Resend  ResendConfig
	Mailgun MailgunConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	BaseURL  string `env:"BASE_URL"` // Public URL of the site (e.g., https://www.knorx.tech)
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// IsDevelopment returns true if the environment is development
func (s *ServerConfig) IsDevelopment() bool {
	return s.Env == "development" || s.Env == ""
}

// Addr returns the listen address
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// URL returns the absolute URL for path.
// If BaseURL is configured, it returns that, otherwise constructs from host:port
func (s *ServerConfig) URL(path string) string {
	if s.BaseURL != "" {
		return strings.TrimSuffix(s.BaseURL, "/") + path
	}

	host := s.Host
	// Handle 0.0.0.0 or empty host - use localhost for URLs
	if host == "0.0.0.0" || host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%s%s", host, s.Port, path)
}

// CanonicalHost returns the host part of BaseURL, or "" when unset
func (s *ServerConfig) CanonicalHost() string {
	if s.BaseURL == "" {
		return ""
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Level parses LogLevel, falling back to info
func (s *ServerConfig) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ContactConfig holds contact form delivery configuration
type ContactConfig struct {
	Delivery      string        `env:"CONTACT_DELIVERY" envDefault:"log"`
	From          string        `env:"CONTACT_FROM" envDefault:"KNORX Contact <onboarding@resend.dev>"`
	To            string        `env:"CONTACT_TO"`
	SubjectPrefix string        `env:"CONTACT_SUBJECT_PREFIX" envDefault:"New Lead: "`
	SendTimeout   time.Duration `env:"CONTACT_SEND_TIMEOUT" envDefault:"30s"`
}

// ResendConfig holds Resend API configuration
type ResendConfig struct {
	APIKey string `env:"RESEND_API_KEY"`
}

// MailgunConfig holds Mailgun API configuration
type MailgunConfig struct {
	Domain  string `env:"MAILGUN_DOMAIN"`
	APIKey  string `env:"MAILGUN_API_KEY"`
	APIBase string `env:"MAILGUN_API_BASE"` // e.g. https://api.eu.mailgun.net/v3
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return finish(config)
}

// LoadFrom loads configuration from the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	config := &Config{}
	if err := env.ParseWithOptions(config, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return finish(config)
}

func finish(config *Config) (*Config, error) {
	config.Contact.Delivery = strings.ToLower(strings.TrimSpace(config.Contact.Delivery))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.BaseURL != "" {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("BASE_URL must be an absolute URL")
		}
	}

	if c.Contact.SendTimeout <= 0 {
		return fmt.Errorf("CONTACT_SEND_TIMEOUT must be positive")
	}

	switch c.Contact.Delivery {
	case DeliveryLog:
		return nil
	case DeliveryResend:
		if c.Resend.APIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when CONTACT_DELIVERY=resend")
		}
	case DeliveryMailgun:
		if c.Mailgun.Domain == "" || c.Mailgun.APIKey == "" {
			return fmt.Errorf("MAILGUN_DOMAIN and MAILGUN_API_KEY are required when CONTACT_DELIVERY=mailgun")
		}
	default:
		return fmt.Errorf("unknown CONTACT_DELIVERY %q", c.Contact.Delivery)
	}

	if c.Contact.To == "" {
		return fmt.Errorf("CONTACT_TO is required when CONTACT_DELIVERY=%s", c.Contact.Delivery)
	}
	if c.Contact.From == "" {
		return fmt.Errorf("CONTACT_FROM is required when CONTACT_DELIVERY=%s", c.Contact.Delivery)
	}
	return nil
}
