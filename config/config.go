package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultFromEmail is the sender address used when FROM_EMAIL is not configured.
const DefaultFromEmail = "booking@tar1k.com"

// DefaultContactEmails is the operator/organizer recipient list used when
// CONTACT_TO_EMAIL is not configured.
var DefaultContactEmails = []string{"booking@tar1k.com", "team@tar1k.com"}

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Persistence. Records are stored only when EnableStorage is true and
	// DBUrl is non-empty; otherwise the store is a logged no-op.
	DBUrl         string
	EnableStorage bool

	// Email delivery.
	EmailProvider      string
	FromEmail          string
	ContactEmails      []string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string

	// Optional SES contact list. When set, newsletter signups are registered
	// into the list instead of notifying the operators.
	SESContactList string

	// Door check-in.
	CheckinTokenSecret  string
	CheckinPasscodeHash string

	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:         env,
		Port:                os.Getenv("PORT"),
		DBUrl:               os.Getenv("DATABASE_URL"),
		EnableStorage:       os.Getenv("ENABLE_STORAGE") == "true",
		EmailProvider:       os.Getenv("EMAIL_PROVIDER"),
		FromEmail:           os.Getenv("FROM_EMAIL"),
		ContactEmails:       splitList(os.Getenv("CONTACT_TO_EMAIL")),
		SESRegion:           os.Getenv("SES_REGION"),
		SESAccessKeyID:      os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey:  os.Getenv("SES_SECRET_ACCESS_KEY"),
		SESContactList:      os.Getenv("SES_CONTACT_LIST"),
		CheckinTokenSecret:  os.Getenv("CHECKIN_TOKEN_SECRET"),
		CheckinPasscodeHash: os.Getenv("CHECKIN_PASSCODE_HASH"),
		CORSAllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "ses"
	}
	if cfg.FromEmail == "" {
		log.Printf("[env] FROM_EMAIL missing (using default)")
		cfg.FromEmail = DefaultFromEmail
	}
	if len(cfg.ContactEmails) == 0 {
		log.Printf("[env] CONTACT_TO_EMAIL missing (using defaults)")
		cfg.ContactEmails = DefaultContactEmails
	}
	if cfg.CheckinTokenSecret == "" {
		if env == "production" {
			log.Printf("Warning: CHECKIN_TOKEN_SECRET not set in production; QR payloads are signed with the development secret")
		}
		cfg.CheckinTokenSecret = "dev-checkin-secret"
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"https://tar1k.com"}
	}

	return cfg, nil
}

// PersistenceEnabled reports whether submissions should be written to the
// database. Absence of a DATABASE_URL disables persistence rather than failing.
func (c *Config) PersistenceEnabled() bool {
	return c.EnableStorage && c.DBUrl != ""
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
