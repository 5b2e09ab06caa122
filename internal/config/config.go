package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is the marketplace API used when API_URL is not set.
	DefaultAPIURL = "https://marketplacesite.onrender.com"

	defaultServerAddr    = ":8080"
	defaultAPITimeout    = 30 * time.Second
	devSessionSecret     = "marketplace-dev-session-secret-change-me"
	defaultTokenFileName = "token"
)

// Provider exposes configuration values through getters so that handlers and
// tests can depend on an interface rather than the concrete struct.
type Provider interface {
	GetAPIURL() string
	GetServerAddr() string
	GetSessionSecret() string
	GetAPITimeout() time.Duration
	GetLogFormat() string
	GetLogLevel() string
	GetTokenFile() string
	GetAppEnv() string
	IsDevelopment() bool
}

// Config holds all configuration for the application.
type Config struct {
	APIURL        string
	ServerAddr    string
	SessionSecret string
	APITimeout    time.Duration
	LogFormat     string
	LogLevel      string
	TokenFile     string
	AppEnv        string
}

// New loads the web server configuration from the environment, reading a
// .env file first when one is present.
func New() *Config {
	loadDotEnv()
	return FromEnv()
}

// NewForCLI loads configuration for the command-line client. The client keeps
// no cookie sessions, so SESSION_SECRET is neither required nor defaulted.
func NewForCLI() *Config {
	loadDotEnv()
	return readEnv()
}

// FromEnv builds a Config from the current process environment only.
// Outside development a missing SESSION_SECRET is fatal.
func FromEnv() *Config {
	cfg := readEnv()

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			log.Fatal("Required environment variable SESSION_SECRET is not set.")
		}
		log.Println("SESSION_SECRET not set, using the insecure development secret")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
}

// readEnv reads every variable and applies defaults, without the session
// secret check.
func readEnv() *Config {
	cfg := &Config{
		APIURL:        getEnv("API_URL", DefaultAPIURL),
		ServerAddr:    getEnv("SERVER_ADDR", defaultServerAddr),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		APITimeout:    defaultAPITimeout,
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		TokenFile:     os.Getenv("TOKEN_FILE"),
		AppEnv:        getEnv("APP_ENV", "development"),
	}

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid API_TIMEOUT %q, using default %s", raw, defaultAPITimeout)
		} else {
			cfg.APITimeout = d
		}
	}

	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}

	return cfg
}

func (c *Config) GetAPIURL() string            { return c.APIURL }
func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetLogFormat() string         { return c.LogFormat }
func (c *Config) GetLogLevel() string          { return c.LogLevel }
func (c *Config) GetTokenFile() string         { return c.TokenFile }
func (c *Config) GetAppEnv() string            { return c.AppEnv }

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".marketplace", defaultTokenFileName)
	}
	return filepath.Join(home, ".marketplace", defaultTokenFileName)
}
