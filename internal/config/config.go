package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultEndpoint is the base URL used when nothing else is configured.
const DefaultEndpoint = "http://localhost:5000"

// SendPath is appended to the endpoint base URL.
const SendPath = "/send-email"

const (
	envEndpoint = "LABSEND_ENDPOINT"
	envLogFile  = "LABSEND_LOG_FILE"
	envLogLevel = "LABSEND_LOG_LEVEL"
)

// Config is the runtime configuration surface.
type Config struct {
	EndpointBaseURL string `json:"endpointBaseUrl"`
	LogFile         string `json:"logFile"`
	LogLevel        string `json:"logLevel"`
	// Theme is a base theme name: "dark" or "light".
	Theme string `json:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		EndpointBaseURL: DefaultEndpoint,
		LogLevel:        "info",
		Theme:           "dark",
	}
}

// Dir returns the per-user config directory, or "" if none can be found.
func Dir() string {
	d, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(d, "labsend")
}

// DefaultPath is the config file read when --config is not given.
func DefaultPath() string {
	d := Dir()
	if d == "" {
		return ""
	}
	return filepath.Join(d, "config.json")
}

// Load resolves configuration from defaults, then the JSON file at path
// (a missing file is fine), then the environment.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.mergeFile(path); err != nil {
			return c, err
		}
	}
	c.mergeEnv(os.Getenv)
	return c, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var u Config
	if err := json.Unmarshal(b, &u); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Merge(u)
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) {
	c.Merge(Config{
		EndpointBaseURL: getenv(envEndpoint),
		LogFile:         getenv(envLogFile),
		LogLevel:        getenv(envLogLevel),
	})
}

// Merge overlays the non-empty fields of u.
func (c *Config) Merge(u Config) {
	if u.EndpointBaseURL != "" {
		c.EndpointBaseURL = u.EndpointBaseURL
	}
	if u.LogFile != "" {
		c.LogFile = u.LogFile
	}
	if u.LogLevel != "" {
		c.LogLevel = u.LogLevel
	}
	if u.Theme != "" {
		c.Theme = u.Theme
	}
}

// SendURL returns the full send-email URL for the configured base.
func (c Config) SendURL() (string, error) {
	base := strings.TrimSpace(c.EndpointBaseURL)
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("endpoint %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("endpoint %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return "", fmt.Errorf("endpoint %q: missing host", base)
	}
	u.Path = strings.TrimRight(u.Path, "/") + SendPath
	u.RawPath = ""
	return u.String(), nil
}
