package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/roomkit/roomkit/pkg/api"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// Config represents the configuration for the roomkit CLI.
// It contains server connection details and the pre-built authorization value.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// Hostname of the media server
	Hostname string `yaml:"hostname"`
	// Port of the media server API
	Port int `yaml:"port"`
	// Authorization is the pre-built Authorization header value for the
	// server API. Can be overridden with the ROOMKIT_AUTHORIZATION
	// environment variable (a .env file in the working directory is honored).
	Authorization string `yaml:"authorization"`
	// InsecureTLS disables server certificate validation for development
	// servers with self-signed certificates
	InsecureTLS bool `yaml:"insecure_tls"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file.
// It uses the OS-specific config directory (e.g., ~/.config/roomkit on Linux).
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "roomkit", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file.
// If no file is specified, it uses the default config location.
func LoadConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	_ = godotenv.Load() // no error if .env doesn't exist
	if auth := os.Getenv("ROOMKIT_AUTHORIZATION"); auth != "" {
		c.Authorization = auth
	}

	if c.Hostname == "" {
		return errors.New("hostname is required")
	}
	if c.Port == 0 {
		c.Port = 443
	}
	if c.Authorization == "" {
		return errors.New("authorization is required (config file or ROOMKIT_AUTHORIZATION)")
	}

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// newSessionClient builds a session client from the loaded configuration and
// the given session properties.
func newSessionClient(properties api.SessionProperties) (*api.SessionClient, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}

	opts := []api.ClientOption{
		api.WithRequestTimeout(requestTimeout),
	}
	if cfg.InsecureTLS {
		opts = append(opts, api.WithInsecureTLS())
	}

	return api.NewSessionClient(api.ClientConfig{
		Hostname:      cfg.Hostname,
		Port:          cfg.Port,
		Authorization: cfg.Authorization,
	}, properties, opts...)
}
