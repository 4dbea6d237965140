package config

import (
	"embed"
	"fmt"

	"poolpay/internal/errors"
	"poolpay/internal/logging"

	"gopkg.in/yaml.v3"
)

//go:embed status_messages.yaml
var configFS embed.FS

// StatusMessages represents the HTTP status display-string configuration
type StatusMessages struct {
	StatusMessages map[int]string `yaml:"status_messages"`
}

// ConfigLoader handles loading configuration from embedded YAML files
type ConfigLoader struct {
	logger *logging.Logger
}

// NewConfigLoader creates a new configuration loader
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		logger: logging.NewDefaultLogger("config"),
	}
}

// LoadStatusMessages loads HTTP status display strings from embedded YAML
func (cl *ConfigLoader) LoadStatusMessages() (map[int]string, error) {
	data, err := configFS.ReadFile("status_messages.yaml")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to read embedded status messages config")
	}

	var config StatusMessages
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfiguration,
			"failed to parse status messages YAML")
	}

	cl.logger.Debug("Loaded display strings for %d HTTP statuses", len(config.StatusMessages))
	return config.StatusMessages, nil
}

// Global config loader instance
var (
	defaultLoader  *ConfigLoader
	statusMessages map[int]string
)

// InitializeConfigLoader initializes the global config loader
func InitializeConfigLoader() error {
	defaultLoader = NewConfigLoader()
	messages, err := defaultLoader.LoadStatusMessages()
	if err != nil {
		return err
	}
	statusMessages = messages
	return nil
}

// StatusMessage returns the display string for an HTTP status code. Codes
// without a hand-authored string fall back to a generic message carrying the
// code.
func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("Request failed with status %d.", code)
}
