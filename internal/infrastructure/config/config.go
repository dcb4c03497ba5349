package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/homie5"
)

// Config is the root configuration structure for the homie5 demo binaries.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Homie   HomieConfig   `yaml:"homie"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Logging LoggingConfig `yaml:"logging"`
}

// HomieConfig contains Homie convention settings.
type HomieConfig struct {
	// Domain is the MQTT topic root shared by every device in the installation.
	Domain string `yaml:"domain"`

	// DeviceID identifies this device within the domain.
	// Must be a valid Homie identifier: lowercase letters, digits and hyphens.
	DeviceID string `yaml:"device_id"`

	// DeviceName is the human-readable name published in the device description.
	DeviceName string `yaml:"device_name"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	TLS  bool   `yaml:"tls"`

	// ClientID identifies this client to the broker.
	// Leave empty to have the mqtt package derive one from the device id.
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection backoff settings in
// seconds. Reconnection itself retries indefinitely.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: HOMIE5_SECTION_KEY
// For example: HOMIE5_MQTT_HOST, HOMIE5_DEVICE_ID
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Homie: HomieConfig{
			Domain:   homie5.DefaultDomain.String(),
			DeviceID: "device-1",
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host: "localhost",
				Port: 1883,
			},
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: HOMIE5_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOMIE5_DOMAIN"); v != "" {
		cfg.Homie.Domain = v
	}
	if v := os.Getenv("HOMIE5_DEVICE_ID"); v != "" {
		cfg.Homie.DeviceID = v
	}
	if v := os.Getenv("HOMIE5_DEVICE_NAME"); v != "" {
		cfg.Homie.DeviceName = v
	}

	if v := os.Getenv("HOMIE5_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("HOMIE5_MQTT_PORT"); v != "" {
		// A non-numeric override is ignored; the file or default value stands.
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MQTT.Broker.Port = port
		}
	}
	if v := os.Getenv("HOMIE5_MQTT_CLIENT_ID"); v != "" {
		cfg.MQTT.Broker.ClientID = v
	}
	if v := os.Getenv("HOMIE5_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("HOMIE5_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	if v := os.Getenv("HOMIE5_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HOMIE5_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("HOMIE5_LOG_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if _, err := homie5.NewDomain(c.Homie.Domain); err != nil {
		errs = append(errs, fmt.Sprintf("homie.domain %q is not a valid domain", c.Homie.Domain))
	}
	if _, err := homie5.NewID(c.Homie.DeviceID); err != nil {
		errs = append(errs, fmt.Sprintf("homie.device_id %q is not a valid Homie identifier", c.Homie.DeviceID))
	}

	if c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required")
	}
	if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Domain returns the configured Homie domain as a typed value.
// Call only after Validate.
func (c *Config) Domain() homie5.HomieDomain {
	return homie5.HomieDomain(c.Homie.Domain)
}

// DeviceID returns the configured device id as a typed value.
// Call only after Validate.
func (c *Config) DeviceID() homie5.HomieID {
	return homie5.HomieID(c.Homie.DeviceID)
}
