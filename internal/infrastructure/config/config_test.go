package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
homie:
  domain: "homie"
  device_id: "test-device"
  device_name: "Test Device"
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Homie.DeviceID != "test-device" {
		t.Errorf("Homie.DeviceID = %q, want %q", cfg.Homie.DeviceID, "test-device")
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "localhost")
	}

	// Defaults survive a partial file.
	if cfg.MQTT.Reconnect.MaxDelay != 60 {
		t.Errorf("MQTT.Reconnect.MaxDelay = %d, want 60", cfg.MQTT.Reconnect.MaxDelay)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
homie:
  device_id: "Not A Valid ID"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for invalid device id, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty domain",
			mutate:  func(c *Config) { c.Homie.Domain = "" },
			wantErr: true,
		},
		{
			name:    "multi-segment domain",
			mutate:  func(c *Config) { c.Homie.Domain = "my/root" },
			wantErr: true,
		},
		{
			name:    "uppercase device id",
			mutate:  func(c *Config) { c.Homie.DeviceID = "Device" },
			wantErr: true,
		},
		{
			name:    "missing broker host",
			mutate:  func(c *Config) { c.MQTT.Broker.Host = "" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.MQTT.Broker.Port = 70000 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("HOMIE5_DOMAIN", "factory")
	t.Setenv("HOMIE5_DEVICE_ID", "env-device")
	t.Setenv("HOMIE5_MQTT_HOST", "mqtt.example.com")
	t.Setenv("HOMIE5_MQTT_PORT", "8883")
	t.Setenv("HOMIE5_MQTT_USERNAME", "testuser")
	t.Setenv("HOMIE5_MQTT_PASSWORD", "testpass")
	t.Setenv("HOMIE5_LOG_LEVEL", "debug")
	t.Setenv("HOMIE5_LOG_FORMAT", "text")

	applyEnvOverrides(cfg)

	if cfg.Homie.Domain != "factory" {
		t.Errorf("Homie.Domain = %q, want %q", cfg.Homie.Domain, "factory")
	}
	if cfg.Homie.DeviceID != "env-device" {
		t.Errorf("Homie.DeviceID = %q, want %q", cfg.Homie.DeviceID, "env-device")
	}
	if cfg.MQTT.Broker.Host != "mqtt.example.com" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "mqtt.example.com")
	}
	if cfg.MQTT.Broker.Port != 8883 {
		t.Errorf("MQTT.Broker.Port = %d, want 8883", cfg.MQTT.Broker.Port)
	}
	if cfg.MQTT.Auth.Username != "testuser" {
		t.Errorf("MQTT.Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "testuser")
	}
	if cfg.MQTT.Auth.Password != "testpass" {
		t.Errorf("MQTT.Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "testpass")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want level debug format text", cfg.Logging)
	}
}

func TestApplyEnvOverrides_BadPort(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("HOMIE5_MQTT_PORT", "not-a-port")
	applyEnvOverrides(cfg)

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("MQTT.Broker.Port = %d, want default 1883", cfg.MQTT.Broker.Port)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Homie.Domain != "homie" {
		t.Errorf("defaultConfig Homie.Domain = %q, want %q", cfg.Homie.Domain, "homie")
	}
	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig should validate, got %v", err)
	}
}

func TestTypedAccessors(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Domain().String() != "homie" {
		t.Errorf("Domain() = %q", cfg.Domain())
	}
	if cfg.DeviceID().String() != "device-1" {
		t.Errorf("DeviceID() = %q", cfg.DeviceID())
	}
}
