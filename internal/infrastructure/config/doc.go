// Package config handles loading and validating configuration for the
// homie5 demo binaries.
//
// Configuration is loaded in three layers: hardcoded defaults, the YAML
// file, then environment variables. Validation applies the Homie identifier
// rules to the domain and device id, so a Config that passed Validate can
// be handed to the protocol core without further checks.
//
// Environment overrides follow the HOMIE5_SECTION_KEY pattern:
//
//	HOMIE5_DOMAIN, HOMIE5_DEVICE_ID, HOMIE5_DEVICE_NAME
//	HOMIE5_MQTT_HOST, HOMIE5_MQTT_PORT, HOMIE5_MQTT_CLIENT_ID
//	HOMIE5_MQTT_USERNAME, HOMIE5_MQTT_PASSWORD
//	HOMIE5_LOG_LEVEL, HOMIE5_LOG_FORMAT, HOMIE5_LOG_OUTPUT
//
// Broker credentials are best supplied via the environment; the config file
// should have restricted permissions (0600).
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	proto, will := homie5.NewDeviceProtocol(cfg.Domain(), cfg.DeviceID())
package config
