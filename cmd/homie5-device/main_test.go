package main

import (
	"context"
	"testing"
	"time"

	"github.com/nerrad567/homie5"
)

// TestRun_InvalidConfig verifies run fails with an invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("HOMIE5_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestGetConfigPath_Default verifies the default config path.
func TestGetConfigPath_Default(t *testing.T) {
	t.Setenv("HOMIE5_CONFIG", "")

	path := getConfigPath()
	if path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies the environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	expected := "/custom/path/config.yaml"
	t.Setenv("HOMIE5_CONFIG", expected)

	path := getConfigPath()
	if path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

// TestMakeDescription verifies the example description is well formed.
func TestMakeDescription(t *testing.T) {
	desc := makeDescription("Test light")

	if desc.Name != "Test light" {
		t.Errorf("Name = %q", desc.Name)
	}

	power := desc.Property("light", "power")
	if power == nil || !power.Settable || power.DataType != homie5.DataTypeBoolean {
		t.Errorf("power = %+v", power)
	}

	brightness := desc.Property("light", "brightness")
	if brightness == nil || brightness.Unit != homie5.UnitPercent {
		t.Errorf("brightness = %+v", brightness)
	}

	// Initial values round trip through the declared formats.
	if _, err := homie5.ParseValue("false", power); err != nil {
		t.Errorf("power initial value: %v", err)
	}
	if _, err := homie5.ParseValue("0", brightness); err != nil {
		t.Errorf("brightness initial value: %v", err)
	}

	// Fallback name when none is configured.
	if makeDescription("").Name == "" {
		t.Error("empty configured name should fall back to a default")
	}
}
