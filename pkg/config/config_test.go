package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("WIZ_BULB_IP", "")
	t.Setenv("WIZ_BULB_PORT", "")
	t.Setenv("WIZ_TIMEOUT", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.BulbHost != DefaultBulbHost {
		t.Errorf("expected default host, got %q", cfg.BulbHost)
	}
	if cfg.BulbPort != DefaultBulbPort {
		t.Errorf("expected default port, got %d", cfg.BulbPort)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.APIAddress != DefaultAPIAddr {
		t.Errorf("expected default API address, got %q", cfg.APIAddress)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WIZ_BULB_IP", "10.0.0.7")
	t.Setenv("WIZ_BULB_PORT", "38900")
	t.Setenv("WIZ_TIMEOUT", "500ms")
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.BulbHost != "10.0.0.7" {
		t.Errorf("expected host override, got %q", cfg.BulbHost)
	}
	if cfg.BulbPort != 38900 {
		t.Errorf("expected port override, got %d", cfg.BulbPort)
	}
	if cfg.Timeout != 500*time.Millisecond {
		t.Errorf("expected timeout override, got %v", cfg.Timeout)
	}
	if cfg.MQTT.Broker != "tcp://broker:1883" {
		t.Errorf("expected MQTT broker, got %q", cfg.MQTT.Broker)
	}
}

func TestFromEnvRejectsBadPort(t *testing.T) {
	t.Setenv("WIZ_BULB_PORT", "not-a-port")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}
