package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults match the bulb's stock firmware settings.
const (
	DefaultBulbHost = "192.168.0.148"
	DefaultBulbPort = 38899
	DefaultTimeout  = 2 * time.Second
	DefaultAPIAddr  = "0.0.0.0:8080"
)

// Config holds the runtime configuration shared by the binaries. The wiz
// core never reads the environment itself; host, port, and timeout are
// handed to it as plain parameters.
type Config struct {
	BulbHost string
	BulbPort int
	Timeout  time.Duration

	APIAddress string
	DBPath     string

	MQTT MQTT
}

// MQTT holds the Home Assistant bridge settings.
type MQTT struct {
	Broker          string
	Username        string
	Password        string
	TopicPrefix     string
	RefreshInterval time.Duration
}

// FromEnv loads configuration from the environment, reading a .env file
// first if one is present.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BulbHost:   getEnv("WIZ_BULB_IP", DefaultBulbHost),
		Timeout:    DefaultTimeout,
		APIAddress: getEnv("WIZ_API_ADDR", DefaultAPIAddr),
		DBPath:     os.Getenv("WIZ_DB_PATH"),
		MQTT: MQTT{
			Broker:          os.Getenv("MQTT_BROKER"),
			Username:        os.Getenv("MQTT_USERNAME"),
			Password:        os.Getenv("MQTT_PASSWORD"),
			TopicPrefix:     getEnv("MQTT_TOPIC_PREFIX", "wizmcp"),
			RefreshInterval: 10 * time.Second,
		},
	}

	port, err := intEnv("WIZ_BULB_PORT", DefaultBulbPort)
	if err != nil {
		return nil, err
	}
	cfg.BulbPort = port

	if raw := os.Getenv("WIZ_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid WIZ_TIMEOUT %q: %w", raw, err)
		}
		cfg.Timeout = d
	}

	if raw := os.Getenv("MQTT_REFRESH"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MQTT_REFRESH %q: %w", raw, err)
		}
		cfg.MQTT.RefreshInterval = d
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
