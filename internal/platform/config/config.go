package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service configuration.
// Environment variables are parsed from the JOURNAL_ prefix.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// StorageBackend selects the account/trip store: memory, postgres or
	// firebase.
	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"`

	// PostgresDSN is required when StorageBackend is postgres.
	PostgresDSN string `envconfig:"DATABASE_URL" default:""`

	// FirebaseURL is the Realtime Database base URL, required when
	// StorageBackend is firebase (e.g. https://<project>-default-rtdb.firebaseio.com).
	FirebaseURL     string        `envconfig:"FIREBASE_URL" default:""`
	FirebaseTimeout time.Duration `envconfig:"FIREBASE_TIMEOUT" default:"10s"`

	// GeocoderBackend selects the reverse geocoder: static or nominatim.
	GeocoderBackend   string        `envconfig:"GEOCODER_BACKEND" default:"static"`
	NominatimURL      string        `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
	NominatimTimeout  time.Duration `envconfig:"NOMINATIM_TIMEOUT" default:"5s"`
	GeocoderUserAgent string        `envconfig:"GEOCODER_USER_AGENT" default:"travel-journal-api"`
}

// Load parses JOURNAL_-prefixed environment variables and validates the
// backend selections.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("JOURNAL", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.StorageBackend {
	case "memory", "postgres", "firebase":
	default:
		return Config{}, fmt.Errorf("JOURNAL_STORAGE_BACKEND must be memory, postgres or firebase (got %q)", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "postgres" && cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("JOURNAL_DATABASE_URL is required with the postgres backend")
	}
	if cfg.StorageBackend == "firebase" && cfg.FirebaseURL == "" {
		return Config{}, fmt.Errorf("JOURNAL_FIREBASE_URL is required with the firebase backend")
	}

	switch cfg.GeocoderBackend {
	case "static", "nominatim":
	default:
		return Config{}, fmt.Errorf("JOURNAL_GEOCODER_BACKEND must be static or nominatim (got %q)", cfg.GeocoderBackend)
	}

	return cfg, nil
}
