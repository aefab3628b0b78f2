package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Only the HTTP basics are required; booking
// defaults fall back to the shop's usual values when unset.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DefaultTimeSlot string // time slot assigned to bookings that do not choose one
	VenueName       string // display name of the dive shop
	VenueLocation   string // display location shown on the POS header
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		DefaultTimeSlot: getenv("DEFAULT_TIME_SLOT", "10:00"),
		VenueName:       getenv("VENUE_NAME", "Koh Tao Scuba Club"),
		VenueLocation:   getenv("VENUE_LOCATION", "Sairee Beach - Koh Tao"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
