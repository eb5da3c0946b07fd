package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// PlaceholderGuest is used when a booking is confirmed without a
	// guest name.
	PlaceholderGuest string
	// DateFormat is the layout the booking dialog accepts for start and
	// end dates.
	DateFormat string
	// Currency is the label shown next to the per-night rate.
	Currency string
	// SeedDemoRooms loads a few example rooms at startup.
	SeedDemoRooms bool
	// LogFile receives the application log. The terminal is owned by the
	// dashboard, so nothing is logged to stdout.
	LogFile string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	cfg := Config{
		PlaceholderGuest: os.Getenv("PLACEHOLDER_GUEST"),
		DateFormat:       os.Getenv("DATE_FORMAT"),
		Currency:         os.Getenv("CURRENCY"),
		SeedDemoRooms:    os.Getenv("SEED_DEMO_ROOMS") == "true",
		LogFile:          os.Getenv("LOG_FILE"),
	}

	if cfg.PlaceholderGuest == "" {
		cfg.PlaceholderGuest = "Guest"
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = "2006-01-02"
	}
	if cfg.Currency == "" {
		cfg.Currency = "SAR"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "hoteldash.log"
	}

	return cfg
}
