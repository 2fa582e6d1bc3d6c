package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string
	DBPass string // optional
	DBHost string
	DBPort string
	DBName string

	ReceiptSecret string        // HMAC key for booking receipts
	ReceiptTTL    time.Duration // lifetime of a receipt token

	HotelTZ       *time.Location // zone that decides what "today" is
	SessionTTL    time.Duration  // idle lifetime of a booking session in Redis
	SessionPrefix string         // Redis key namespace for sessions

	LogLevel       string
	BookingLogPath string // rotating file the queue consumer appends confirmations to
}

// Load reads an optional .env file and then the environment. Missing
// required variables cause the program to exit with a fatal log message.
func Load() Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		ReceiptSecret:  must("RECEIPT_SECRET"),
		ReceiptTTL:     envDur("RECEIPT_TTL", 720*time.Hour),
		HotelTZ:        mustLocation("HOTEL_TZ"),
		SessionTTL:     envDur("SESSION_TTL", 30*time.Minute),
		SessionPrefix:  envStr("SESSION_PREFIX", "booking"),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		BookingLogPath: envStr("BOOKING_LOG_PATH", "logs/booking.log"),
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

// mustLocation loads the IANA zone named by key, defaulting to UTC.
func mustLocation(key string) *time.Location {
	loc, err := ParseLocation(os.Getenv(key))
	if err != nil {
		log.Fatalf("invalid time zone for %s: %v", key, err)
	}
	return loc
}

// ParseLocation resolves an IANA zone name. Empty means UTC.
func ParseLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
