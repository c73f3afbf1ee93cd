package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings of the front desk. Everything has a
// default so the program runs with no .env at all.
type Config struct {
	HotelName      string // banner shown at the top of the session
	CurrencySymbol string // prefix for every rendered amount
	LoyaltyPerStay int    // points granted per successful booking/modification
}

const defaultLoyaltyPerStay = 30

// Load reads the configuration from environment variables, falling back to
// the built-in defaults.
func Load() Config {
	return Config{
		HotelName:      envOrDefault("HOTEL_NAME", "HOTEL DE LUNA"),
		CurrencySymbol: envOrDefault("CURRENCY_SYMBOL", "₱"),
		LoyaltyPerStay: envIntOrDefault("LOYALTY_POINTS_PER_BOOKING", defaultLoyaltyPerStay),
	}
}

// envOrDefault returns the ENV value or the fallback default.
func envOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func envIntOrDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("⚠️  ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
