package config

import "os"

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "hostel_management_super_secret_2024"))

type Config struct {
	Port            string
	DBPath          string
	StripeSecretKey string
}

// Load collects runtime settings from the environment. Everything has a
// development fallback except the Stripe key, which stays empty so a missing
// key fails at the gateway call instead of hitting a wrong account.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "7000"),
		DBPath:          getEnv("DB_PATH", "hostel_management.db"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
