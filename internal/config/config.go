package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Strings for identifiers and addresses, a boolean
// for the demo-mode switch.
type Config struct {
	Env      string // application environment (e.g. "dev", "prod")
	Port     string // HTTP port to listen on
	DBUser   string // database username
	DBPass   string // database password (optional)
	DBHost   string // database host address
	DBPort   string // database port number
	DBName   string // database name
	DemoMode bool   // serve the built-in demo dataset instead of MySQL
}

// Load reads configuration values from environment variables and returns a
// Config. A .env file in the working directory is loaded first when it
// exists, so local development does not need exported variables. Required
// variables are enforced by must() and missing values cause the program to
// exit with a fatal log message. When DEMO_MODE is enabled the database
// variables are not required.
func Load() Config {
	_ = godotenv.Load() // a missing .env file is not an error

	demo := envBool("DEMO_MODE", false)
	cfg := Config{
		Env:      must("APP_ENV"),  // environment (dev/test/prod)
		Port:     must("APP_PORT"), // port to bind the HTTP server
		DemoMode: demo,
	}
	if !demo {
		cfg.DBUser = must("DB_USER")      // database user
		cfg.DBPass = os.Getenv("DB_PASS") // database password (empty allowed)
		cfg.DBHost = must("DB_HOST")      // database host
		cfg.DBPort = must("DB_PORT")      // database port
		cfg.DBName = must("DB_NAME")      // database name
	}
	return cfg
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
