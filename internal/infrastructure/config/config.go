package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Data
	DatasetPath string // seed file with questions, settings and starter users
	ProgressDB  string // sqlite file holding the persisted progress

	// Session behaviour
	DefaultSubject string        // subject selected right after login, "" disables
	AdvanceDelay   time.Duration // feedback display time before the next question
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatasetPath:     getenvDefault("DATASET_PATH", "data.json"),
		ProgressDB:      getenvDefault("PROGRESS_DB", "lernapp.db"),
		DefaultSubject:  getenvDefault("DEFAULT_SUBJECT", "deutsch"),
		AdvanceDelay:    getDurationDefault("ADVANCE_DELAY", 900*time.Millisecond),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
